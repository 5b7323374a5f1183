package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Alias1177/GemAlerts/internal/alerts"
)

// options holds the parsed command line
type options struct {
	request  alerts.Request
	logLevel string
}

func parseArgs(args []string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("gemalerts", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Gemini trade alerts\n\nUsage: gemalerts -t {%s} [-c SYMBOL] [-d THRESHOLD]\n\n", strings.Join(alerts.KindNames(), ","))
		fs.PrintDefaults()
	}

	var (
		opts     options
		kindName string
	)

	fs.StringVar(&kindName, "type", "", "type of check to run or all (required)")
	fs.StringVar(&kindName, "t", "", "shorthand for -type")
	fs.StringVar(&opts.request.Symbol, "currency", "", "currency symbol; every listed symbol when omitted")
	fs.StringVar(&opts.request.Symbol, "c", "", "shorthand for -currency")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level, overrides LOG_LEVEL")

	setThreshold := func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid float value %q", s)
		}
		opts.request.Threshold = &v
		return nil
	}
	fs.Func("deviation", "percentage threshold for deviation check", setThreshold)
	fs.Func("d", "shorthand for -deviation", setThreshold)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if kindName == "" {
		return nil, errors.New("the -type flag is required")
	}
	kind, err := alerts.ParseCheckKind(kindName)
	if err != nil {
		return nil, err
	}
	opts.request.Kind = kind

	return &opts, nil
}
