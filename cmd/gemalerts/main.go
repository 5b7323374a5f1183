package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alias1177/GemAlerts/internal/alerts"
	"github.com/Alias1177/GemAlerts/internal/anomaly"
	"github.com/Alias1177/GemAlerts/internal/api/gemini"
	"github.com/Alias1177/GemAlerts/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Console output until the configured level is known
	setupLogging("info")

	opts, err := parseArgs(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return 0
	}

	logLevel := cfg.LogLevel
	if opts.logLevel != "" {
		logLevel = opts.logLevel
	}
	setupLogging(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandling(cancel)

	log.Info().Msg("Starting main task...")
	printConfig(cfg, opts)

	client := gemini.NewClient(gemini.ClientOptions{
		BaseURL:            cfg.BaseURL,
		RequestTimeout:     cfg.RequestTimeout,
		MinRequestInterval: cfg.MinRequestInterval,
		MaxRetries:         cfg.MaxRetries,
		MaxRetryTimeout:    cfg.MaxRetryTime,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	})
	reporter := alerts.NewLogReporter(log.With().Str("component", "alerts").Logger())
	dispatcher := alerts.NewDispatcher(client, reporter, cfg.SettlementCurrency)

	summary, err := dispatcher.Run(ctx, opts.request)
	switch {
	case errors.Is(err, anomaly.ErrConfiguration):
		log.Warn().Err(err).Msg("Nothing to run")
	case err != nil:
		log.Error().Err(err).Msg("Run aborted")
	default:
		log.Info().
			Int("symbols", summary.Symbols).
			Int("evaluations", summary.Evaluations).
			Int("alerts", summary.Alerts).
			Int("failures", summary.Failures).
			Msg("Run summary")
	}

	log.Info().Msg("Main task finished.")
	return 0
}

// setupSignalHandling cancels ctx on interrupt so the symbol loop stops
func setupSignalHandling(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Info().Msg("Shutdown signal received, stopping...")
		cancel()
	}()
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}

// printConfig outputs the current configuration
func printConfig(cfg *config.Config, opts *options) {
	event := log.Debug().
		Str("BaseURL", cfg.BaseURL).
		Dur("RequestTimeout", cfg.RequestTimeout).
		Dur("MinRequestInterval", cfg.MinRequestInterval).
		Int("MaxRetries", cfg.MaxRetries).
		Str("SettlementCurrency", cfg.SettlementCurrency).
		Str("Type", opts.request.Kind.String()).
		Str("Symbol", opts.request.Symbol)
	if opts.request.Threshold != nil {
		event = event.Float64("Threshold", *opts.request.Threshold)
	}
	event.Msg("Configuration")
}
