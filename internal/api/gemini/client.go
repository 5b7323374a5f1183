package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	httpClient "github.com/Alias1177/GemAlerts/internal/platform/http"
	"github.com/Alias1177/GemAlerts/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the sandbox REST endpoint
const DefaultBaseURL = "https://api.sandbox.gemini.com"

// ErrAPI is returned when the exchange answers with an error payload
var ErrAPI = errors.New("gemini API error")

// Client is the Gemini public REST API client
type Client struct {
	baseURL    string
	httpClient *httpClient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new Gemini client
type ClientOptions struct {
	BaseURL            string
	RequestTimeout     time.Duration
	MinRequestInterval time.Duration
	MaxRetries         int
	MaxRetryTimeout    time.Duration
	InsecureSkipVerify bool
}

// NewClient creates a new Gemini API client
func NewClient(options ClientOptions) *Client {
	httpOpts := httpClient.ClientOptions{
		Timeout:            options.RequestTimeout,
		MinInterval:        options.MinRequestInterval,
		MaxRetries:         options.MaxRetries,
		MaxRetryTimeout:    options.MaxRetryTimeout,
		InsecureSkipVerify: options.InsecureSkipVerify,
	}

	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient.NewClient(httpOpts),
		logger:     log.With().Str("component", "gemini_client").Logger(),
	}
}

var _ models.MarketGateway = (*Client)(nil)

// SymbolTicker fetches the v2 ticker with the hourly price changes
func (c *Client) SymbolTicker(ctx context.Context, symbol string) (*models.SymbolTicker, error) {
	data, err := c.get(ctx, "/v2/ticker/"+url.PathEscape(symbol))
	if err != nil {
		return nil, err
	}
	if !data.IsObject() {
		return nil, fmt.Errorf("ticker for %s: unexpected payload %s", symbol, data.Type)
	}

	ticker := &models.SymbolTicker{
		Symbol: data.Get("symbol").String(),
		Open:   data.Get("open").String(),
		High:   data.Get("high").String(),
		Low:    data.Get("low").String(),
		Close:  data.Get("close").String(),
	}
	for _, change := range data.Get("changes").Array() {
		ticker.Changes = append(ticker.Changes, change.String())
	}

	c.logger.Debug().Str("symbol", symbol).Int("changes", len(ticker.Changes)).Msg("Fetched ticker")
	return ticker, nil
}

// PublicTicker fetches the v1 ticker with the 24h volume per currency
func (c *Client) PublicTicker(ctx context.Context, symbol string) (*models.PublicTicker, error) {
	data, err := c.get(ctx, "/v1/pubticker/"+url.PathEscape(symbol))
	if err != nil {
		return nil, err
	}
	if !data.IsObject() {
		return nil, fmt.Errorf("pubticker for %s: unexpected payload %s", symbol, data.Type)
	}

	ticker := &models.PublicTicker{
		Bid:    data.Get("bid").String(),
		Ask:    data.Get("ask").String(),
		Last:   data.Get("last").String(),
		Volume: make(map[string]string),
	}
	data.Get("volume").ForEach(func(key, value gjson.Result) bool {
		if key.String() == "timestamp" {
			ticker.VolumeTimestamp = value.Int()
			return true
		}
		ticker.Volume[key.String()] = value.String()
		return true
	})

	c.logger.Debug().Str("symbol", symbol).Interface("volume", ticker.Volume).Msg("Fetched public ticker")
	return ticker, nil
}

// LastTrade fetches the most recent trade. The result holds at most one element.
func (c *Client) LastTrade(ctx context.Context, symbol string) ([]models.Trade, error) {
	data, err := c.get(ctx, "/v1/trades/"+url.PathEscape(symbol)+"?limit_trades=1")
	if err != nil {
		return nil, err
	}
	if !data.IsArray() {
		return nil, fmt.Errorf("trades for %s: unexpected payload %s", symbol, data.Type)
	}

	var trades []models.Trade
	for _, v := range data.Array() {
		trades = append(trades, models.Trade{
			TID:         v.Get("tid").Int(),
			Timestamp:   v.Get("timestamp").Int(),
			TimestampMs: v.Get("timestampms").Int(),
			Price:       v.Get("price").String(),
			Amount:      v.Get("amount").String(),
			Exchange:    v.Get("exchange").String(),
			Type:        v.Get("type").String(),
		})
	}

	c.logger.Debug().Str("symbol", symbol).Int("count", len(trades)).Msg("Fetched trades")
	return trades, nil
}

// Symbols lists every tradable symbol
func (c *Client) Symbols(ctx context.Context) ([]string, error) {
	data, err := c.get(ctx, "/v1/symbols")
	if err != nil {
		return nil, err
	}
	if !data.IsArray() {
		return nil, fmt.Errorf("symbols: unexpected payload %s", data.Type)
	}

	var symbols []string
	for _, v := range data.Array() {
		if s := v.String(); s != "" {
			symbols = append(symbols, s)
		}
	}

	c.logger.Debug().Int("count", len(symbols)).Msg("Fetched symbols")
	return symbols, nil
}

func (c *Client) get(ctx context.Context, path string) (gjson.Result, error) {
	endpoint := c.baseURL + path

	c.logger.Debug().Str("url", endpoint).Msg("Requesting")

	body, err := c.httpClient.Get(ctx, endpoint)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("GET %s: %w", path, err)
	}

	if !gjson.ValidBytes(body) {
		c.logger.Error().Str("response", string(body)).Msg("Error parsing JSON")
		return gjson.Result{}, fmt.Errorf("GET %s: invalid JSON body", path)
	}

	data := gjson.ParseBytes(body)
	if data.Get("result").String() == "error" {
		c.logger.Error().Str("response", string(body)).Msg("Gemini API error")
		return gjson.Result{}, fmt.Errorf("%w: %s: %s", ErrAPI, data.Get("reason").String(), data.Get("message").String())
	}

	return data, nil
}
