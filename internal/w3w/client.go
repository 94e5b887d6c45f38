// Package w3w implements the word lookup against the what3words v3 REST API.
package w3w

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"antipodes-api/internal/models"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL  = "https://api.what3words.com/v3"
	DefaultLanguage = "en"
	DefaultTimeout  = 10 * time.Second
)

// Config holds the settings needed to reach the API.
type Config struct {
	APIKey   string
	BaseURL  string
	Language string
	Timeout  time.Duration
}

// Client resolves coordinates to three word addresses.
type Client struct {
	apiKey   string
	baseURL  string
	language string
	session  *http.Client
	tracer   trace.Tracer
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.session = hc }
}

// NewClient creates a what3words client. An API key is required.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("w3w: api key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		apiKey:   cfg.APIKey,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		language: cfg.Language,
		session:  newHTTPClient(cfg.Timeout),
		tracer:   otel.Tracer("antipodes-api/w3w"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	return &http.Client{Transport: tr, Timeout: timeout}
}

type coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type convertResponse struct {
	Words        string       `json:"words"`
	Coordinates  *coordinates `json:"coordinates"`
	Language     string       `json:"language"`
	NearestPlace string       `json:"nearestPlace"`
	Error        *apiError    `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LookupWords calls convert-to-3wa for c.
func (c *Client) LookupWords(ctx context.Context, coord models.Coordinate) (_ models.ResolvedLocation, err error) {
	ctx, span := c.tracer.Start(ctx, "w3w.convert-to-3wa", trace.WithAttributes(
		attribute.Float64("geo.latitude", coord.Latitude),
		attribute.Float64("geo.longitude", coord.Longitude),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	logger := zerolog.Ctx(ctx)
	start := time.Now()

	req, err := c.newRequest(ctx, coord)
	if err != nil {
		return models.ResolvedLocation{}, &models.LookupFailedError{Reason: err.Error(), Err: err}
	}

	resp, err := c.session.Do(req)
	if err != nil {
		logger.Debug().Err(err).Msg("w3w request failed")
		return models.ResolvedLocation{}, &models.LookupFailedError{Reason: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ResolvedLocation{}, &models.LookupFailedError{Reason: fmt.Sprintf("read response: %v", err), Err: err}
	}

	logger.Debug().
		Int("status", resp.StatusCode).
		Dur("dur", time.Since(start)).
		Float64("lat", coord.Latitude).
		Float64("lon", coord.Longitude).
		Msg("w3w convert-to-3wa")

	return decode(resp.StatusCode, body)
}

func (c *Client) newRequest(ctx context.Context, coord models.Coordinate) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/convert-to-3wa", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := url.Values{}
	q.Set("coordinates", formatCoordinates(coord))
	q.Set("language", c.language)
	q.Set("format", "json")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func formatCoordinates(c models.Coordinate) string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// decode maps an API response to a ResolvedLocation or a lookup error.
func decode(status int, body []byte) (models.ResolvedLocation, error) {
	var decoded convertResponse
	trimmed := strings.TrimSpace(string(body))
	if trimmed != "" {
		if err := json.Unmarshal(body, &decoded); err != nil {
			if status >= 400 {
				return models.ResolvedLocation{}, models.NewLookupFailed(fmt.Sprintf("unexpected status %d", status))
			}
			return models.ResolvedLocation{}, &models.LookupFailedError{Reason: fmt.Sprintf("decode response: %v", err), Err: err}
		}
	}

	if decoded.Error != nil && decoded.Error.Message != "" {
		return models.ResolvedLocation{}, models.NewLookupFailed(decoded.Error.Message)
	}
	if status >= 400 {
		return models.ResolvedLocation{}, models.NewLookupFailed(fmt.Sprintf("unexpected status %d", status))
	}

	if decoded.Words == "" && decoded.Coordinates == nil {
		return models.ResolvedLocation{}, models.NewLookupFailed(models.NoResultFound)
	}
	if decoded.Words == "" {
		return models.ResolvedLocation{}, models.ErrMissingWords
	}
	if decoded.Coordinates == nil {
		return models.ResolvedLocation{}, models.ErrMissingCoordinates
	}

	return models.ResolvedLocation{
		Words:      decoded.Words,
		Coordinate: models.Coordinate{Latitude: decoded.Coordinates.Lat, Longitude: decoded.Coordinates.Lng},
	}, nil
}
