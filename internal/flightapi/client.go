// Package flightapi wraps the Lufthansa Open API: OAuth2
// client-credentials auth, flight status by number and route, and
// airport departure/arrival boards.
package flightapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/travelwing/travelwing/models"
	"github.com/travelwing/travelwing/types"
)

const (
	DefaultBaseURL = "https://api.lufthansa.com/v1"
	DefaultAuthURL = "https://api.lufthansa.com/v1/oauth/token"

	// Token refresh buffer - refresh before actual expiry
	tokenRefreshBuffer = 60 * time.Second

	// The public tier allows 5 calls/second; one call per 250ms keeps a margin.
	defaultRequestInterval = 250 * time.Millisecond

	// Connection pool settings
	maxIdleConns        = 10
	maxConnsPerHost     = 5
	idleConnTimeout     = 90 * time.Second
	tlsHandshakeTimeout = 10 * time.Second

	// Retry settings
	defaultMaxRetries = 3
	baseBackoff       = 1 * time.Second
	maxBackoff        = 30 * time.Second
	backoffFactor     = 2.0

	defaultTimeout = 15 * time.Second
)

// LufthansaGroupCarriers lists the airline prefixes eligible for
// rebooking within the group.
var LufthansaGroupCarriers = []string{"LH", "LX", "OS", "SN", "EW"}

// ---------------------------------------------------------------------------
// OAuth2 Token Management
// ---------------------------------------------------------------------------

// tokenResponse mirrors the JSON from the Lufthansa token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"` // seconds
	TokenType   string `json:"token_type"`
}

// TokenManager handles OAuth2 client-credentials token lifecycle.
type TokenManager struct {
	clientID     string
	clientSecret string
	tokenURL     string
	httpClient   *http.Client

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

// NewTokenManager creates a token manager for the client credentials flow.
func NewTokenManager(clientID, clientSecret, tokenURL string) *TokenManager {
	return &TokenManager{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     tokenURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Token returns a valid access token, refreshing if needed.
func (tm *TokenManager) Token(ctx context.Context) (string, error) {
	tm.mu.RLock()
	if tm.token != "" && time.Now().Before(tm.expiresAt) {
		tok := tm.token
		tm.mu.RUnlock()
		return tok, nil
	}
	tm.mu.RUnlock()

	return tm.refresh(ctx)
}

func (tm *TokenManager) refresh(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	// Double-check after acquiring write lock
	if tm.token != "" && time.Now().Before(tm.expiresAt) {
		return tm.token, nil
	}

	data := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {tm.clientID},
		"client_secret": {tm.clientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tm.tokenURL,
		strings.NewReader(data.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var tokResp tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokResp); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}

	tm.token = tokResp.AccessToken
	tm.expiresAt = time.Now().Add(time.Duration(tokResp.ExpiresIn)*time.Second - tokenRefreshBuffer)

	return tm.token, nil
}

// ---------------------------------------------------------------------------
// Rate Limiter
// ---------------------------------------------------------------------------

// RateLimiter spaces requests to respect the upstream quota.
type RateLimiter struct {
	interval time.Duration
	mu       sync.Mutex
	lastCall time.Time
}

// NewRateLimiter creates a rate limiter with the given minimum interval.
func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{interval: interval}
}

// Wait blocks until the next request is allowed.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastCall.IsZero() {
		r.lastCall = time.Now()
		return nil
	}

	elapsed := time.Since(r.lastCall)
	if elapsed < r.interval {
		select {
		case <-time.After(r.interval - elapsed):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.lastCall = time.Now()
	return nil
}

// ---------------------------------------------------------------------------
// Client
// ---------------------------------------------------------------------------

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the API endpoint (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

// WithTokenManager sets a custom token manager (useful for testing).
func WithTokenManager(tm *TokenManager) ClientOption {
	return func(c *Client) { c.tokens = tm }
}

// WithMaxRetries overrides the retry budget for transport failures.
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) { c.maxRetries = n }
}

// WithRequestInterval overrides the rate limiter spacing.
func WithRequestInterval(d time.Duration) ClientOption {
	return func(c *Client) { c.limiter = NewRateLimiter(d) }
}

// Client fetches flight data from the Lufthansa Open API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *TokenManager
	limiter    *RateLimiter
	maxRetries int
}

// NewClient creates an API client with connection pooling and sensible
// retry defaults.
func NewClient(clientID, clientSecret string, opts ...ClientOption) *Client {
	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxConnsPerHost:     maxConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: tlsHandshakeTimeout,
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
		},
		tokens:     NewTokenManager(clientID, clientSecret, DefaultAuthURL),
		limiter:    NewRateLimiter(defaultRequestInterval),
		maxRetries: defaultMaxRetries,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get performs an authenticated GET with rate limiting and bounded
// retry-with-backoff. A 404 maps to types.ErrNoFlightData; exhausted
// retries map to *types.UpstreamUnavailableError.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	var lastErr error
	backoff := baseBackoff

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			backoff = time.Duration(float64(backoff) * backoffFactor)
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}

		body, err := c.getOnce(ctx, endpoint, params)
		if err == nil {
			return body, nil
		}
		// No data is a definitive answer, not a transport failure.
		if err == types.ErrNoFlightData {
			return nil, err
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, &types.UpstreamUnavailableError{Endpoint: endpoint, Err: lastErr}
}

func (c *Client) getOnce(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtaining access token: %w", err)
	}

	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, types.ErrNoFlightData
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	return body, nil
}

// FlightStatus returns the status of a single flight on a date.
//
// API endpoint: GET /operations/flightstatus/{flightNumber}/{date}
func (c *Client) FlightStatus(ctx context.Context, flightNumber, date string) (models.FlightRecord, error) {
	endpoint := fmt.Sprintf("/operations/flightstatus/%s/%s", flightNumber, date)

	body, err := c.get(ctx, endpoint, nil)
	if err != nil {
		return models.FlightRecord{}, err
	}

	records, err := parseFlightStatus(body)
	if err != nil {
		return models.FlightRecord{}, err
	}
	if len(records) == 0 {
		return models.FlightRecord{}, types.ErrNoFlightData
	}
	return records[0], nil
}

// FlightStatusByRoute returns the flights operating between two airports
// on a date. A 404 from upstream yields an empty slice, not an error.
//
// API endpoint: GET /operations/flightstatus/route/{origin}/{destination}/{date}
func (c *Client) FlightStatusByRoute(ctx context.Context, origin, destination, date string) ([]models.FlightRecord, error) {
	endpoint := fmt.Sprintf("/operations/flightstatus/route/%s/%s/%s", origin, destination, date)

	body, err := c.get(ctx, endpoint, nil)
	if err == types.ErrNoFlightData {
		return []models.FlightRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	return parseFlightStatus(body)
}

// Departures returns upcoming departures from an airport.
//
// API endpoint: GET /operations/flightstatus/departures/{airport}/{fromDateTime}
func (c *Client) Departures(ctx context.Context, airport, fromTime string, limit int) ([]models.FlightRecord, error) {
	return c.board(ctx, "departures", airport, fromTime, limit)
}

// Arrivals returns upcoming arrivals at an airport.
//
// API endpoint: GET /operations/flightstatus/arrivals/{airport}/{fromDateTime}
func (c *Client) Arrivals(ctx context.Context, airport, fromTime string, limit int) ([]models.FlightRecord, error) {
	return c.board(ctx, "arrivals", airport, fromTime, limit)
}

func (c *Client) board(ctx context.Context, kind, airport, fromTime string, limit int) ([]models.FlightRecord, error) {
	endpoint := fmt.Sprintf("/operations/flightstatus/%s/%s/%s", kind, airport, fromTime)
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	body, err := c.get(ctx, endpoint, params)
	if err == types.ErrNoFlightData {
		return []models.FlightRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	return parseFlightStatus(body)
}

// ---------------------------------------------------------------------------
// Normalization helpers
// ---------------------------------------------------------------------------

// NormalizeFlightNumber uppercases, strips spaces, and prefixes bare
// digits with "LH" ("lh 456", "456" -> "LH456").
func NormalizeFlightNumber(s string) string {
	s = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if s != "" && isDigits(s) {
		return "LH" + s
	}
	return s
}

// NormalizeAirport uppercases and trims an airport IATA code.
func NormalizeAirport(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// GroupCarrier reports whether a flight number belongs to a Lufthansa
// Group carrier.
func GroupCarrier(flightNumber string) bool {
	for _, code := range LufthansaGroupCarriers {
		if strings.HasPrefix(flightNumber, code) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
