package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bondcache/internal/config"
	"bondcache/internal/interfaces"
	"bondcache/internal/metrics"
	"bondcache/internal/models"
)

// Ensure Client implements interfaces.BondAPI
var _ interfaces.BondAPI = (*Client)(nil)

var (
	// ErrNotFound means the API answered 404 for the requested resource.
	ErrNotFound = errors.New("not found")
	// ErrAPIKeyRequired means the API answered 403.
	ErrAPIKeyRequired = errors.New("api key required")
)

const retryBaseDelay = 100 * time.Millisecond

// Client talks to the BondMaster reference API. Transient transport
// failures (timeouts, dropped connections) are retried with exponential
// backoff up to maxRetries; connection refused and HTTP error statuses are
// not retried.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
	logger     *zap.Logger
}

// New creates a BondMaster API client from config.
func New(cfg *config.APIConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		maxRetries: cfg.Retries(),
		logger:     logger,
	}
}

// GetBond fetches one bond by normalized ISIN.
func (c *Client) GetBond(ctx context.Context, isin string) (models.Bond, error) {
	var bond models.Bond
	if err := c.getJSON(ctx, "get_bond", "/bonds/"+isin, nil, &bond); err != nil {
		return nil, err
	}
	return bond, nil
}

// ListBonds fetches bonds matching the query filters.
func (c *Client) ListBonds(ctx context.Context, query models.ListQuery) ([]models.Bond, error) {
	params := url.Values{}
	setIfPresent := func(key, val string) {
		if val != "" {
			params.Set(key, val)
		}
	}
	setIfPresent("country", query.Country)
	setIfPresent("security_type", query.SecurityType)
	setIfPresent("currency", query.Currency)
	setIfPresent("maturity_from", query.MaturityFrom)
	setIfPresent("maturity_to", query.MaturityTo)
	setIfPresent("min_coupon", query.MinCoupon)
	setIfPresent("max_coupon", query.MaxCoupon)
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	var bonds []models.Bond
	if err := c.getJSON(ctx, "list_bonds", "/bonds", params, &bonds); err != nil {
		return nil, err
	}
	return bonds, nil
}

// GetDatabaseStats fetches bond counts, total and per country.
func (c *Client) GetDatabaseStats(ctx context.Context) (*models.DatabaseStats, error) {
	var stats models.DatabaseStats
	if err := c.getJSON(ctx, "stats", "/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// TriggerRefresh asks the API to re-pull bond data from its sources.
func (c *Client) TriggerRefresh(ctx context.Context, req models.RefreshRequest) (*models.RefreshResponse, error) {
	var resp models.RefreshResponse
	if err := c.doJSON(ctx, "refresh", http.MethodPost, "/bonds/refresh", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLineage fetches source attribution for a bond.
func (c *Client) GetLineage(ctx context.Context, isin string) (*models.Lineage, error) {
	var lineage models.Lineage
	if err := c.getJSON(ctx, "lineage", "/enterprise/lineage/"+isin, nil, &lineage); err != nil {
		return nil, err
	}
	return &lineage, nil
}

// GetHistory fetches up to limit change records for a bond.
func (c *Client) GetHistory(ctx context.Context, isin string, limit int) ([]models.ChangeRecord, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var history []models.ChangeRecord
	if err := c.getJSON(ctx, "history", "/enterprise/history/"+isin, params, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// CorporateActions fetches recent corporate actions.
func (c *Client) CorporateActions(ctx context.Context, query models.ActionsQuery) ([]models.CorporateAction, error) {
	params := url.Values{}
	if query.ActionType != "" {
		params.Set("action_type", query.ActionType)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	var actions []models.CorporateAction
	if err := c.getJSON(ctx, "corporate_actions", "/enterprise/corporate-actions", params, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

// UpcomingMaturities fetches bonds maturing within the next days.
func (c *Client) UpcomingMaturities(ctx context.Context, days int) ([]models.CorporateAction, error) {
	params := url.Values{}
	params.Set("days", strconv.Itoa(days))

	var actions []models.CorporateAction
	if err := c.getJSON(ctx, "maturities", "/enterprise/corporate-actions/maturities", params, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

// Health checks upstream connectivity.
func (c *Client) Health(ctx context.Context) error {
	var out map[string]interface{}
	return c.getJSON(ctx, "health", "/health", nil, &out)
}

// getJSON is doJSON for body-less GET requests.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, params url.Values, out interface{}) error {
	return c.doJSON(ctx, endpoint, http.MethodGet, path, params, nil, out)
}

// doJSON performs one API request with retry, unwraps the response
// envelope, and decodes the payload into out.
func (c *Client) doJSON(ctx context.Context, endpoint, method, path string, params url.Values, body, out interface{}) error {
	stop := metrics.TimeUpstreamRequest(endpoint)
	defer stop()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			c.logger.Debug("Retrying API request",
				zap.String("path", path),
				zap.Int("attempt", attempt))
		}

		done, err := c.attempt(ctx, method, reqURL, reqBody, out)
		if done {
			if err != nil {
				metrics.RecordUpstreamRequest(endpoint, outcomeFor(err))
			} else {
				metrics.RecordUpstreamRequest(endpoint, "success")
			}
			return err
		}
		lastErr = err
	}

	metrics.RecordUpstreamRequest(endpoint, "error")
	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

// attempt performs a single HTTP round trip. The first return value is
// false when the error is transient and worth retrying: timeouts, dropped
// connections, mid-body read failures. Connection refused and a canceled
// context are terminal.
func (c *Client) attempt(ctx context.Context, method, reqURL string, reqBody []byte, out interface{}) (bool, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		bodyReader = bytes.NewReader(reqBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return true, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return false, fmt.Errorf("request timed out: %w", err)
		}
		if errors.Is(err, syscall.ECONNREFUSED) || ctx.Err() != nil {
			return true, fmt.Errorf("request failed: %w", err)
		}
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		if out == nil {
			return true, nil
		}
		payload := unwrapEnvelope(respBody)
		if err := json.Unmarshal(payload, out); err != nil {
			return true, fmt.Errorf("failed to decode response: %w", err)
		}
		return true, nil
	case http.StatusNotFound:
		return true, ErrNotFound
	case http.StatusForbidden:
		return true, ErrAPIKeyRequired
	default:
		return true, fmt.Errorf("unexpected status HTTP %d", resp.StatusCode)
	}
}

func outcomeFor(err error) string {
	if errors.Is(err, ErrNotFound) {
		return "not_found"
	}
	return "error"
}
