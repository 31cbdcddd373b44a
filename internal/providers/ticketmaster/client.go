package ticketmaster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/amokewustl/belong-chivent/internal/metrics"
)

const (
	// BaseURL is the Ticketmaster Discovery v2 events endpoint.
	BaseURL = "https://app.ticketmaster.com/discovery/v2/events.json"

	// APIKey is the static consumer key for the Discovery API.
	APIKey = "pmbdy5uLSZnpbGGenJyLkA7xeRCPS20L"

	// Query scope is fixed: Chicago metro, 200 events per page, soonest first.
	City     = "Chicago"
	State    = "IL"
	PageSize = 200
	SortBy   = "date,asc"
)

// StatusError reports a non-2xx response from the Discovery API.
type StatusError struct {
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.StatusCode == http.StatusUnauthorized {
		return "ticketmaster API error: status=401 (invalid API key)"
	}
	return fmt.Sprintf("ticketmaster API error: status=%d", e.StatusCode)
}

// IsAuthError reports whether the failure was an API key rejection.
func (e *StatusError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// Client issues paginated requests against the Discovery API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// New creates a client pointed at the production Discovery endpoint.
func New() *Client {
	return NewWithBaseURL(BaseURL)
}

// NewWithBaseURL creates a client against an alternate endpoint. Used by tests.
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  APIKey,
	}
}

// FetchPage fetches one zero-based page of Chicago events. A page with no
// _embedded.events block decodes to an empty event list, which callers treat
// as end-of-results. Non-2xx statuses return a *StatusError; retry policy is
// the caller's concern.
func (c *Client) FetchPage(ctx context.Context, page int) (*PageResponse, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("city", City)
	params.Set("stateCode", State)
	params.Set("size", strconv.Itoa(PageSize))
	params.Set("page", strconv.Itoa(page))
	params.Set("sort", SortBy)

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamFailures.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}
	metrics.UpstreamPagesFetched.Inc()

	var result PageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// Events returns the page's event list, or nil when the _embedded block is
// absent.
func (p *PageResponse) Events() []RawEvent {
	if p == nil || p.Embedded == nil {
		return nil
	}
	return p.Embedded.Events
}
