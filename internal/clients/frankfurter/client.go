// Package frankfurter talks to the Frankfurter-style currency reference API,
// the remote source of the currency catalog.
package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jasonlam510/scount-currency-backend/internal/apperrors"
	"github.com/jasonlam510/scount-currency-backend/internal/core/domain"
)

// Client fetches the supported-currency list from the reference endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL (e.g.
// "https://api.frankfurter.dev/v1"). The timeout bounds each fetch; expiry is
// reported as an ordinary fetch failure.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchCurrencies GETs the live currency list. The endpoint returns a JSON
// object mapping ISO 4217 codes to either a plain name string or a
// {name, flag} object; both shapes land in the same Snapshot. A non-2xx
// response or a non-object body is a fetch failure wrapping
// apperrors.ErrFetchFailed.
func (c *Client) FetchCurrencies(ctx context.Context) (domain.Snapshot, error) {
	url := c.baseURL + "/currencies"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build currencies request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", apperrors.ErrFetchFailed, resp.StatusCode, url)
	}

	var snapshot domain.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("%w: malformed body: %v", apperrors.ErrFetchFailed, err)
	}

	snapshot = snapshot.Normalized()
	if len(snapshot) == 0 {
		return nil, fmt.Errorf("%w: empty or non-object body from %s", apperrors.ErrFetchFailed, url)
	}
	return snapshot, nil
}
