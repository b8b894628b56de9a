// Package ctftime implements the ranking-source client against the
// CTFtime REST API.
package ctftime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/goccy/go-json"

	"rankwatch/internal/domain/model"
)

// Default client configuration constants.
const (
	defaultBaseURL     = "https://ctftime.org"
	defaultTimeout     = 30 * time.Second
	defaultMaxAttempts = 3

	teamInfoPath    = "/api/v1/teams/%d/"
	leaderboardPath = "/api/v1/top-by-country/%s/"
)

// Client fetches team info and per-country leaderboard snapshots.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	maxAttempts int
}

// New constructs a Client with default configuration.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// teamInfo mirrors the subset of the team endpoint payload we need.
type teamInfo struct {
	Country string `json:"country"`
}

// TeamCountry resolves the country code registered for a team.
// Returns ErrTeamNotFound when the ranking source has no such team,
// and ErrUnavailable on transport or payload failures.
func (c *Client) TeamCountry(ctx context.Context, teamID int64) (string, error) {
	url := c.baseURL + fmt.Sprintf(teamInfoPath, teamID)

	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}

	var info teamInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return "", fmt.Errorf("%w: decode team info: %v", ErrUnavailable, err)
	}
	return info.Country, nil
}

// Leaderboard fetches the ranking snapshot for a country. Records
// carry only canonical fields; per-fetch metadata the payload may
// include (raw placement index, country code) is dropped during
// decoding.
func (c *Client) Leaderboard(ctx context.Context, country string) (*model.Snapshot, error) {
	url := c.baseURL + fmt.Sprintf(leaderboardPath, country)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var records []model.Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: decode leaderboard: %v", ErrUnavailable, err)
	}
	return model.NewSnapshot(records), nil
}

// get performs a GET with bounded exponential-backoff retries.
// Transport errors and 5xx responses are retried; 404 maps to
// ErrTeamNotFound and other client errors fail immediately.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	backoffCfg := backoff.NewExponentialBackOff()

	var lastErr error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			sleep := backoffCfg.NextBackOff()
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
			case <-time.After(sleep):
			}
		}

		body, retryable, err := c.getOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) getOnce(ctx context.Context, url string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, true, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, fmt.Errorf("%w: GET %s", ErrTeamNotFound, url)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, true, fmt.Errorf("%w: GET %s: status %d", ErrUnavailable, url, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("%w: GET %s: status %d", ErrUnavailable, url, resp.StatusCode)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	return body, false, nil
}
