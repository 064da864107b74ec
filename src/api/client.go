// client.go - HTTP client for the remote message board API.
// The client performs exactly one kind of request and folds every failure
// mode into the closed TransportError set, so callers never see a raw
// transport or decode error.

package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"msgboard/src/models"
)

// DefaultBaseURL points at the hosted third-party API instance.
const DefaultBaseURL = "https://versatileapi.herokuapp.com/api"

// Client fetches the message list from the remote board API.
type Client struct {
	baseURL    string
	logger     *slog.Logger
	httpClient *http.Client
}

// NewClient returns a Client for the API at baseURL. The timeout applies to
// the whole request; a zero timeout means no client-side deadline.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListAll fetches every message on the board: GET {baseURL}/text/all.
// The returned slice preserves server order. On failure the second return
// value is one of the TransportError variants and the slice is nil.
func (c *Client) ListAll(ctx context.Context) ([]models.Message, models.TransportError) {
	endpoint := c.baseURL + "/text/all"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Could not build request", "url", endpoint, "error", err.Error())
		return nil, &models.BadURLError{URL: endpoint}
	}

	c.logger.Info("Fetching messages", "url", endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Fetch failed", "error", err.Error())
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Unexpected status", "status", resp.StatusCode)
		return nil, &models.BadStatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.BadBodyError{Message: err.Error()}
	}

	msgs, err := DecodeMessages(body)
	if err != nil {
		c.logger.Error("Undecodable response body", "error", err.Error())
		return nil, &models.BadBodyError{Message: err.Error()}
	}

	c.logger.Info("Fetched messages", "count", len(msgs))
	return msgs, nil
}

// classifyTransport maps an http.Client error onto a TransportError variant.
func classifyTransport(err error) models.TransportError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &models.TimeoutError{}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &models.TimeoutError{}
	}
	return &models.NetworkError{}
}
