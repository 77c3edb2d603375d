package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/learnsetu/lms-backend/internal/pkg/apperrors"
	"github.com/learnsetu/lms-backend/internal/pkg/logger"
)

// Fetcher retrieves the external catalog document
type Fetcher interface {
	FetchDocument(ctx context.Context) (*Document, error)
}

// Client fetches the catalog document from the remote JSON endpoint. Each
// call hits the remote feed; there is no cache and no retry, so callers must
// fetch once per request and reuse the document.
type Client struct {
	http *resty.Client
	url  string
}

// NewClient creates a catalog client for the given endpoint URL
func NewClient(url string) *Client {
	return &Client{
		http: resty.New(),
		url:  url,
	}
}

// FetchDocument retrieves and decodes the full catalog document
func (c *Client) FetchDocument(ctx context.Context) (*Document, error) {
	resp, err := c.http.R().SetContext(ctx).Get(c.url)
	if err != nil {
		logger.Error().Err(err).Str("url", c.url).Msg("External catalog fetch failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode() != 200 {
		logger.Error().Int("status", resp.StatusCode()).Str("url", c.url).Msg("External catalog returned non-200")
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode())
	}

	var doc Document
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		logger.Error().Err(err).Str("url", c.url).Msg("External catalog document is not valid JSON")
		return nil, fmt.Errorf("%w: decode: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	return &doc, nil
}
