package client

import (
	"context"
	"net/http"

	"github.com/extmarket/client-go/internal/api"
)

// DefaultBaseURL is the production marketplace host used when no base URL is
// configured.
const DefaultBaseURL = "https://api.extmarket.dev/v1"

// Doer is the transport capability the client invokes once per logical
// request. *http.Client satisfies it.
type Doer = api.Doer

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is stateless between calls; it holds only immutable configuration
// set at construction, so concurrent use needs no locking.
type Client struct {
	baseURL    string
	platform   string
	appVersion string
	header     http.Header
	transport  Doer

	debug   bool
	retries uint64
}

// New constructs a Client. Defaults come from the EXTMARKET_* environment
// variables where set; explicit options are applied afterwards and win.
//
// When no transport is configured the client falls back to
// http.DefaultClient, resolved at call time rather than here.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: DefaultBaseURL,
		header:  make(http.Header),
	}

	envOpts, err := optionsFromEnv()
	if err != nil {
		return nil, err
	}
	for _, opt := range append(envOpts, opts...) {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Decorator order matters: debug sits innermost so every retry attempt
	// is logged individually.
	if c.debug {
		c.transport = &debugTransport{base: c.transport}
	}
	if c.retries > 0 {
		c.transport = &retryTransport{next: c.transport, maxRetries: c.retries}
	}
	return c, nil
}

func (c *Client) caller() api.Caller {
	return api.Caller{
		HTTP:       c.transport,
		BaseURL:    c.baseURL,
		Platform:   c.platform,
		AppVersion: c.appVersion,
		Header:     c.header,
	}
}

// --------------------------------------------------------------------
// Extension operations - delegated to internal/api
// --------------------------------------------------------------------

// ListExtensions retrieves a page of the catalog. A nil params lists with the
// server defaults.
func (c *Client) ListExtensions(ctx context.Context, params *ListExtensionsParams) (*ExtensionList, error) {
	return api.ListExtensions(ctx, c.caller(), params)
}

// GetExtension retrieves the full detail record for the given slug.
func (c *Client) GetExtension(ctx context.Context, slug string) (*Extension, error) {
	return api.GetExtension(ctx, c.caller(), slug)
}

// GetDownloadURL retrieves a signed download descriptor. Pass an empty
// version to let the server pick the latest release.
func (c *Client) GetDownloadURL(ctx context.Context, slug, version string) (*Download, error) {
	return api.GetDownloadURL(ctx, c.caller(), slug, version)
}

// ListVersions retrieves the ordered version history for an extension.
func (c *Client) ListVersions(ctx context.Context, slug string) ([]Version, error) {
	return api.ListVersions(ctx, c.caller(), slug)
}

// --------------------------------------------------------------------
// Category, review and health operations - delegated to internal/api
// --------------------------------------------------------------------

// ListCategories retrieves all categories with per-category extension counts.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	return api.ListCategories(ctx, c.caller())
}

// ListReviews retrieves a page of reviews for an extension.
func (c *Client) ListReviews(ctx context.Context, slug string, params *ListReviewsParams) (*ReviewList, error) {
	return api.ListReviews(ctx, c.caller(), slug, params)
}

// Health retrieves the marketplace service status.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	return api.Health(ctx, c.caller())
}
