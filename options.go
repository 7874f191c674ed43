package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the debug and retry transport decorators are
// installed. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithBaseURL overrides the default marketplace host. A trailing slash is
// trimmed; endpoint paths are appended verbatim.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if strings.TrimSpace(u) == "" {
			return errors.New("base URL cannot be empty")
		}
		c.baseURL = strings.TrimRight(u, "/")
		return nil
	}
}

// WithPlatform tags every request with an X-Platform header for server-side
// compatibility filtering.
func WithPlatform(platform string) Option {
	return func(c *Client) error {
		c.platform = platform
		return nil
	}
}

// WithAppVersion tags every request with an X-App-Version header for
// server-side compatibility filtering.
func WithAppVersion(version string) Option {
	return func(c *Client) error {
		c.appVersion = version
		return nil
	}
}

// WithTransport replaces the network-call capability, primarily for test
// doubles. When neither this nor WithHTTPTimeout is used the client resolves
// http.DefaultClient at call time.
func WithTransport(d Doer) Option {
	return func(c *Client) error {
		if d == nil {
			return errors.New("transport cannot be nil")
		}
		c.transport = d
		return nil
	}
}

// WithHTTPTimeout installs a dedicated http.Client with the given Timeout as
// the transport.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero. Mutually exclusive with WithTransport:
// whichever is applied last wins.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.transport = &http.Client{Timeout: d}
		return nil
	}
}

// WithHeader adds a default header sent on every request. The configured
// X-Platform and X-App-Version values always take precedence over headers set
// this way.
func WithHeader(key, value string) Option {
	return func(c *Client) error {
		if key == "" {
			return errors.New("header key cannot be empty")
		}
		c.header.Set(key, value)
		return nil
	}
}

// WithDebugLogging wraps the transport so each request/response is dumped to
// the log when enabled is true. Also switched on by the EXTMARKET_DEBUG or
// DEBUG environment variables.
//
// Do not enable this option in production environments as it increases
// verbosity and logs full request and response payloads.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}

// WithRetry wraps the transport with exponential backoff for transient
// failures (network errors and 408/429/5xx statuses), attempting at most
// maxRetries replays after the initial request. The core request path itself
// never retries; the policy lives entirely in the transport layer, so custom
// transports remain free to implement their own.
func WithRetry(maxRetries uint64) Option {
	return func(c *Client) error {
		c.retries = maxRetries
		return nil
	}
}
