package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/extmarket/client-go/internal/types"
)

// Doer is the transport capability invoked once per logical request.
// *http.Client satisfies it; tests substitute stubs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Caller carries the immutable request configuration shared by every
// operation. The zero HTTP field is valid: the transport is resolved at call
// time so environments without one fail only when a request is attempted.
type Caller struct {
	HTTP       Doer
	BaseURL    string
	Platform   string
	AppVersion string
	Header     http.Header
}

func (c Caller) doer() Doer {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// query accumulates URL parameters preserving insertion order.
// url.Values is deliberately not used here: its Encode sorts keys.
type query struct {
	pairs [][2]string
}

func (q *query) add(key, value string) {
	q.pairs = append(q.pairs, [2]string{key, value})
}

func (q *query) addInt(key string, v int) {
	q.add(key, strconv.Itoa(v))
}

func (q *query) encode() string {
	if q == nil || len(q.pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}

// getJSON performs one GET round trip: URL assembly, header merge, status
// validation, and body decoding. Non-2xx responses become *types.APIError;
// transport and decode failures propagate unchanged.
func getJSON(ctx context.Context, c Caller, op, path string, q *query, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u := c.BaseURL + path
	if qs := q.encode(); qs != "" {
		u += "?" + qs
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, vals := range c.Header {
		req.Header.Del(k)
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	// Configured identity headers win over ad-hoc defaults for these two keys.
	if c.Platform != "" {
		req.Header.Set("X-Platform", c.Platform)
	}
	if c.AppVersion != "" {
		req.Header.Set("X-App-Version", c.AppVersion)
	}

	resp, err := c.doer().Do(req)
	if err != nil {
		requestFailures.WithLabelValues(op).Inc()
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	requestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return apiErrorFrom(resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

// apiErrorFrom resolves the error message for a non-2xx response: the body's
// "error" field when it decodes as JSON, otherwise the synthetic fallback.
func apiErrorFrom(status int, body []byte) *types.APIError {
	msg := "HTTP " + strconv.Itoa(status)
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	return &types.APIError{Message: msg, StatusCode: status}
}
