package client

import (
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// retryTransport decorates a Doer with exponential backoff for transient
// failures: transport-level errors and 408/429/5xx statuses. Every endpoint
// is a bodiless GET, so requests are safe to replay. The last outcome,
// response or error, is surfaced unchanged once attempts are exhausted.
type retryTransport struct {
	next       Doer
	maxRetries uint64

	// zero values fall back to the defaults below
	initialInterval time.Duration
	maxInterval     time.Duration
}

func (t *retryTransport) Do(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultClient
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxInterval = 2 * time.Second
	if t.initialInterval > 0 {
		bo.InitialInterval = t.initialInterval
	}
	if t.maxInterval > 0 {
		bo.MaxInterval = t.maxInterval
	}

	var attempt uint64
	for {
		resp, err := next.Do(req)
		if err == nil && !retryableStatus(resp.StatusCode) {
			return resp, nil
		}
		if attempt >= t.maxRetries {
			return resp, err
		}
		if err == nil {
			_ = resp.Body.Close()
		}
		attempt++
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(bo.NextBackOff()):
		}
	}
}

// retryableStatus classifies HTTP statuses: 408 and 429 are transient, other
// 4xx are caller mistakes that replaying cannot fix, 5xx are server-side and
// worth another attempt.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return code >= 500 && code <= 599
}
