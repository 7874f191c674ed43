package client

import (
	"net/http"
	"net/http/httputil"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// debugTransport dumps each request/response pair for troubleshooting API
// communication problems (malformed queries, unexpected response shapes,
// header issues). Every logical request gets a correlation id so request and
// response lines can be matched in interleaved logs.
//
// Logs include full bodies. Only enable in development or staging.
type debugTransport struct{ base Doer }

func (dt *debugTransport) Do(req *http.Request) (*http.Response, error) {
	id := uuid.NewString()
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().
			Str("request_id", id).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_dump", string(reqDump)).
			Msg("HTTP request")
	}

	next := dt.base
	if next == nil {
		next = http.DefaultClient
	}
	resp, err := next.Do(req)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", id).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().
			Str("request_id", id).
			Str("url", req.URL.String()).
			Int("status_code", resp.StatusCode).
			Str("response_dump", string(respDump)).
			Msg("HTTP response")
	}
	return resp, nil
}
