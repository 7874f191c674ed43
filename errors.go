package client

import "github.com/extmarket/client-go/internal/types"

// APIError re-exported so callers compare against a single symbol.
type APIError = types.APIError

// AsAPIError unwraps err to an *APIError if one is in the chain.
func AsAPIError(err error) (*APIError, bool) { return types.AsAPIError(err) }

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool { return types.IsNotFound(err) }
