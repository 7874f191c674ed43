package client

import "github.com/extmarket/client-go/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Extension  = types.Extension
	Publisher  = types.Publisher
	Category   = types.Category
	Version    = types.Version
	Review     = types.Review
	Pagination = types.Pagination
	Download   = types.Download
	Health     = types.Health

	// Responses
	ExtensionList = types.ExtensionList
	ReviewList    = types.ReviewList

	// Request parameters
	ListExtensionsParams = types.ListExtensionsParams
	ListReviewsParams    = types.ListReviewsParams
	Sort                 = types.Sort
)

// Listing sort orders accepted by the /extensions endpoint.
const (
	SortDownloads = types.SortDownloads
	SortRating    = types.SortRating
	SortNewest    = types.SortNewest
	SortUpdated   = types.SortUpdated
)

// Int returns a pointer to v, for optional query parameter fields.
func Int(v int) *int { return &v }

// String returns a pointer to v, for optional query parameter fields.
func String(v string) *string { return &v }
