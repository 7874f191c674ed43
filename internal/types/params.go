package types

// ------------------------------
// Request Parameters
// ------------------------------

// Sort orders an extension listing.
type Sort string

const (
	SortDownloads Sort = "downloads"
	SortRating    Sort = "rating"
	SortNewest    Sort = "newest"
	SortUpdated   Sort = "updated"
)

// ListExtensionsParams holds the optional query parameters for listing
// extensions. Nil pointer fields are omitted from the query string; set
// fields are sent even when zero-valued (page=0, search=""). Tags are
// comma-joined into a single parameter.
type ListExtensionsParams struct {
	Page      *int
	Limit     *int
	Category  *string
	Search    *string
	Tags      []string
	Sort      Sort
	Publisher *string
}

// ListReviewsParams holds the pagination window for listing reviews.
type ListReviewsParams struct {
	Page  *int
	Limit *int
}
