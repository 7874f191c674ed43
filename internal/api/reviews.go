package api

import (
	"context"
	"net/url"

	"github.com/extmarket/client-go/internal/types"
)

// ListReviews retrieves a page of reviews for an extension.
func ListReviews(ctx context.Context, c Caller, slug string, p *types.ListReviewsParams) (*types.ReviewList, error) {
	q := &query{}
	if p != nil {
		if p.Page != nil {
			q.addInt("page", *p.Page)
		}
		if p.Limit != nil {
			q.addInt("limit", *p.Limit)
		}
	}
	var out types.ReviewList
	if err := getJSON(ctx, c, "list_reviews", "/extensions/"+url.PathEscape(slug)+"/reviews", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
