package api

import (
	"context"

	"github.com/extmarket/client-go/internal/types"
)

// ListCategories retrieves all categories with per-category extension counts.
func ListCategories(ctx context.Context, c Caller) ([]types.Category, error) {
	var out types.CategoryList
	if err := getJSON(ctx, c, "list_categories", "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}
