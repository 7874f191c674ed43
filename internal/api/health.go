package api

import (
	"context"

	"github.com/extmarket/client-go/internal/types"
)

// Health retrieves the service status record.
func Health(ctx context.Context, c Caller) (*types.Health, error) {
	var out types.Health
	if err := getJSON(ctx, c, "health", "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
