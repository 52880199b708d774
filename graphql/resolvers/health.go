package resolvers

import (
	"context"

	gqlmodels "github.com/keshavk21/Think41/graphql/models"
)

func (r *QueryResolver) Health(ctx context.Context) (*gqlmodels.Health, error) {
	h, err := r.api.Health(ctx)
	if err != nil {
		return nil, err
	}
	return toHealth(h), nil
}
