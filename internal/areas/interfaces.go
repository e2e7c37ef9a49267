package areas

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"service_alerts/internal/domain"
)

// LayerSource loads the raw features of a named reference layer.
type LayerSource interface {
	LoadLayer(ctx context.Context, name string) ([]domain.AreaFeature, error)
}
