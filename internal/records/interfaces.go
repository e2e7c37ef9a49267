package records

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"service_alerts/internal/domain"
)

// Datasets is the persistent record store: named tables written with history.
type Datasets interface {
	Load(ctx context.Context, name string) (*domain.Dataset, error)
	Save(ctx context.Context, name string, alerts []domain.Alert) error
}
