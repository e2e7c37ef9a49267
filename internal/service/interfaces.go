package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"service_alerts/internal/broadcast"
	"service_alerts/internal/domain"
	"service_alerts/internal/footprint"
)

// Source fetches raw alerts, already cleaned into the domain shape.
type Source interface {
	ID() string
	Name() string
	FetchAlerts(ctx context.Context) ([]domain.Alert, error)
}

type Datasets interface {
	Load(ctx context.Context, name string) (*domain.Dataset, error)
	Save(ctx context.Context, name string, alerts []domain.Alert) error
}

// Notifications maps notification numbers to the request numbers residents quote to the City.
type Notifications interface {
	RequestNumbers(ctx context.Context, dataset string) (map[string]string, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Drafter writes a social media post of at most limit characters for an alert.
type Drafter interface {
	Draft(ctx context.Context, alert domain.Alert, limit int) (string, error)
}

// Footprints computes geospatial footprints and the areas they overlap.
type Footprints interface {
	Apply(ctx context.Context, alerts []domain.Alert) (footprint.Summary, error)
	InferSuburbs(ctx context.Context, alerts []domain.Alert) error
	InferWards(ctx context.Context, alerts []domain.Alert) error
}

type Publisher interface {
	Publish(ctx context.Context, dataset string, alerts []domain.Alert) (int, error)
	Close() error
}

// FeedPublisher ships one public feed snapshot.
type FeedPublisher interface {
	PublishFeed(ctx context.Context, feed broadcast.Feed) error
}

// Stage is one step of a pipeline run.
type Stage interface {
	Name() string
	Run(ctx context.Context) (*domain.StageStats, error)
}
