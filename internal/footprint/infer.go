package footprint

import (
	"context"
	"fmt"

	"service_alerts/internal/areas"
	"service_alerts/internal/domain"
	"service_alerts/internal/geo"
)

// InferSuburbs sets InferredSuburbs from each alert's footprint.
func (a *Aggregator) InferSuburbs(ctx context.Context, alerts []domain.Alert) error {
	return a.infer(ctx, alerts, domain.AreaTypeSuburb, areas.AllAreas, func(al *domain.Alert, f domain.Field) {
		al.InferredSuburbs = f
	})
}

// InferWards sets InferredWards from each alert's footprint.
func (a *Aggregator) InferWards(ctx context.Context, alerts []domain.Alert) error {
	return a.infer(ctx, alerts, domain.AreaTypeWard, CurrentWards, func(al *domain.Alert, f domain.Field) {
		al.InferredWards = f
	})
}

func (a *Aggregator) infer(ctx context.Context, alerts []domain.Alert, areaType string, filter areas.Filter, set func(*domain.Alert, domain.Field)) error {
	layer, err := a.areas.GetLayer(ctx, areaType, filter)
	if err != nil {
		return fmt.Errorf("infer %s: %w", areaType, err)
	}

	for i := range alerts {
		alert := &alerts[i]
		if alert.GeospatialFootprint == nil {
			set(alert, domain.Field{})
			continue
		}
		shape, err := geo.ParseWKT(*alert.GeospatialFootprint)
		if err != nil {
			a.logger.Warn("unparseable footprint", "id", alert.ID, "error", err)
			set(alert, domain.Field{})
			continue
		}

		names := areas.InferContainment(shape, layer, areas.InferenceThreshold)
		if len(names) == 0 {
			set(alert, domain.Field{})
			continue
		}
		set(alert, domain.List(names...))
	}
	return nil
}
