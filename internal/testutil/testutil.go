// Package testutil holds small helpers shared by tests.
package testutil

import (
	"io"
	"log/slog"
	"strconv"
	"time"

	"service_alerts/internal/domain"
)

func Ptr[T any](v T) *T {
	return &v
}

// Logger discards everything below error.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// Alert builds a minimal alert with the given id, published i hours after a fixed base time.
func Alert(id string, i int) domain.Alert {
	base := time.Date(2024, 3, 21, 8, 0, 0, 0, domain.SAST)
	return domain.Alert{
		ID:          id,
		ServiceArea: "Water & Sanitation",
		Title:       "Burst pipe " + strconv.Itoa(i),
		AreaType:    Ptr(domain.AreaTypeSuburb),
		Area:        Ptr("Rondebosch"),
		Location:    domain.Scalar("Main Road"),
		PublishDate: base.Add(time.Duration(i) * time.Hour),
	}
}
