package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrDuplicateNotification is returned when a notification number appears on more than one row.
var ErrDuplicateNotification = errors.New("duplicate notification number")

type requestNumberRow struct {
	NotificationNumber string `db:"notification_number"`
	RequestNumber      string `db:"request_number"`
}

// RequestNumbers maps notification numbers to their request numbers, read from the latest
// version of a service notification dataset. Rows are keyed by record id and carry the
// request number as ReferenceNumber. Rows without either are ignored.
func (s *DatasetStore) RequestNumbers(ctx context.Context, name string) (map[string]string, error) {
	version, err := s.latestVersion(ctx, name)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT record_id AS notification_number, payload->>'ReferenceNumber' AS request_number
		FROM dataset_rows
		WHERE version_id = $1
			AND record_id IS NOT NULL
			AND payload->>'ReferenceNumber' IS NOT NULL
		ORDER BY position`

	var rows []requestNumberRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, version); err != nil {
		return nil, fmt.Errorf("select request numbers of %s: %w", name, err)
	}

	numbers := make(map[string]string, len(rows))
	for _, r := range rows {
		if _, ok := numbers[r.NotificationNumber]; ok {
			return nil, fmt.Errorf("%s: %w: %s", name, ErrDuplicateNotification, r.NotificationNumber)
		}
		numbers[r.NotificationNumber] = r.RequestNumber
	}
	return numbers, nil
}
