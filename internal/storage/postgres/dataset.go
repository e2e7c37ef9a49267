package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"service_alerts/internal/domain"
	"service_alerts/internal/records"
)

// DefaultHistory is the number of versions kept per dataset.
const DefaultHistory = 5

// DatasetStore keeps every dataset as a list of versions. Each save writes a new
// version and older versions beyond the history limit are pruned.
type DatasetStore struct {
	db      *sqlx.DB
	tm      *TransactionManager
	history int
}

func NewDatasetStore(db *sqlx.DB, tm *TransactionManager, history int) *DatasetStore {
	if history <= 0 {
		history = DefaultHistory
	}
	return &DatasetStore{db: db, tm: tm, history: history}
}

type datasetRow struct {
	Position      int            `db:"position"`
	Checksum      sql.NullString `db:"checksum"`
	Payload       []byte         `db:"payload"`
	SpuriousIndex bool           `db:"spurious_index"`
}

func (s *DatasetStore) latestVersion(ctx context.Context, name string) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id,
		`SELECT id FROM dataset_versions WHERE dataset = $1 ORDER BY id DESC LIMIT 1`,
		name,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("dataset %s: %w", name, records.ErrDatasetNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("get latest version of %s: %w", name, err)
	}
	return id, nil
}

func (s *DatasetStore) Load(ctx context.Context, name string) (*domain.Dataset, error) {
	version, err := s.latestVersion(ctx, name)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT position, checksum, payload - 'index' AS payload, payload ? 'index' AS spurious_index
		FROM dataset_rows
		WHERE version_id = $1
		ORDER BY position`

	var rows []datasetRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, version); err != nil {
		return nil, fmt.Errorf("select rows of %s: %w", name, err)
	}

	ds := &domain.Dataset{
		Name:   name,
		Alerts: make([]domain.Alert, 0, len(rows)),
	}
	for _, r := range rows {
		var alert domain.Alert
		if err := json.Unmarshal(r.Payload, &alert); err != nil {
			return nil, fmt.Errorf("decode row %d of %s: %w", r.Position, name, err)
		}
		alert.InputChecksum = r.Checksum.String
		ds.SpuriousIndex = ds.SpuriousIndex || r.SpuriousIndex
		ds.Alerts = append(ds.Alerts, alert)
	}
	return ds, nil
}

func (s *DatasetStore) Save(ctx context.Context, name string, alerts []domain.Alert) error {
	return s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		tx := GetTxFromContext(ctx)

		var version int64
		err := tx.GetContext(ctx, &version,
			`INSERT INTO dataset_versions (dataset, row_count) VALUES ($1, $2) RETURNING id`,
			name, len(alerts),
		)
		if err != nil {
			return fmt.Errorf("insert version of %s: %w", name, err)
		}

		if err := copyRows(ctx, tx, version, alerts); err != nil {
			return fmt.Errorf("copy rows of %s: %w", name, err)
		}

		_, err = tx.ExecContext(ctx, `
			DELETE FROM dataset_versions
			WHERE dataset = $1 AND id NOT IN (
				SELECT id FROM dataset_versions WHERE dataset = $1 ORDER BY id DESC LIMIT $2
			)`,
			name, s.history,
		)
		if err != nil {
			return fmt.Errorf("prune versions of %s: %w", name, err)
		}
		return nil
	})
}

func copyRows(ctx context.Context, tx *sqlx.Tx, version int64, alerts []domain.Alert) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("dataset_rows", "version_id", "position", "record_id", "checksum", "payload"))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, a := range alerts {
		checksum := nullable(a.InputChecksum)
		a.InputChecksum = ""
		payload, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("encode row %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, version, i, nullable(a.ID), checksum, string(payload)); err != nil {
			return err
		}
	}

	_, err = stmt.ExecContext(ctx)
	return err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
