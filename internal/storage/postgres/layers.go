package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"service_alerts/internal/areas"
	"service_alerts/internal/domain"
)

// insertBatchSize keeps multi-row inserts under the 65535 parameter limit.
const insertBatchSize = 1000

type LayerStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewLayerStore(db *sqlx.DB, tm *TransactionManager) *LayerStore {
	return &LayerStore{db: db, tm: tm}
}

type layerRow struct {
	domain.AreaFeature
	RawAttributes []byte `db:"attributes"`
}

func (s *LayerStore) LoadLayer(ctx context.Context, name string) ([]domain.AreaFeature, error) {
	var rows []layerRow
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows,
		`SELECT layer, name, wkt, attributes FROM area_layers WHERE layer = $1 ORDER BY id`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("select layer %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("layer %s: %w", name, areas.ErrLayerNotFound)
	}

	features := make([]domain.AreaFeature, 0, len(rows))
	for _, r := range rows {
		f := r.AreaFeature
		if len(r.RawAttributes) > 0 {
			if err := json.Unmarshal(r.RawAttributes, &f.Attributes); err != nil {
				return nil, fmt.Errorf("decode attributes of %s/%s: %w", name, f.Name, err)
			}
		}
		features = append(features, f)
	}
	return features, nil
}

// ReplaceLayer swaps the contents of a layer for features.
func (s *LayerStore) ReplaceLayer(ctx context.Context, name string, features []domain.AreaFeature) error {
	return s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, s.db)

		if _, err := exec.ExecContext(ctx, `DELETE FROM area_layers WHERE layer = $1`, name); err != nil {
			return fmt.Errorf("clear layer %s: %w", name, err)
		}

		for start := 0; start < len(features); start += insertBatchSize {
			end := min(start+insertBatchSize, len(features))
			if err := insertFeatures(ctx, exec, name, features[start:end]); err != nil {
				return fmt.Errorf("insert layer %s: %w", name, err)
			}
		}
		return nil
	})
}

func insertFeatures(ctx context.Context, exec sqlx.ExtContext, layer string, features []domain.AreaFeature) error {
	var sb strings.Builder
	sb.WriteString("INSERT INTO area_layers (layer, name, wkt, attributes) VALUES ")
	valueArgs := make([]any, 0, len(features)*4)

	for i, f := range features {
		attrs, err := json.Marshal(f.Attributes)
		if err != nil {
			return fmt.Errorf("encode attributes of %s: %w", f.Name, err)
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($")
		sb.WriteString(strconv.Itoa(i*4 + 1))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*4 + 2))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*4 + 3))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*4 + 4))
		sb.WriteString(")")
		valueArgs = append(valueArgs, layer, f.Name, f.WKT, string(attrs))
	}

	_, err := exec.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}
