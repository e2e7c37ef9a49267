package records

import "service_alerts/internal/domain"

// DedupByID concatenates old and new rows and keeps the last occurrence of each
// identifier, in order of that last occurrence. Rows without an identifier are kept.
func DedupByID(old, fresh []domain.Alert) []domain.Alert {
	all := make([]domain.Alert, 0, len(old)+len(fresh))
	all = append(all, old...)
	all = append(all, fresh...)

	last := make(map[string]int, len(all))
	for i, a := range all {
		if a.ID != "" {
			last[a.ID] = i
		}
	}

	out := make([]domain.Alert, 0, len(last))
	for i, a := range all {
		if a.ID == "" || last[a.ID] == i {
			out = append(out, a)
		}
	}
	return out
}
