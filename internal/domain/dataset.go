package domain

// Dataset is the latest persisted version of a named table of alerts.
type Dataset struct {
	Name   string
	Alerts []Alert
	// SpuriousIndex is set when stored rows carried a positional "index" column
	// left behind by an earlier writer. The column is stripped on load.
	SpuriousIndex bool
}

// HasChecksums reports whether the dataset carries the checksum column.
// An empty dataset is treated as compatible.
func (d *Dataset) HasChecksums() bool {
	if len(d.Alerts) == 0 {
		return true
	}
	for _, a := range d.Alerts {
		if a.InputChecksum != "" {
			return true
		}
	}
	return false
}

// AreaFeature is one named polygon of a reference layer, as stored.
type AreaFeature struct {
	Layer      string         `db:"layer"`
	Name       string         `db:"name"`
	WKT        string         `db:"wkt"`
	Attributes map[string]any `db:"-"`
}
