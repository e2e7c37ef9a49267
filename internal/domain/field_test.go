package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Field
	}{
		{"blank", "   ", Field{}},
		{"scalar", " Main Road ", Scalar("Main Road")},
		{"list", `["Main Road", "Belvedere Road"]`, List("Main Road", "Belvedere Road")},
		{"bracketed text", "[Main Road", Scalar("[Main Road")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseField(tt.raw))
		})
	}
}

func TestField_Values(t *testing.T) {
	assert.Nil(t, Field{}.Values())
	assert.Equal(t, []string{"a"}, Scalar("a").Values())
	assert.Equal(t, []string{"a", "b"}, List("a", "b").Values())
	assert.Equal(t, "a; b", List("a", "b").String())
	assert.True(t, Field{}.IsAbsent())
	assert.Equal(t, FieldList, List().Kind())
}

func TestField_JSON(t *testing.T) {
	type row struct {
		F Field `json:"f"`
	}
	for _, f := range []Field{{}, Scalar("Rondebosch"), List("59", "60"), List()} {
		data, err := json.Marshal(row{F: f})
		require.NoError(t, err)

		var back row
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, f.Kind(), back.F.Kind(), string(data))
		assert.Equal(t, f.String(), back.F.String())
	}

	var r row
	assert.Error(t, json.Unmarshal([]byte(`{"f": 12}`), &r))
}

func TestAlert_ValuesExcludeIdentity(t *testing.T) {
	a := Alert{ID: "1", ServiceArea: "Electricity", PublishDate: time.Date(2024, 3, 21, 8, 0, 0, 0, SAST)}
	b := a
	b.ID = "2"
	b.InputChecksum = "abc"

	assert.Equal(t, a.Values(), b.Values())

	b.Planned = new(bool)
	assert.NotEqual(t, a.Values(), b.Values())
	assert.Equal(t, "false", b.Values()[12])
}

func TestDataset_HasChecksums(t *testing.T) {
	assert.True(t, (&Dataset{}).HasChecksums())
	assert.False(t, (&Dataset{Alerts: []Alert{{ID: "1"}}}).HasChecksums())
	assert.True(t, (&Dataset{Alerts: []Alert{{ID: "1"}, {ID: "2", InputChecksum: "x"}}}).HasChecksums())
}
