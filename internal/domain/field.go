package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FieldKind tags which variant a Field holds.
type FieldKind uint8

const (
	FieldAbsent FieldKind = iota
	FieldScalar
	FieldList
)

// Field is a value that may be missing, a single string or a list of strings.
// It is resolved once at ingestion so downstream stages never sniff types.
type Field struct {
	kind   FieldKind
	scalar string
	list   []string
}

func Scalar(s string) Field {
	return Field{kind: FieldScalar, scalar: s}
}

func List(values ...string) Field {
	return Field{kind: FieldList, list: append([]string(nil), values...)}
}

// ParseField resolves a raw ingested string. JSON array literals become lists,
// blank strings are absent, anything else is a scalar.
func ParseField(raw string) Field {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Field{}
	}
	if strings.HasPrefix(trimmed, "[") {
		var values []string
		if err := json.Unmarshal([]byte(trimmed), &values); err == nil {
			return List(values...)
		}
	}
	return Scalar(trimmed)
}

func (f Field) Kind() FieldKind { return f.kind }

func (f Field) IsAbsent() bool { return f.kind == FieldAbsent }

// Values returns the field as a slice: nil when absent, one element for a scalar.
func (f Field) Values() []string {
	switch f.kind {
	case FieldScalar:
		return []string{f.scalar}
	case FieldList:
		return append([]string(nil), f.list...)
	default:
		return nil
	}
}

// String joins list values with "; ". Absent fields render as the empty string.
func (f Field) String() string {
	switch f.kind {
	case FieldScalar:
		return f.scalar
	case FieldList:
		return strings.Join(f.list, "; ")
	default:
		return ""
	}
}

func (f Field) MarshalJSON() ([]byte, error) {
	switch f.kind {
	case FieldScalar:
		return json.Marshal(f.scalar)
	case FieldList:
		if f.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(f.list)
	default:
		return []byte("null"), nil
	}
}

func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*f = Field{}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode scalar field: %w", err)
		}
		*f = Scalar(s)
	case data[0] == '[':
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("decode list field: %w", err)
		}
		*f = List(values...)
	default:
		return fmt.Errorf("unsupported field value: %s", data)
	}
	return nil
}
