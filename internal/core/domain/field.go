// internal/core/domain/field.go
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SortKey names a sortable or filterable attribute of a record
type SortKey string

// FieldKind is the declared comparison type of a field
type FieldKind int

const (
	KindString FieldKind = iota
	KindNumber
	KindTime
)

func (k FieldKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// FieldValue is a resolved, comparable field value.
// Strings are stored lower-cased, timestamps as unix milliseconds.
type FieldValue struct {
	Kind   FieldKind
	Text   string
	Number decimal.Decimal
	Millis int64
}

// StringValue builds a case-folded string value
func StringValue(s string) FieldValue {
	return FieldValue{Kind: KindString, Text: strings.ToLower(s)}
}

// NumberValue builds a numeric value
func NumberValue(d decimal.Decimal) FieldValue {
	return FieldValue{Kind: KindNumber, Number: d}
}

// IntValue builds a numeric value from an integer
func IntValue(n int64) FieldValue {
	return NumberValue(decimal.NewFromInt(n))
}

// TimeValue builds a timestamp value. The zero time resolves to epoch 0.
func TimeValue(t time.Time) FieldValue {
	if t.IsZero() {
		return FieldValue{Kind: KindTime}
	}
	return FieldValue{Kind: KindTime, Millis: t.UnixMilli()}
}

// TimestampValue parses raw and builds a timestamp value.
// Unparsable input resolves to epoch 0.
func TimestampValue(raw string) FieldValue {
	t, ok := ParseTimestamp(raw)
	if !ok {
		return FieldValue{Kind: KindTime}
	}
	return TimeValue(t)
}

// ZeroValue returns the fallback value for a kind
func ZeroValue(kind FieldKind) FieldValue {
	return FieldValue{Kind: kind}
}

// Compare orders two values. Values of different kinds order by kind.
func (v FieldValue) Compare(other FieldValue) int {
	if v.Kind != other.Kind {
		if v.Kind < other.Kind {
			return -1
		}
		return 1
	}

	switch v.Kind {
	case KindNumber:
		return v.Number.Cmp(other.Number)
	case KindTime:
		switch {
		case v.Millis < other.Millis:
			return -1
		case v.Millis > other.Millis:
			return 1
		}
		return 0
	default:
		return strings.Compare(v.Text, other.Text)
	}
}

// timestampLayouts are tried in order. The upstream inventory system emits
// offsets without a colon (2025-01-10T09:30:00+0100).
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses the timestamp formats seen in upstream payloads
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
