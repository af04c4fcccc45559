package dataset

import (
	"strconv"
	"time"
)

// Kind identifies the type of a cell value.
type Kind int

const (
	// KindMissing marks a cell with no usable value.
	KindMissing Kind = iota
	// KindString marks a free-text or categorical value.
	KindString
	// KindInt marks an integer value.
	KindInt
	// KindFloat marks a floating point value.
	KindFloat
	// KindTime marks a parsed date or time value.
	KindTime
)

// String returns the kind name used in logs and reports.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Value is a single cell of a dataset row.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Time  time.Time
}

// Missing returns the missing value.
func Missing() Value {
	return Value{Kind: KindMissing}
}

// String wraps a string value.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Int wraps an integer value.
func Int(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

// Float wraps a float value.
func Float(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// Time wraps a time value.
func Time(t time.Time) Value {
	return Value{Kind: KindTime, Time: t}
}

// IsMissing reports whether the value is the missing value.
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// AsFloat converts numeric values to float64. The second return is false for
// missing, string and time values.
func (v Value) AsFloat() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

// Canonical returns the stable string form of the value used for grouping,
// set membership and report output. Missing values render as "<missing>".
func (v Value) Canonical() string {
	switch v.Kind {
	case KindMissing:
		return "<missing>"
	case KindString:
		return v.Str
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindTime:
		return v.Time.Format(time.RFC3339)
	default:
		return "<unknown>"
	}
}

// Equal reports whether two values are the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindMissing:
		return true
	case KindString:
		return v.Str == o.Str
	case KindInt:
		return v.Int == o.Int
	case KindFloat:
		return v.Float == o.Float
	case KindTime:
		return v.Time.Equal(o.Time)
	default:
		return false
	}
}
