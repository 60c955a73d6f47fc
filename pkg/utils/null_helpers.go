package utils

import (
	"time"

	"rental-system/pkg/types"

	"github.com/aarondl/null/v8"
)

func NullStringToStrPtr(n null.String) *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}

func NullIntToUint64Ptr(n null.Int) *uint64 {
	if !n.Valid {
		return nil
	}
	v := uint64(n.Int)
	return &v
}

func NullFloatToFloat64Ptr(n null.Float64) *float64 {
	if !n.Valid {
		return nil
	}
	f := n.Float64
	return &f
}

func NullDateToTimePtr(d types.NullDate) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

// NullBoolOrDefault возвращает значение null.Bool либо значение по умолчанию.
func NullBoolOrDefault(n null.Bool, def bool) bool {
	if n.Valid {
		return n.Bool
	}
	return def
}

// NullFloatOrZero используется для колонок с DEFAULT 0.
func NullFloatOrZero(n null.Float64) float64 {
	if n.Valid {
		return n.Float64
	}
	return 0
}

func TimeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func DateToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
