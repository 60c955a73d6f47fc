package utils

import (
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// ParsePaginationParams разбирает skip/limit из query-строки.
// Мусорные и отрицательные значения заменяются значениями по умолчанию.
func ParsePaginationParams(values url.Values) (limit uint64, offset uint64) {
	limit = DefaultLimit

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.ParseUint(limitStr, 10, 64); err == nil && l > 0 {
			if l > MaxLimit {
				limit = MaxLimit
			} else {
				limit = l
			}
		}
	}

	if skipStr := values.Get("skip"); skipStr != "" {
		if s, err := strconv.ParseUint(skipStr, 10, 64); err == nil {
			offset = s
		}
	}

	return limit, offset
}
