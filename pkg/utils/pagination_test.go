package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaginationParams(t *testing.T) {
	testCases := []struct {
		name           string
		query          string
		expectedLimit  uint64
		expectedOffset uint64
	}{
		{"пустой запрос", "", DefaultLimit, 0},
		{"limit и skip заданы", "limit=25&skip=50", 25, 50},
		{"только skip", "skip=10", DefaultLimit, 10},
		{"limit выше потолка", "limit=10000", MaxLimit, 0},
		{"нулевой limit игнорируется", "limit=0", DefaultLimit, 0},
		{"мусор вместо чисел", "limit=abc&skip=xyz", DefaultLimit, 0},
		{"отрицательные значения игнорируются", "limit=-5&skip=-10", DefaultLimit, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			assert.NoError(t, err)

			limit, offset := ParsePaginationParams(values)
			assert.Equal(t, tc.expectedLimit, limit)
			assert.Equal(t, tc.expectedOffset, offset)
		})
	}
}
