package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullDateUnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
		valid    bool
		wantErr  bool
	}{
		{"только дата", `"1990-05-01"`, time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC), true, false},
		{"полный RFC3339", `"2024-05-01T10:30:00Z"`, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), true, false},
		{"null", `null`, time.Time{}, false, false},
		{"пустая строка", `""`, time.Time{}, false, false},
		{"мусор", `"01.05.1990"`, time.Time{}, false, true},
		{"число вместо строки", `20240501`, time.Time{}, false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var d NullDate
			err := json.Unmarshal([]byte(tc.input), &d)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.valid, d.Valid)
			if tc.valid {
				assert.True(t, tc.expected.Equal(d.Time))
			}
		})
	}
}

func TestNullDateMarshalJSON(t *testing.T) {
	d := NullDate{Time: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC), Valid: true}
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1990-05-01"`, string(out))

	out, err = json.Marshal(NullDate{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}
