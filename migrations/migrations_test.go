package migrations

import (
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var varcharRe = regexp.MustCompile(`(?m)^\s*(\w+) VARCHAR\((\d+)\)`)

// Ширина строковых колонок не должна быть уже, чем max-ограничения
// валидатора на границе API, иначе принятое тело запроса падает в БД
// с ошибкой 22001 вместо 400.
func TestColumnWidthsCoverValidatorLimits(t *testing.T) {
	data, err := FS.ReadFile("00001_init.sql")
	require.NoError(t, err)

	widths := map[string]int{}
	for _, m := range varcharRe.FindAllStringSubmatch(string(data), -1) {
		w, err := strconv.Atoi(m[2])
		require.NoError(t, err)
		if prev, ok := widths[m[1]]; !ok || w < prev {
			widths[m[1]] = w
		}
	}

	// колонка -> max из validate-тега соответствующего Create DTO
	validatorLimits := map[string]int{
		"login":           50,
		"password_hash":   255,
		"first_name":      100,
		"last_name":       100,
		"middle_name":     100,
		"photo_path":      500,
		"client_code":     20,
		"email":           255,
		"phone":           20,
		"passport_series": 10,
		"passport_number": 20,
		"category_name":   100,
		"brand":           100,
		"model":           100,
		"size":            20,
		"barcode":         255,
		"service_name":    200,
		"order_number":    50,
		"item_name":       200,
		"unit_of_measure": 20,
		"supplier":        200,
		"document_number": 100,
	}

	for column, limit := range validatorLimits {
		width, ok := widths[column]
		require.True(t, ok, "колонка %s не найдена в миграции", column)
		assert.GreaterOrEqual(t, width, limit,
			fmt.Sprintf("колонка %s уже, чем допускает валидатор", column))
	}
}
