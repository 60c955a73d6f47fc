package utils

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type nullFieldsPayload struct {
	Status null.String  `validate:"omitempty,oneof=active completed"`
	Amount null.Float64 `validate:"omitempty,gte=0"`
}

func TestValidatorNullTypes(t *testing.T) {
	cv := NewValidator(validator.New())

	t.Run("незаполненные null-поля пропускаются через omitempty", func(t *testing.T) {
		err := cv.Validate(&nullFieldsPayload{})
		assert.NoError(t, err)
	})

	t.Run("валидное значение внутри null.String проходит oneof", func(t *testing.T) {
		err := cv.Validate(&nullFieldsPayload{Status: null.StringFrom("active")})
		assert.NoError(t, err)
	})

	t.Run("невалидное значение внутри null.String отклоняется", func(t *testing.T) {
		err := cv.Validate(&nullFieldsPayload{Status: null.StringFrom("deleted")})
		assert.Error(t, err)
		assert.IsType(t, validator.ValidationErrors{}, err)
	})

	t.Run("отрицательная сумма отклоняется", func(t *testing.T) {
		err := cv.Validate(&nullFieldsPayload{Amount: null.Float64From(-1)})
		assert.Error(t, err)
	})

	t.Run("нулевая сумма проходит", func(t *testing.T) {
		err := cv.Validate(&nullFieldsPayload{Amount: null.Float64From(0)})
		assert.NoError(t, err)
	})
}
