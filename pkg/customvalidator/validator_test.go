package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emailPayload struct {
	Email string `validate:"omitempty,custom_email"`
}

func TestCustomEmailValidation(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))

	testCases := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"корректный адрес", "ivanov@example.com", false},
		{"адрес с поддоменом", "i.petrov@mail.rental.tj", false},
		{"пустой пропускается через omitempty", "", false},
		{"без собаки", "ivanov.example.com", true},
		{"без домена", "ivanov@", true},
		{"домен без зоны", "ivanov@example", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(&emailPayload{Email: tc.email})
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
