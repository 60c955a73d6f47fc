package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rental-system/internal/dto"
	apperrors "rental-system/pkg/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUserService struct {
	takenLogins map[string]bool
}

func (s *stubUserService) GetUsers(_ context.Context, _, _ uint64) ([]dto.UserDTO, uint64, error) {
	return []dto.UserDTO{}, 0, nil
}

func (s *stubUserService) FindUser(_ context.Context, _ uint64) (*dto.UserDTO, error) {
	return nil, apperrors.ErrNotFound
}

func (s *stubUserService) CreateUser(_ context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	if s.takenLogins[payload.Login] {
		return nil, apperrors.ErrLoginTaken
	}
	return &dto.UserDTO{ID: 1, Login: payload.Login, IsActive: true}, nil
}

func postUser(e *echo.Echo, ctrl *UserController, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = ctrl.CreateUser(e.NewContext(req, rec))
	return rec
}

func TestUserControllerCreateUser(t *testing.T) {
	e := newTestEcho()
	ctrl := NewUserController(&stubUserService{}, zap.NewNop())

	body := `{"login":"instructor1","password":"secret","first_name":"Иван","last_name":"Иванов","role_id":2}`
	rec := postUser(e, ctrl, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "instructor1")
	assert.NotContains(t, rec.Body.String(), "secret", "пароль не должен попадать в ответ")
}

func TestUserControllerCreateUserLoginTaken(t *testing.T) {
	e := newTestEcho()
	svc := &stubUserService{takenLogins: map[string]bool{"admin": true}}
	ctrl := NewUserController(svc, zap.NewNop())

	body := `{"login":"admin","password":"secret","first_name":"Пётр","last_name":"Петров","role_id":1}`
	rec := postUser(e, ctrl, body)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "логин уже зарегистрирован")
}

func TestUserControllerCreateUserMissingFields(t *testing.T) {
	e := newTestEcho()
	ctrl := NewUserController(&stubUserService{}, zap.NewNop())

	rec := postUser(e, ctrl, `{"login":"x"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ошибка валидации")
}
