package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rental-system/internal/dto"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRoleService struct {
	roles  []dto.RoleDTO
	nextID uint64
}

func (s *stubRoleService) GetRoles(_ context.Context, limit, offset uint64) ([]dto.RoleDTO, uint64, error) {
	total := uint64(len(s.roles))
	if offset >= total {
		return []dto.RoleDTO{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return s.roles[offset:end], total, nil
}

func (s *stubRoleService) FindRole(_ context.Context, id uint64) (*dto.RoleDTO, error) {
	for i := range s.roles {
		if s.roles[i].ID == id {
			return &s.roles[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *stubRoleService) CreateRole(_ context.Context, payload dto.CreateRoleDTO) (*dto.RoleDTO, error) {
	s.nextID++
	role := dto.RoleDTO{ID: s.nextID, Name: payload.Name}
	s.roles = append(s.roles, role)
	return &role, nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	return e
}

func TestRoleControllerCreateRole(t *testing.T) {
	e := newTestEcho()
	ctrl := NewRoleController(&stubRoleService{}, zap.NewNop())

	body := `{"role_name":"Администратор"}`
	req := httptest.NewRequest(http.MethodPost, "/roles/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.CreateRole(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Администратор")
}

func TestRoleControllerCreateRoleValidation(t *testing.T) {
	e := newTestEcho()
	ctrl := NewRoleController(&stubRoleService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/roles/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.CreateRole(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ошибка валидации")
}

func TestRoleControllerFindRoleBadID(t *testing.T) {
	e := newTestEcho()
	ctrl := NewRoleController(&stubRoleService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/roles/abc", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("abc")

	err := ctrl.FindRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Неверный ID")
}

func TestRoleControllerFindRoleNotFound(t *testing.T) {
	e := newTestEcho()
	ctrl := NewRoleController(&stubRoleService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/roles/7", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("7")

	err := ctrl.FindRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoleControllerGetRolesPagination(t *testing.T) {
	e := newTestEcho()
	svc := &stubRoleService{}
	for _, name := range []string{"Администратор", "Инструктор", "Кассир"} {
		_, err := svc.CreateRole(context.Background(), dto.CreateRoleDTO{Name: name})
		require.NoError(t, err)
	}
	ctrl := NewRoleController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/roles/?limit=2&skip=1", nil)
	rec := httptest.NewRecorder()

	err := ctrl.GetRoles(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status bool `json:"status"`
		Body   struct {
			List       []dto.RoleDTO `json:"list"`
			Pagination struct {
				TotalCount uint64 `json:"total_count"`
				Limit      uint64 `json:"limit"`
				Offset     uint64 `json:"offset"`
			} `json:"pagination"`
		} `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	require.Len(t, resp.Body.List, 2)
	assert.Equal(t, "Инструктор", resp.Body.List[0].Name)
	assert.Equal(t, uint64(3), resp.Body.Pagination.TotalCount)
	assert.Equal(t, uint64(1), resp.Body.Pagination.Offset)
}
