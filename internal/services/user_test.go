package services

import (
	"context"
	"testing"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	apperrors "rental-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeUserRepository хранит пользователей в памяти и имитирует
// уникальный индекс по логину.
type fakeUserRepository struct {
	users  []entities.User
	nextID uint64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{nextID: 1}
}

func (r *fakeUserRepository) GetUsers(_ context.Context, limit, offset uint64) ([]entities.User, uint64, error) {
	total := uint64(len(r.users))
	if offset >= total {
		return []entities.User{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return r.users[offset:end], total, nil
}

func (r *fakeUserRepository) FindUser(_ context.Context, id uint64) (*entities.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			return &r.users[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepository) FindUserByLogin(_ context.Context, login string) (*entities.User, error) {
	for i := range r.users {
		if r.users[i].Login == login {
			return &r.users[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user entities.User) (*entities.User, error) {
	for i := range r.users {
		if r.users[i].Login == user.Login {
			return nil, apperrors.ErrLoginTaken
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)
	return &user, nil
}

func TestUserServiceCreateUser(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, zap.NewNop())

	payload := dto.CreateUserDTO{
		Login:     "instructor1",
		Password:  "secret",
		FirstName: "Иван",
		LastName:  "Иванов",
		RoleID:    2,
	}

	created, err := svc.CreateUser(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), created.ID)
	assert.Equal(t, "instructor1", created.Login)
	assert.True(t, created.IsActive, "по умолчанию пользователь активен")
}

func TestUserServiceCreateUserLoginTaken(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, zap.NewNop())

	payload := dto.CreateUserDTO{
		Login:     "admin",
		Password:  "secret",
		FirstName: "Пётр",
		LastName:  "Петров",
		RoleID:    1,
	}

	_, err := svc.CreateUser(context.Background(), payload)
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), payload)
	assert.ErrorIs(t, err, apperrors.ErrLoginTaken)
}

func TestUserServiceCreateUserExplicitInactive(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, zap.NewNop())

	payload := dto.CreateUserDTO{
		Login:     "fired",
		Password:  "secret",
		FirstName: "Сидор",
		LastName:  "Сидоров",
		RoleID:    3,
		IsActive:  null.BoolFrom(false),
	}

	created, err := svc.CreateUser(context.Background(), payload)
	require.NoError(t, err)
	assert.False(t, created.IsActive)
}

func TestUserServiceGetUsersPagination(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, zap.NewNop())

	logins := []string{"u1", "u2", "u3"}
	for _, login := range logins {
		_, err := svc.CreateUser(context.Background(), dto.CreateUserDTO{
			Login:     login,
			Password:  "secret",
			FirstName: "Имя",
			LastName:  "Фамилия",
			RoleID:    1,
		})
		require.NoError(t, err)
	}

	page, total, err := svc.GetUsers(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, "u2", page[0].Login)
	assert.Equal(t, "u3", page[1].Login)
}

func TestUserServiceFindUserNotFound(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, zap.NewNop())

	_, err := svc.FindUser(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
