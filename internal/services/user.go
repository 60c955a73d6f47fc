package services

import (
	"context"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/utils"

	"go.uber.org/zap"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, limit, offset uint64) ([]dto.UserDTO, uint64, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error)
}

type UserService struct {
	repo   repositories.UserRepositoryInterface
	logger *zap.Logger
}

func NewUserService(repo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, limit, offset uint64) ([]dto.UserDTO, uint64, error) {
	users, total, err := s.repo.GetUsers(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, *userEntityToDTO(&user))
	}
	return dtos, total, nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	entity, err := s.repo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return userEntityToDTO(entity), nil
}

// CreateUser не делает предварительного чтения по логину: уникальность
// обеспечивает индекс в БД, репозиторий переводит дубликат в ErrLoginTaken.
func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	entity := entities.User{
		Login: payload.Login,
		// TODO: хешировать пароль (bcrypt) перед сохранением
		PasswordHash: payload.Password,
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		MiddleName:   utils.NullStringToStrPtr(payload.MiddleName),
		RoleID:       payload.RoleID,
		PhotoPath:    utils.NullStringToStrPtr(payload.PhotoPath),
		IsActive:     utils.NullBoolOrDefault(payload.IsActive, true),
	}

	created, err := s.repo.CreateUser(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Пользователь создан", zap.Uint64("user_id", created.ID), zap.String("login", created.Login))
	return userEntityToDTO(created), nil
}

func userEntityToDTO(entity *entities.User) *dto.UserDTO {
	d := &dto.UserDTO{
		ID:        entity.ID,
		Login:     entity.Login,
		FirstName: entity.FirstName,
		LastName:  entity.LastName,
		RoleID:    entity.RoleID,
		IsActive:  entity.IsActive,
		CreatedAt: utils.TimeToString(entity.CreatedAt),
		UpdatedAt: utils.TimeToString(entity.UpdatedAt),
	}
	if entity.MiddleName != nil {
		d.MiddleName = *entity.MiddleName
	}
	if entity.PhotoPath != nil {
		d.PhotoPath = *entity.PhotoPath
	}
	return d
}
