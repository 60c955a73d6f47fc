package services

import (
	"context"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/utils"

	"go.uber.org/zap"
)

type ClientServiceInterface interface {
	GetClients(ctx context.Context, limit, offset uint64) ([]dto.ClientDTO, uint64, error)
	FindClient(ctx context.Context, id uint64) (*dto.ClientDTO, error)
	CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*dto.ClientDTO, error)
}

type ClientService struct {
	repo   repositories.ClientRepositoryInterface
	logger *zap.Logger
}

func NewClientService(repo repositories.ClientRepositoryInterface, logger *zap.Logger) ClientServiceInterface {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) GetClients(ctx context.Context, limit, offset uint64) ([]dto.ClientDTO, uint64, error) {
	clients, total, err := s.repo.GetClients(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.ClientDTO, 0, len(clients))
	for _, client := range clients {
		dtos = append(dtos, *clientEntityToDTO(&client))
	}
	return dtos, total, nil
}

func (s *ClientService) FindClient(ctx context.Context, id uint64) (*dto.ClientDTO, error) {
	entity, err := s.repo.FindClient(ctx, id)
	if err != nil {
		return nil, err
	}
	return clientEntityToDTO(entity), nil
}

func (s *ClientService) CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*dto.ClientDTO, error) {
	entity := entities.Client{
		ClientCode:     payload.ClientCode,
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		MiddleName:     utils.NullStringToStrPtr(payload.MiddleName),
		Email:          utils.NullStringToStrPtr(payload.Email),
		Phone:          utils.NullStringToStrPtr(payload.Phone),
		Address:        utils.NullStringToStrPtr(payload.Address),
		BirthDate:      utils.NullDateToTimePtr(payload.BirthDate),
		PassportSeries: utils.NullStringToStrPtr(payload.PassportSeries),
		PassportNumber: utils.NullStringToStrPtr(payload.PassportNumber),
	}

	created, err := s.repo.CreateClient(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Клиент создан", zap.Uint64("client_id", created.ID), zap.String("client_code", created.ClientCode))
	return clientEntityToDTO(created), nil
}

func clientEntityToDTO(entity *entities.Client) *dto.ClientDTO {
	d := &dto.ClientDTO{
		ID:         entity.ID,
		ClientCode: entity.ClientCode,
		FirstName:  entity.FirstName,
		LastName:   entity.LastName,
		BirthDate:  utils.DateToString(entity.BirthDate),
		CreatedAt:  utils.TimeToString(entity.CreatedAt),
		UpdatedAt:  utils.TimeToString(entity.UpdatedAt),
	}
	if entity.MiddleName != nil {
		d.MiddleName = *entity.MiddleName
	}
	if entity.Email != nil {
		d.Email = *entity.Email
	}
	if entity.Phone != nil {
		d.Phone = *entity.Phone
	}
	if entity.Address != nil {
		d.Address = *entity.Address
	}
	if entity.PassportSeries != nil {
		d.PassportSeries = *entity.PassportSeries
	}
	if entity.PassportNumber != nil {
		d.PassportNumber = *entity.PassportNumber
	}
	return d
}
