package services

import (
	"context"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/utils"

	"go.uber.org/zap"
)

type ConsumableTransactionServiceInterface interface {
	GetTransactions(ctx context.Context, limit, offset uint64) ([]dto.ConsumableTransactionDTO, uint64, error)
	FindTransaction(ctx context.Context, id uint64) (*dto.ConsumableTransactionDTO, error)
	CreateTransaction(ctx context.Context, payload dto.CreateConsumableTransactionDTO) (*dto.ConsumableTransactionDTO, error)
}

type ConsumableTransactionService struct {
	repo   repositories.ConsumableTransactionRepositoryInterface
	logger *zap.Logger
}

func NewConsumableTransactionService(repo repositories.ConsumableTransactionRepositoryInterface, logger *zap.Logger) ConsumableTransactionServiceInterface {
	return &ConsumableTransactionService{repo: repo, logger: logger}
}

func (s *ConsumableTransactionService) GetTransactions(ctx context.Context, limit, offset uint64) ([]dto.ConsumableTransactionDTO, uint64, error) {
	transactions, total, err := s.repo.GetTransactions(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.ConsumableTransactionDTO, 0, len(transactions))
	for _, tr := range transactions {
		dtos = append(dtos, *transactionEntityToDTO(&tr))
	}
	return dtos, total, nil
}

func (s *ConsumableTransactionService) FindTransaction(ctx context.Context, id uint64) (*dto.ConsumableTransactionDTO, error) {
	entity, err := s.repo.FindTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	return transactionEntityToDTO(entity), nil
}

func (s *ConsumableTransactionService) CreateTransaction(ctx context.Context, payload dto.CreateConsumableTransactionDTO) (*dto.ConsumableTransactionDTO, error) {
	entity := entities.ConsumableTransaction{
		ConsumableID:    payload.ConsumableID,
		UserID:          payload.UserID,
		TransactionType: entities.TransactionType(payload.TransactionType),
		Quantity:        *payload.Quantity,
		Reason:          utils.NullStringToStrPtr(payload.Reason),
		DocumentNumber:  utils.NullStringToStrPtr(payload.DocumentNumber),
		Notes:           utils.NullStringToStrPtr(payload.Notes),
	}

	created, err := s.repo.CreateTransaction(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Движение расходника зафиксировано",
		zap.Uint64("transaction_id", created.ID),
		zap.String("transaction_type", string(created.TransactionType)))
	return transactionEntityToDTO(created), nil
}

func transactionEntityToDTO(entity *entities.ConsumableTransaction) *dto.ConsumableTransactionDTO {
	d := &dto.ConsumableTransactionDTO{
		ID:              entity.ID,
		ConsumableID:    entity.ConsumableID,
		UserID:          entity.UserID,
		TransactionType: string(entity.TransactionType),
		Quantity:        entity.Quantity,
		TransactionDate: utils.TimeToString(entity.TransactionDate),
	}
	if entity.Reason != nil {
		d.Reason = *entity.Reason
	}
	if entity.DocumentNumber != nil {
		d.DocumentNumber = *entity.DocumentNumber
	}
	if entity.Notes != nil {
		d.Notes = *entity.Notes
	}
	return d
}
