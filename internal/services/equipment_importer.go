package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// EquipmentImportService загружает снаряжение пачкой из xlsx-файла.
// Заголовки ищутся по подстрокам, порядок колонок не важен.
type EquipmentImportServiceInterface interface {
	ImportFromExcel(ctx context.Context, r io.Reader) (*dto.EquipmentImportResultDTO, error)
}

type EquipmentImportService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	categoryRepo  repositories.EquipmentCategoryRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentImportService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	categoryRepo repositories.EquipmentCategoryRepositoryInterface,
	logger *zap.Logger,
) EquipmentImportServiceInterface {
	return &EquipmentImportService{
		equipmentRepo: equipmentRepo,
		categoryRepo:  categoryRepo,
		logger:        logger,
	}
}

func (s *EquipmentImportService) ImportFromExcel(ctx context.Context, r io.Reader) (*dto.EquipmentImportResultDTO, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	result := &dto.EquipmentImportResultDTO{Errors: []dto.EquipmentImportRowError{}}

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения листа %s: %w", sheet, err)
		}

		catIdx, brandIdx, modelIdx, sizeIdx, barcodeIdx := -1, -1, -1, -1, -1
		headerRow := -1

		for rIdx, row := range rows {
			rowStr := strings.ToLower(strings.Join(row, "|"))
			if !strings.Contains(rowStr, "категор") {
				continue
			}
			for cIdx, colName := range row {
				cLower := strings.ToLower(strings.TrimSpace(colName))
				switch {
				case strings.Contains(cLower, "категор"):
					catIdx = cIdx
				case strings.Contains(cLower, "бренд") || strings.Contains(cLower, "марка"):
					brandIdx = cIdx
				case strings.Contains(cLower, "модель"):
					modelIdx = cIdx
				case strings.Contains(cLower, "размер"):
					sizeIdx = cIdx
				case strings.Contains(cLower, "штрих"):
					barcodeIdx = cIdx
				}
			}
			headerRow = rIdx
			break
		}

		if headerRow == -1 || catIdx == -1 {
			continue
		}

		for rIdx := headerRow + 1; rIdx < len(rows); rIdx++ {
			row := rows[rIdx]
			categoryName := cellAt(row, catIdx)
			if categoryName == "" {
				result.Skipped++
				continue
			}

			category, err := s.categoryRepo.FindCategoryByName(ctx, categoryName)
			if err != nil {
				result.Errors = append(result.Errors, dto.EquipmentImportRowError{
					Row:     rIdx + 1,
					Message: fmt.Sprintf("категория %q не найдена", categoryName),
				})
				continue
			}

			item := entities.Equipment{
				CategoryID:      category.ID,
				Brand:           strPtrAt(row, brandIdx),
				Model:           strPtrAt(row, modelIdx),
				Size:            strPtrAt(row, sizeIdx),
				Barcode:         strPtrAt(row, barcodeIdx),
				ConditionStatus: entities.EquipmentConditionExcellent,
				IsAvailable:     true,
			}

			if _, err := s.equipmentRepo.CreateEquipment(ctx, item); err != nil {
				result.Errors = append(result.Errors, dto.EquipmentImportRowError{
					Row:     rIdx + 1,
					Message: err.Error(),
				})
				continue
			}
			result.Created++
		}
	}

	s.logger.Info("Импорт снаряжения завершён",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)))
	return result, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func strPtrAt(row []string, idx int) *string {
	v := cellAt(row, idx)
	if v == "" {
		return nil
	}
	return &v
}
