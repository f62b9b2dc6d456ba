package services

import (
	"context"

	"sales-system/internal/dto"
	"sales-system/internal/entities"
	"sales-system/internal/repositories"
	"sales-system/pkg/utils"

	"go.uber.org/zap"
)

type SaleService struct {
	saleRepository repositories.SaleRepositoryInterface
	logger         *zap.Logger
}

func NewSaleService(saleRepository repositories.SaleRepositoryInterface, logger *zap.Logger) *SaleService {
	return &SaleService{
		saleRepository: saleRepository,
		logger:         logger,
	}
}

func toSaleDTO(sale *entities.Sale) *dto.SaleDTO {
	return &dto.SaleDTO{
		ID:           sale.ID,
		ProductID:    sale.ProductID,
		DepartmentID: sale.DepartmentID,
		SaleDate:     sale.SaleDate.Format(utils.DateLayout),
		QuantitySold: sale.QuantitySold,
	}
}

func toSaleDTOs(sales []entities.Sale) []dto.SaleDTO {
	result := make([]dto.SaleDTO, 0, len(sales))
	for i := range sales {
		result = append(result, *toSaleDTO(&sales[i]))
	}
	return result
}

func (s *SaleService) GetSales(ctx context.Context, skip, limit uint64) ([]dto.SaleDTO, uint64, error) {
	sales, total, err := s.saleRepository.GetSales(ctx, skip, limit)
	if err != nil {
		s.logger.Error("Ошибка при получении списка продаж", zap.Error(err))
		return nil, 0, err
	}
	return toSaleDTOs(sales), total, nil
}

func (s *SaleService) GetSalesByDepartment(ctx context.Context, departmentID, skip, limit uint64) ([]dto.SaleDTO, uint64, error) {
	sales, total, err := s.saleRepository.GetSalesByDepartment(ctx, departmentID, skip, limit)
	if err != nil {
		s.logger.Error("Ошибка при получении продаж отдела", zap.Uint64("department_id", departmentID), zap.Error(err))
		return nil, 0, err
	}
	return toSaleDTOs(sales), total, nil
}

func (s *SaleService) GetSalesByProduct(ctx context.Context, productID, skip, limit uint64) ([]dto.SaleDTO, uint64, error) {
	sales, total, err := s.saleRepository.GetSalesByProduct(ctx, productID, skip, limit)
	if err != nil {
		s.logger.Error("Ошибка при получении продаж товара", zap.Uint64("product_id", productID), zap.Error(err))
		return nil, 0, err
	}
	return toSaleDTOs(sales), total, nil
}

func (s *SaleService) FindSale(ctx context.Context, id uint64) (*dto.SaleDTO, error) {
	sale, err := s.saleRepository.FindSale(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSaleDTO(sale), nil
}

func (s *SaleService) CreateSale(ctx context.Context, in dto.CreateSaleDTO) (*dto.SaleDTO, error) {
	saleDate, err := utils.ParseDate(in.SaleDate)
	if err != nil {
		return nil, err
	}
	sale, err := s.saleRepository.CreateSale(ctx, entities.Sale{
		ProductID:    in.ProductID,
		DepartmentID: in.DepartmentID,
		SaleDate:     saleDate,
		QuantitySold: in.QuantitySold,
	})
	if err != nil {
		s.logger.Error("Ошибка при создании продажи", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Продажа успешно создана", zap.Uint64("id", sale.ID))
	return toSaleDTO(sale), nil
}

func (s *SaleService) UpdateSale(ctx context.Context, id uint64, in dto.UpdateSaleDTO) (*dto.SaleDTO, error) {
	saleDate, err := utils.ParseDate(in.SaleDate)
	if err != nil {
		return nil, err
	}
	sale, err := s.saleRepository.UpdateSale(ctx, id, entities.Sale{
		ProductID:    in.ProductID,
		DepartmentID: in.DepartmentID,
		SaleDate:     saleDate,
		QuantitySold: in.QuantitySold,
	})
	if err != nil {
		s.logger.Error("Ошибка при обновлении продажи", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return toSaleDTO(sale), nil
}

func (s *SaleService) DeleteSale(ctx context.Context, id uint64) (*dto.SaleDTO, error) {
	sale, err := s.saleRepository.DeleteSale(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при удалении продажи", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return toSaleDTO(sale), nil
}
