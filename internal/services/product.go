package services

import (
	"context"

	"sales-system/internal/dto"
	"sales-system/internal/entities"
	"sales-system/internal/repositories"

	"go.uber.org/zap"
)

type ProductService struct {
	productRepository repositories.ProductRepositoryInterface
	logger            *zap.Logger
}

func NewProductService(productRepository repositories.ProductRepositoryInterface, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepository: productRepository,
		logger:            logger,
	}
}

func (s *ProductService) GetProducts(ctx context.Context, skip, limit uint64) ([]entities.Product, uint64, error) {
	products, total, err := s.productRepository.GetProducts(ctx, skip, limit)
	if err != nil {
		s.logger.Error("Ошибка при получении списка товаров", zap.Error(err))
		return nil, 0, err
	}
	return products, total, nil
}

func (s *ProductService) FindProduct(ctx context.Context, id uint64) (*entities.Product, error) {
	return s.productRepository.FindProduct(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, dto dto.CreateProductDTO) (*entities.Product, error) {
	product, err := s.productRepository.CreateProduct(ctx, dto)
	if err != nil {
		s.logger.Error("Ошибка при создании товара", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Товар успешно создан", zap.Uint64("id", product.ID), zap.String("code", product.ProductCode))
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint64, dto dto.UpdateProductDTO) (*entities.Product, error) {
	product, err := s.productRepository.UpdateProduct(ctx, id, dto)
	if err != nil {
		s.logger.Error("Ошибка при обновлении товара", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint64) (*entities.Product, error) {
	product, err := s.productRepository.DeleteProduct(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при удалении товара", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return product, nil
}
