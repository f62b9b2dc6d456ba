package services

import (
	"context"
	"testing"
	"time"

	"sales-system/internal/dto"
	"sales-system/internal/entities"
	"sales-system/internal/repositories"
	apperrors "sales-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSaleRepo struct {
	repositories.SaleRepositoryInterface
	created *entities.Sale
}

func (f *fakeSaleRepo) CreateSale(ctx context.Context, sale entities.Sale) (*entities.Sale, error) {
	sale.ID = 7
	f.created = &sale
	return &sale, nil
}

func (f *fakeSaleRepo) FindSale(ctx context.Context, id uint64) (*entities.Sale, error) {
	return nil, apperrors.ErrNotFound
}

func TestSaleService_CreateSale(t *testing.T) {
	repo := &fakeSaleRepo{}
	service := NewSaleService(repo, zap.NewNop())

	sale, err := service.CreateSale(context.Background(), dto.CreateSaleDTO{
		ProductID:    1,
		DepartmentID: 2,
		SaleDate:     "2024-03-01",
		QuantitySold: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), sale.ID)
	// Дата в ответе остается строкой формата YYYY-MM-DD
	assert.Equal(t, "2024-03-01", sale.SaleDate)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), repo.created.SaleDate)
}

// Кривая дата отсекается до обращения к репозиторию.
func TestSaleService_CreateSale_InvalidDate(t *testing.T) {
	repo := &fakeSaleRepo{}
	service := NewSaleService(repo, zap.NewNop())

	_, err := service.CreateSale(context.Background(), dto.CreateSaleDTO{
		ProductID:    1,
		DepartmentID: 2,
		SaleDate:     "01.03.2024",
		QuantitySold: 5,
	})
	require.Error(t, err)
	var invalidInput *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalidInput)
	assert.Nil(t, repo.created)
}

func TestSaleService_FindSale_NotFound(t *testing.T) {
	service := NewSaleService(&fakeSaleRepo{}, zap.NewNop())

	_, err := service.FindSale(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
