package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales-system/internal/entities"
	"sales-system/internal/repositories"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeReportRepo подменяет репозиторий отчетов и считает обращения.
// Невостребованные методы интерфейса остаются за встроенным nil.
type fakeReportRepo struct {
	repositories.ReportRepositoryInterface
	quantityCalls int
	revenueCalls  int
}

func (f *fakeReportRepo) TotalQuantitySold(ctx context.Context) (entities.TotalQuantityReport, error) {
	f.quantityCalls++
	return entities.TotalQuantityReport{TotalQuantitySold: null.Int64From(42)}, nil
}

func (f *fakeReportRepo) TotalRevenue(ctx context.Context) (entities.TotalRevenueReport, error) {
	f.revenueCalls++
	return entities.TotalRevenueReport{TotalRevenue: null.Float64From(1234.5)}, nil
}

// fakeCache — кеш в памяти с управляемыми отказами.
type fakeCache struct {
	store    map[string]string
	lastTTL  time.Duration
	getFails bool
	setFails bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]string)}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if c.getFails {
		return "", errors.New("кеш недоступен")
	}
	value, ok := c.store[key]
	if !ok {
		return "", errors.New("ключ не найден")
	}
	return value, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if c.setFails {
		return errors.New("кеш недоступен")
	}
	c.store[key] = value.(string)
	c.lastTTL = expiration
	return nil
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.store, key)
	}
	return nil
}

func TestReportService_TotalQuantity_CacheAside(t *testing.T) {
	repo := &fakeReportRepo{}
	cache := newFakeCache()
	service := NewReportService(repo, cache, 30*time.Second, zap.NewNop())
	ctx := context.Background()

	// Первый вызов считает отчет и кладет его в кеш
	report, err := service.TotalQuantitySold(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), report.TotalQuantitySold.Int64)
	assert.Equal(t, 1, repo.quantityCalls)
	assert.Contains(t, cache.store, "reports:total_quantity")
	assert.Equal(t, 30*time.Second, cache.lastTTL)

	// Второй вызов отдает кешированное значение без обращения к базе
	report, err = service.TotalQuantitySold(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), report.TotalQuantitySold.Int64)
	assert.Equal(t, 1, repo.quantityCalls)
}

func TestReportService_TotalRevenue_CacheUnavailable(t *testing.T) {
	repo := &fakeReportRepo{}
	cache := newFakeCache()
	cache.getFails = true
	cache.setFails = true
	service := NewReportService(repo, cache, 30*time.Second, zap.NewNop())
	ctx := context.Background()

	// Недоступный кеш не ломает отчеты: каждый вызов идет в базу
	for i := 0; i < 2; i++ {
		report, err := service.TotalRevenue(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 1234.5, report.TotalRevenue.Float64, 0.001)
	}
	assert.Equal(t, 2, repo.revenueCalls)
}

func TestReportService_TotalQuantity_CorruptedCache(t *testing.T) {
	repo := &fakeReportRepo{}
	cache := newFakeCache()
	cache.store["reports:total_quantity"] = "{не json"
	service := NewReportService(repo, cache, 30*time.Second, zap.NewNop())

	report, err := service.TotalQuantitySold(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), report.TotalQuantitySold.Int64)
	assert.Equal(t, 1, repo.quantityCalls)
}

func TestReportService_NilCache(t *testing.T) {
	repo := &fakeReportRepo{}
	service := NewReportService(repo, nil, 30*time.Second, zap.NewNop())
	ctx := context.Background()

	// Сервис без кеша работает в режиме прямых запросов
	_, err := service.TotalQuantitySold(ctx)
	require.NoError(t, err)
	_, err = service.TotalQuantitySold(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.quantityCalls)
}
