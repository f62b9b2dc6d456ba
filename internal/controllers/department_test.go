package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sales-system/internal/dto"
	"sales-system/internal/entities"
	"sales-system/internal/services"
	apperrors "sales-system/pkg/errors"
	"sales-system/pkg/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeDepartmentRepo имитирует хранилище отделов в памяти.
type fakeDepartmentRepo struct {
	byID   map[uint64]entities.Department
	byName map[string]uint64
	nextID uint64
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{
		byID:   make(map[uint64]entities.Department),
		byName: make(map[string]uint64),
		nextID: 1,
	}
}

func (f *fakeDepartmentRepo) GetDepartments(ctx context.Context, skip, limit uint64) ([]entities.Department, uint64, error) {
	result := make([]entities.Department, 0, len(f.byID))
	for id := uint64(1); id < f.nextID; id++ {
		if dept, ok := f.byID[id]; ok {
			result = append(result, dept)
		}
	}
	total := uint64(len(result))
	if skip >= total {
		return []entities.Department{}, total, nil
	}
	result = result[skip:]
	if uint64(len(result)) > limit {
		result = result[:limit]
	}
	return result, total, nil
}

func (f *fakeDepartmentRepo) FindDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	dept, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &dept, nil
}

func (f *fakeDepartmentRepo) CreateDepartment(ctx context.Context, in dto.CreateDepartmentDTO) (*entities.Department, error) {
	if _, exists := f.byName[in.DepartmentName]; exists {
		return nil, apperrors.ErrConflict
	}
	dept := entities.Department{
		ID:               f.nextID,
		DepartmentName:   in.DepartmentName,
		ManagerName:      in.ManagerName,
		PhoneNumber:      in.PhoneNumber,
		DailySalesVolume: in.DailySalesVolume,
	}
	f.byID[dept.ID] = dept
	f.byName[dept.DepartmentName] = dept.ID
	f.nextID++
	return &dept, nil
}

func (f *fakeDepartmentRepo) UpdateDepartment(ctx context.Context, id uint64, in dto.UpdateDepartmentDTO) (*entities.Department, error) {
	dept, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(f.byName, dept.DepartmentName)
	dept.DepartmentName = in.DepartmentName
	dept.ManagerName = in.ManagerName
	dept.PhoneNumber = in.PhoneNumber
	dept.DailySalesVolume = in.DailySalesVolume
	f.byID[id] = dept
	f.byName[dept.DepartmentName] = id
	return &dept, nil
}

func (f *fakeDepartmentRepo) DeleteDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	dept, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(f.byID, id)
	delete(f.byName, dept.DepartmentName)
	return &dept, nil
}

func newDepartmentTestServer() (*echo.Echo, *fakeDepartmentRepo) {
	e := echo.New()
	e.Validator = validation.New()
	repo := newFakeDepartmentRepo()
	controller := NewDepartmentController(services.NewDepartmentService(repo, zap.NewNop()), zap.NewNop())

	g := e.Group("/api/departments")
	g.GET("", controller.GetDepartments)
	g.GET("/:id", controller.FindDepartment)
	g.POST("", controller.CreateDepartment)
	g.PUT("/:id", controller.UpdateDepartment)
	g.DELETE("/:id", controller.DeleteDepartment)
	return e, repo
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestDepartmentController_Create(t *testing.T) {
	e, repo := newDepartmentTestServer()

	body := `{"department_name":"Продуктовый","manager_name":"Иванова М.С.","phone_number":"+992900000001","daily_sales_volume":150}`
	rec := doRequest(e, http.MethodPost, "/api/departments", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"department_name":"Продуктовый"`)
	require.Len(t, repo.byID, 1)

	// Повтор с тем же именем отдела — конфликт
	rec = doRequest(e, http.MethodPost, "/api/departments", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, repo.byID, 1)
}

func TestDepartmentController_Create_ValidationError(t *testing.T) {
	e, repo := newDepartmentTestServer()

	// Отсутствует обязательное имя отдела
	body := `{"manager_name":"Иванова М.С.","phone_number":"+992900000001"}`
	rec := doRequest(e, http.MethodPost, "/api/departments", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.byID)
}

func TestDepartmentController_FindAndDelete(t *testing.T) {
	e, _ := newDepartmentTestServer()

	body := `{"department_name":"Кондитерский","manager_name":"Рахимов Д.Ф.","phone_number":"+992900000004","daily_sales_volume":90}`
	rec := doRequest(e, http.MethodPost, "/api/departments", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/departments/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"department_name":"Кондитерский"`)

	// Нечисловой id отклоняется до обращения к сервису
	rec = doRequest(e, http.MethodGet, "/api/departments/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Удаление возвращает состояние записи до удаления
	rec = doRequest(e, http.MethodDelete, "/api/departments/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"department_name":"Кондитерский"`)

	rec = doRequest(e, http.MethodGet, "/api/departments/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDepartmentController_List_Pagination(t *testing.T) {
	e, _ := newDepartmentTestServer()

	names := []string{"Отдел А", "Отдел Б", "Отдел В"}
	for i, name := range names {
		body := `{"department_name":"` + name + `","manager_name":"Менеджер","phone_number":"+99290000000` + string(rune('1'+i)) + `","daily_sales_volume":10}`
		rec := doRequest(e, http.MethodPost, "/api/departments", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(e, http.MethodGet, "/api/departments?skip=1&limit=1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_count":3`)
	assert.Contains(t, rec.Body.String(), "Отдел Б")
	assert.NotContains(t, rec.Body.String(), "Отдел А")
	assert.NotContains(t, rec.Body.String(), "Отдел В")
}
