package repositories

import (
	"context"
	"errors"
	"fmt"

	"sales-system/internal/dto"
	"sales-system/internal/entities"
	apperrors "sales-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const departmentFields = "id, department_name, manager_name, phone_number, daily_sales_volume"

type DepartmentRepositoryInterface interface {
	GetDepartments(ctx context.Context, skip, limit uint64) ([]entities.Department, uint64, error)
	FindDepartment(ctx context.Context, id uint64) (*entities.Department, error)
	CreateDepartment(ctx context.Context, dto dto.CreateDepartmentDTO) (*entities.Department, error)
	UpdateDepartment(ctx context.Context, id uint64, dto dto.UpdateDepartmentDTO) (*entities.Department, error)
	DeleteDepartment(ctx context.Context, id uint64) (*entities.Department, error)
}

type DepartmentRepository struct {
	storage querier
	logger  *zap.Logger
}

func NewDepartmentRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage, logger: logger}
}

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var d entities.Department
	err := row.Scan(&d.ID, &d.DepartmentName, &d.ManagerName, &d.PhoneNumber, &d.DailySalesVolume)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования department: %w", translatePgError(err))
	}
	return &d, nil
}

func (r *DepartmentRepository) GetDepartments(ctx context.Context, skip, limit uint64) ([]entities.Department, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM departments ORDER BY id ASC LIMIT $1 OFFSET $2`, departmentFields)
	rows, err := r.storage.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	departments := make([]entities.Department, 0)
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, err
		}
		departments = append(departments, *dept)
	}
	return departments, total, rows.Err()
}

func (r *DepartmentRepository) FindDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments WHERE id = $1`, departmentFields)
	return scanDepartment(r.storage.QueryRow(ctx, query, id))
}

func (r *DepartmentRepository) CreateDepartment(ctx context.Context, dto dto.CreateDepartmentDTO) (*entities.Department, error) {
	query := fmt.Sprintf(`INSERT INTO departments (department_name, manager_name, phone_number, daily_sales_volume)
		VALUES ($1, $2, $3, $4) RETURNING %s`, departmentFields)
	return scanDepartment(r.storage.QueryRow(ctx, query,
		dto.DepartmentName, dto.ManagerName, dto.PhoneNumber, dto.DailySalesVolume))
}

// UpdateDepartment выполняет полную замену всех изменяемых полей.
func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, id uint64, dto dto.UpdateDepartmentDTO) (*entities.Department, error) {
	query := fmt.Sprintf(`UPDATE departments
		SET department_name = $2, manager_name = $3, phone_number = $4, daily_sales_volume = $5
		WHERE id = $1 RETURNING %s`, departmentFields)
	return scanDepartment(r.storage.QueryRow(ctx, query,
		id, dto.DepartmentName, dto.ManagerName, dto.PhoneNumber, dto.DailySalesVolume))
}

// DeleteDepartment удаляет отдел и возвращает его состояние до удаления.
// Отдел, на который ссылаются продажи, удалить нельзя (ON DELETE RESTRICT).
func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	query := fmt.Sprintf(`DELETE FROM departments WHERE id = $1 RETURNING %s`, departmentFields)
	return scanDepartment(r.storage.QueryRow(ctx, query, id))
}
