package services

import (
	"context"

	"sales-system/internal/dto"
	"sales-system/internal/entities"
	"sales-system/internal/repositories"

	"go.uber.org/zap"
)

type DepartmentService struct {
	departmentRepository repositories.DepartmentRepositoryInterface
	logger               *zap.Logger
}

func NewDepartmentService(departmentRepository repositories.DepartmentRepositoryInterface, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepository: departmentRepository,
		logger:               logger,
	}
}

func (s *DepartmentService) GetDepartments(ctx context.Context, skip, limit uint64) ([]entities.Department, uint64, error) {
	departments, total, err := s.departmentRepository.GetDepartments(ctx, skip, limit)
	if err != nil {
		s.logger.Error("Ошибка при получении списка отделов", zap.Error(err))
		return nil, 0, err
	}
	return departments, total, nil
}

func (s *DepartmentService) FindDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	return s.departmentRepository.FindDepartment(ctx, id)
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, dto dto.CreateDepartmentDTO) (*entities.Department, error) {
	department, err := s.departmentRepository.CreateDepartment(ctx, dto)
	if err != nil {
		s.logger.Error("Ошибка при создании отдела", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Отдел успешно создан", zap.Uint64("id", department.ID))
	return department, nil
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uint64, dto dto.UpdateDepartmentDTO) (*entities.Department, error) {
	department, err := s.departmentRepository.UpdateDepartment(ctx, id, dto)
	if err != nil {
		s.logger.Error("Ошибка при обновлении отдела", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return department, nil
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	department, err := s.departmentRepository.DeleteDepartment(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при удалении отдела", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return department, nil
}
