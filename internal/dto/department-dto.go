package dto

type CreateDepartmentDTO struct {
	DepartmentName   string `json:"department_name" validate:"required,max=50"`
	ManagerName      string `json:"manager_name" validate:"required,max=50"`
	PhoneNumber      string `json:"phone_number" validate:"required,max=50"`
	DailySalesVolume int64  `json:"daily_sales_volume" validate:"gte=0"`
}

// UpdateDepartmentDTO — полная замена всех изменяемых полей (PUT).
type UpdateDepartmentDTO struct {
	DepartmentName   string `json:"department_name" validate:"required,max=50"`
	ManagerName      string `json:"manager_name" validate:"required,max=50"`
	PhoneNumber      string `json:"phone_number" validate:"required,max=50"`
	DailySalesVolume int64  `json:"daily_sales_volume" validate:"gte=0"`
}
