package dto

type CreateSaleDTO struct {
	ProductID    uint64 `json:"product_id" validate:"required,gt=0"`
	DepartmentID uint64 `json:"department_id" validate:"required,gt=0"`
	SaleDate     string `json:"sale_date" validate:"required,sale_date"`
	QuantitySold int64  `json:"quantity_sold" validate:"gte=0"`
}

// UpdateSaleDTO — полная замена всех изменяемых полей (PUT).
type UpdateSaleDTO struct {
	ProductID    uint64 `json:"product_id" validate:"required,gt=0"`
	DepartmentID uint64 `json:"department_id" validate:"required,gt=0"`
	SaleDate     string `json:"sale_date" validate:"required,sale_date"`
	QuantitySold int64  `json:"quantity_sold" validate:"gte=0"`
}

type SaleDTO struct {
	ID           uint64 `json:"id"`
	ProductID    uint64 `json:"product_id"`
	DepartmentID uint64 `json:"department_id"`
	SaleDate     string `json:"sale_date"`
	QuantitySold int64  `json:"quantity_sold"`
}
