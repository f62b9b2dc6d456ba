package entities

import "time"

type Sale struct {
	ID           uint64    `json:"id"`
	ProductID    uint64    `json:"product_id"`
	DepartmentID uint64    `json:"department_id"`
	SaleDate     time.Time `json:"sale_date"`
	QuantitySold int64     `json:"quantity_sold"`
}
