package dto

type CreateProductDTO struct {
	ProductCode       string  `json:"product_code" validate:"required,max=50"`
	ProductName       string  `json:"product_name" validate:"required,max=50"`
	UnitOfMeasurement string  `json:"unit_of_measurement" validate:"required,max=50"`
	RetailPrice       float64 `json:"retail_price" validate:"gte=0"`
	CostPrice         float64 `json:"cost_price" validate:"gte=0"`
}

// UpdateProductDTO — полная замена всех изменяемых полей (PUT).
type UpdateProductDTO struct {
	ProductCode       string  `json:"product_code" validate:"required,max=50"`
	ProductName       string  `json:"product_name" validate:"required,max=50"`
	UnitOfMeasurement string  `json:"unit_of_measurement" validate:"required,max=50"`
	RetailPrice       float64 `json:"retail_price" validate:"gte=0"`
	CostPrice         float64 `json:"cost_price" validate:"gte=0"`
}
