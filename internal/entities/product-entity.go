package entities

type Product struct {
	ID                uint64  `json:"id"`
	ProductCode       string  `json:"product_code"`
	ProductName       string  `json:"product_name"`
	UnitOfMeasurement string  `json:"unit_of_measurement"`
	RetailPrice       float64 `json:"retail_price"`
	CostPrice         float64 `json:"cost_price"`
}
