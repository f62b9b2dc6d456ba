package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Строки отчетов. Агрегаты SUM/AVG по пустому множеству продаж дают NULL,
// поэтому итоговые значения сканируются в null-типы, а не в нули.

// DateRange — включительный диапазон календарных дат [Start, End].
type DateRange struct {
	Start time.Time
	End   time.Time
}

type TotalQuantityReport struct {
	TotalQuantitySold null.Int64 `json:"total_quantity_sold"`
}

type TotalRevenueReport struct {
	TotalRevenue null.Float64 `json:"total_revenue"`
}

type AverageSalePriceReport struct {
	ProductID        uint64       `json:"product_id"`
	AverageSalePrice null.Float64 `json:"average_sale_price"`
}

type DepartmentRevenue struct {
	DepartmentID   uint64  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	Revenue        float64 `json:"revenue"`
}

type DepartmentRevenueWithCount struct {
	DepartmentID   uint64  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	Revenue        float64 `json:"revenue"`
	ItemsSoldCount uint64  `json:"items_sold_count"`
}

type TopProduct struct {
	ProductID    uint64 `json:"product_id"`
	ProductCode  string `json:"product_code"`
	ProductName  string `json:"product_name"`
	QuantitySold int64  `json:"quantity_sold"`
}

type ProductShare struct {
	ProductID    uint64  `json:"product_id"`
	ProductCode  string  `json:"product_code"`
	ProductName  string  `json:"product_name"`
	QuantitySold int64   `json:"quantity_sold"`
	ShareOfTotal float64 `json:"share_of_total_sales"`
}

type DepartmentAverageCheck struct {
	DepartmentID     uint64  `json:"department_id"`
	DepartmentName   string  `json:"department_name"`
	AverageCheckSize float64 `json:"avg_check_size"`
}

type DepartmentProfit struct {
	DepartmentID   uint64  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	Profit         float64 `json:"profit"`
}

type HighestSalesDay struct {
	SaleDate    time.Time `json:"sale_date"`
	MaxQuantity int64     `json:"max_quantity"`
}

type OutstandingSale struct {
	SaleDate       time.Time `json:"sale_date"`
	DepartmentName string    `json:"department"`
	ProductName    string    `json:"product"`
	SalesVolume    float64   `json:"sales_volume"`
}
