package entities

type Department struct {
	ID               uint64 `json:"id"`
	DepartmentName   string `json:"department_name"`
	ManagerName      string `json:"manager_name"`
	PhoneNumber      string `json:"phone_number"`
	DailySalesVolume int64  `json:"daily_sales_volume"`
}
