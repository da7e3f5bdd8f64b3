package dto

// WindowSummaryDto carries both revenue figures side by side. GrossRevenue is
// the raw sum of allocated budgets, NetProfit subtracts the expense ledgers.
// Callers pick one explicitly, the service never conflates them.
type WindowSummaryDto struct {
	Window        string  `json:"window"`
	TripCount     int     `json:"trip_count"`
	TotalExpenses float64 `json:"total_expenses"`
	GrossRevenue  float64 `json:"gross_revenue"`
	NetProfit     float64 `json:"net_profit"`
}

type MonthlyRowDto struct {
	Month         string  `json:"month"`
	TripCount     int     `json:"trip_count"`
	TotalExpenses float64 `json:"total_expenses"`
	Profit        float64 `json:"profit"`
}

type MonthlyReportDto struct {
	Year   int             `json:"year"`
	Months []MonthlyRowDto `json:"months"`
}

type TruckGroupDto struct {
	PlateNumber   string  `json:"plate_number"`
	TripCount     int     `json:"trip_count"`
	Revenue       float64 `json:"revenue"`
	TotalExpenses float64 `json:"total_expenses"`
}

type TruckReportDto struct {
	Groups        []TruckGroupDto `json:"groups"`
	GrandRevenue  float64         `json:"grand_revenue"`
	GrandExpenses float64         `json:"grand_expenses"`
}

type SummaryResponseDto struct {
	Success bool             `json:"success"`
	Data    WindowSummaryDto `json:"data"`
}

type MonthlyResponseDto struct {
	Success bool             `json:"success"`
	Data    MonthlyReportDto `json:"data"`
}
