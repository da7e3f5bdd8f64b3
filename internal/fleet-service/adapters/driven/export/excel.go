package export

import (
	"bytes"
	"fmt"

	"fleetops/internal/fleet-service/core/domain/dto"

	"github.com/xuri/excelize/v2"
)

const (
	trucksSheet  = "By Truck"
	monthlySheet = "Monthly"
)

// BuildReportWorkbook renders the by-truck and monthly reports into a single
// xlsx workbook, one sheet per report.
func BuildReportWorkbook(truckReport dto.TruckReportDto, monthly dto.MonthlyReportDto) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(trucksSheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1") // Delete default sheet
	f.SetActiveSheet(index)

	headers := []string{"Plate Number", "Trips", "Revenue", "Expenses", "Net"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(trucksSheet, cell, header)
	}

	rowIndex := 2
	for _, g := range truckReport.Groups {
		f.SetCellValue(trucksSheet, fmt.Sprintf("A%d", rowIndex), g.PlateNumber)
		f.SetCellValue(trucksSheet, fmt.Sprintf("B%d", rowIndex), g.TripCount)
		f.SetCellValue(trucksSheet, fmt.Sprintf("C%d", rowIndex), g.Revenue)
		f.SetCellValue(trucksSheet, fmt.Sprintf("D%d", rowIndex), g.TotalExpenses)
		f.SetCellValue(trucksSheet, fmt.Sprintf("E%d", rowIndex), g.Revenue-g.TotalExpenses)
		rowIndex++
	}

	f.SetCellValue(trucksSheet, fmt.Sprintf("A%d", rowIndex), "TOTAL")
	f.SetCellValue(trucksSheet, fmt.Sprintf("C%d", rowIndex), truckReport.GrandRevenue)
	f.SetCellValue(trucksSheet, fmt.Sprintf("D%d", rowIndex), truckReport.GrandExpenses)
	f.SetCellValue(trucksSheet, fmt.Sprintf("E%d", rowIndex), truckReport.GrandRevenue-truckReport.GrandExpenses)

	if _, err := f.NewSheet(monthlySheet); err != nil {
		return nil, err
	}

	monthlyHeaders := []string{"Month", "Trips", "Expenses", "Profit"}
	for i, header := range monthlyHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(monthlySheet, cell, header)
	}

	for i, row := range monthly.Months {
		f.SetCellValue(monthlySheet, fmt.Sprintf("A%d", i+2), row.Month)
		f.SetCellValue(monthlySheet, fmt.Sprintf("B%d", i+2), row.TripCount)
		f.SetCellValue(monthlySheet, fmt.Sprintf("C%d", i+2), row.TotalExpenses)
		f.SetCellValue(monthlySheet, fmt.Sprintf("D%d", i+2), row.Profit)
	}

	return f.WriteToBuffer()
}
