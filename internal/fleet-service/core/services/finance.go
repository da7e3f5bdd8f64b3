package services

import (
	"sort"
	"time"

	"fleetops/internal/fleet-service/core/domain/dto"
	"fleetops/internal/fleet-service/core/domain/model"
)

const (
	WindowToday = "today"
	WindowMonth = "month"
	WindowYear  = "year"
)

var AllowedWindows = map[string]bool{
	WindowToday: true,
	WindowMonth: true,
	WindowYear:  true,
}

type Totals struct {
	Total     float64 `json:"total"`
	Remaining float64 `json:"remaining"`
}

// Reconcile derives the trip's financial figures from the current ledger.
// Pure, no caching anywhere: every display path calls this fresh so the trip
// detail view, the completion response and the reports can never disagree.
func Reconcile(trip model.Trip, expenses []model.Expense) Totals {
	total := 0.0
	for _, e := range expenses {
		total += e.Amount
	}
	return Totals{
		Total:     total,
		Remaining: trip.Transport - total,
	}
}

// InWindow reports whether an end time falls into the reporting window
// relative to now, comparing date components only.
func InWindow(endTime, now time.Time, window string) bool {
	switch window {
	case WindowToday:
		y1, m1, d1 := endTime.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case WindowMonth:
		return endTime.Year() == now.Year() && endTime.Month() == now.Month()
	case WindowYear:
		return endTime.Year() == now.Year()
	}
	return false
}

// SummarizeWindow buckets completed trips into the window and sums both
// revenue figures. GrossRevenue sums raw transport budgets, NetProfit runs
// every trip through Reconcile. They diverge on purpose, callers choose.
func SummarizeWindow(trips []model.Trip, expensesByTrip map[string][]model.Expense, window string, now time.Time) dto.WindowSummaryDto {
	out := dto.WindowSummaryDto{Window: window}
	for _, t := range trips {
		if !t.IsCompleted() || t.EndTime == nil || !InWindow(*t.EndTime, now, window) {
			continue
		}
		totals := Reconcile(t, expensesByTrip[t.TripId])
		out.TripCount++
		out.TotalExpenses += totals.Total
		out.GrossRevenue += t.Transport
		out.NetProfit += totals.Remaining
	}
	return out
}

// SummarizeMonths produces the 12-row analytics table for one calendar year.
// Profit here always subtracts expenses.
func SummarizeMonths(trips []model.Trip, expensesByTrip map[string][]model.Expense, year int) dto.MonthlyReportDto {
	rows := make([]dto.MonthlyRowDto, 12)
	for i := range rows {
		rows[i].Month = time.Month(i + 1).String()
	}
	for _, t := range trips {
		if !t.IsCompleted() || t.EndTime == nil || t.EndTime.Year() != year {
			continue
		}
		totals := Reconcile(t, expensesByTrip[t.TripId])
		m := int(t.EndTime.Month()) - 1
		rows[m].TripCount++
		rows[m].TotalExpenses += totals.Total
		rows[m].Profit += totals.Remaining
	}
	return dto.MonthlyReportDto{Year: year, Months: rows}
}

// SummarizeByTruck groups completed trips by plate number (raw truck id when
// the truck cannot be resolved) with per-truck and grand totals.
func SummarizeByTruck(trips []model.Trip, expensesByTrip map[string][]model.Expense, plates map[string]string) dto.TruckReportDto {
	groups := map[string]*dto.TruckGroupDto{}
	for _, t := range trips {
		if !t.IsCompleted() {
			continue
		}
		key := plates[t.TruckId]
		if key == "" {
			key = t.TruckId
		}
		g, ok := groups[key]
		if !ok {
			g = &dto.TruckGroupDto{PlateNumber: key}
			groups[key] = g
		}
		totals := Reconcile(t, expensesByTrip[t.TripId])
		g.TripCount++
		g.Revenue += t.Transport
		g.TotalExpenses += totals.Total
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := dto.TruckReportDto{Groups: make([]dto.TruckGroupDto, 0, len(keys))}
	for _, k := range keys {
		out.Groups = append(out.Groups, *groups[k])
		out.GrandRevenue += groups[k].Revenue
		out.GrandExpenses += groups[k].TotalExpenses
	}
	return out
}
