package services

import (
	"testing"
	"time"

	"fleetops/internal/fleet-service/core/domain/model"
)

func tp(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestReconcileScenario(t *testing.T) {
	trip := model.Trip{TripId: "trip_1", Transport: 5000}
	expenses := []model.Expense{
		{TripId: "trip_1", Payment: 100, Rate: 2, Amount: model.ExpenseAmount(100, 2)},
		{TripId: "trip_1", Payment: 200, Rate: 4, Amount: model.ExpenseAmount(200, 4)},
		{TripId: "trip_1", Payment: 300, Rate: 3, Amount: model.ExpenseAmount(300, 3)},
	}

	totals := Reconcile(trip, expenses)
	if totals.Total != 200 {
		t.Fatalf("total = %v, want 200", totals.Total)
	}
	if totals.Remaining != 4800 {
		t.Fatalf("remaining = %v, want 4800", totals.Remaining)
	}

	// dropping the 100-amount record recomputes, nothing is cached
	totals = Reconcile(trip, expenses[:2])
	if totals.Total != 100 || totals.Remaining != 4900 {
		t.Fatalf("after delete: total=%v remaining=%v, want 100/4900", totals.Total, totals.Remaining)
	}
}

func TestReconcileEmptyLedger(t *testing.T) {
	totals := Reconcile(model.Trip{Transport: 1200}, nil)
	if totals.Total != 0 || totals.Remaining != 1200 {
		t.Fatalf("empty ledger: %+v", totals)
	}
}

func TestInWindow(t *testing.T) {
	now := time.Date(2026, 8, 27, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		end    time.Time
		window string
		want   bool
	}{
		{"same day", time.Date(2026, 8, 27, 2, 0, 0, 0, time.UTC), WindowToday, true},
		{"yesterday", time.Date(2026, 8, 26, 23, 0, 0, 0, time.UTC), WindowToday, false},
		{"same month", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), WindowMonth, true},
		{"same month last year", time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC), WindowMonth, false},
		{"same year", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), WindowYear, true},
		{"previous year", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), WindowYear, false},
		{"unknown window", now, "week", false},
	}
	for _, c := range cases {
		if got := InWindow(c.end, now, c.window); got != c.want {
			t.Errorf("%s: InWindow = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSummarizeWindowEmpty(t *testing.T) {
	out := SummarizeWindow(nil, nil, WindowToday, time.Now())
	if out.TripCount != 0 || out.TotalExpenses != 0 || out.GrossRevenue != 0 || out.NetProfit != 0 {
		t.Fatalf("empty window should be all zeros: %+v", out)
	}
}

func TestSummarizeWindowGrossVsNet(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	trips := []model.Trip{
		{TripId: "a", Transport: 1000, Status: model.StatusCompleted, EndTime: tp("2026-08-27T09:00:00Z")},
		{TripId: "b", Transport: 2000, Status: model.StatusCompleted, EndTime: tp("2026-08-27T10:00:00Z")},
		// still running, never counted
		{TripId: "c", Transport: 9000, Status: model.StatusInProgress},
	}
	expenses := map[string][]model.Expense{
		"a": {{TripId: "a", Amount: 100}},
		"b": {{TripId: "b", Amount: 300}},
	}

	out := SummarizeWindow(trips, expenses, WindowToday, now)
	if out.TripCount != 2 {
		t.Fatalf("trip count = %d, want 2", out.TripCount)
	}
	if out.GrossRevenue != 3000 {
		t.Fatalf("gross = %v, want 3000", out.GrossRevenue)
	}
	if out.TotalExpenses != 400 {
		t.Fatalf("expenses = %v, want 400", out.TotalExpenses)
	}
	if out.NetProfit != 2600 {
		t.Fatalf("net = %v, want 2600", out.NetProfit)
	}
}

func TestSummarizeMonths(t *testing.T) {
	trips := []model.Trip{
		{TripId: "a", Transport: 1000, Status: model.StatusCompleted, EndTime: tp("2026-03-05T09:00:00Z")},
		{TripId: "b", Transport: 2000, Status: model.StatusCompleted, EndTime: tp("2026-03-20T10:00:00Z")},
		{TripId: "c", Transport: 500, Status: model.StatusCompleted, EndTime: tp("2025-03-20T10:00:00Z")}, // other year
	}
	expenses := map[string][]model.Expense{
		"a": {{TripId: "a", Amount: 100}},
		"b": {{TripId: "b", Amount: 300}},
	}

	out := SummarizeMonths(trips, expenses, 2026)
	if len(out.Months) != 12 {
		t.Fatalf("months = %d, want 12", len(out.Months))
	}
	march := out.Months[2]
	if march.Month != "March" || march.TripCount != 2 {
		t.Fatalf("march row: %+v", march)
	}
	if march.Profit != 2600 {
		t.Fatalf("march profit = %v, want 2600", march.Profit)
	}
	if march.TotalExpenses != 400 {
		t.Fatalf("march expenses = %v, want 400", march.TotalExpenses)
	}
	// untouched month stays zeroed, not null
	if out.Months[0].TripCount != 0 || out.Months[0].Profit != 0 {
		t.Fatalf("january should be zeros: %+v", out.Months[0])
	}
}

func TestSummarizeByTruck(t *testing.T) {
	trips := []model.Trip{
		{TripId: "a", TruckId: "t1", Transport: 1000, Status: model.StatusCompleted, EndTime: tp("2026-08-01T09:00:00Z")},
		{TripId: "b", TruckId: "t1", Transport: 2000, Status: model.StatusCompleted, EndTime: tp("2026-08-02T09:00:00Z")},
		{TripId: "c", TruckId: "t2", Transport: 700, Status: model.StatusCompleted, EndTime: tp("2026-08-03T09:00:00Z")},
		{TripId: "d", TruckId: "t3", Transport: 999, Status: model.StatusScheduled},
	}
	expenses := map[string][]model.Expense{
		"a": {{Amount: 50}},
		"b": {{Amount: 150}},
		"c": {{Amount: 30}},
	}
	// t2 has no registered plate, it falls back to the raw id
	plates := map[string]string{"t1": "KZ 777 ABC"}

	out := SummarizeByTruck(trips, expenses, plates)
	if len(out.Groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(out.Groups))
	}
	if out.Groups[0].PlateNumber != "KZ 777 ABC" || out.Groups[0].Revenue != 3000 || out.Groups[0].TotalExpenses != 200 {
		t.Fatalf("group[0]: %+v", out.Groups[0])
	}
	if out.Groups[1].PlateNumber != "t2" || out.Groups[1].Revenue != 700 {
		t.Fatalf("group[1]: %+v", out.Groups[1])
	}
	if out.GrandRevenue != 3700 || out.GrandExpenses != 230 {
		t.Fatalf("grand totals: %v / %v", out.GrandRevenue, out.GrandExpenses)
	}
}
