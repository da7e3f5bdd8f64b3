package handle

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fleetops/internal/fleet-service/adapters/driven/export"
	"fleetops/internal/fleet-service/core/domain/dto"
	"fleetops/internal/fleet-service/core/ports"
	"fleetops/internal/mylogger"
)

type ReportsHandler struct {
	reportsService ports.IReportsService
	log            mylogger.Logger
}

func NewReportsHandler(rs ports.IReportsService, log mylogger.Logger) *ReportsHandler {
	return &ReportsHandler{
		reportsService: rs,
		log:            log,
	}
}

func (rh *ReportsHandler) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window := r.URL.Query().Get("window")

		summary, err := rh.reportsService.Summary(r.Context(), window)
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.SummaryResponseDto{Success: true, Data: summary})
	}
}

func (rh *ReportsHandler) Monthly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year := time.Now().Year()
		if raw := r.URL.Query().Get("year"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				JsonError(w, http.StatusBadRequest, fmt.Errorf("invalid year %q", raw))
				return
			}
			year = parsed
		}

		report, err := rh.reportsService.MonthlyBreakdown(r.Context(), year)
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.MonthlyResponseDto{Success: true, Data: report})
	}
}

// Export streams the by-truck and monthly reports as an xlsx workbook.
func (rh *ReportsHandler) Export() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		truckReport, err := rh.reportsService.TruckReport(r.Context())
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		monthly, err := rh.reportsService.MonthlyBreakdown(r.Context(), time.Now().Year())
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		buf, err := export.BuildReportWorkbook(truckReport, monthly)
		if err != nil {
			JsonError(w, http.StatusInternalServerError, err)
			return
		}

		filename := fmt.Sprintf("fleet_report_%s.xlsx", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			rh.log.Action("exportReport").Error("failed to stream workbook", err)
		}
	}
}
