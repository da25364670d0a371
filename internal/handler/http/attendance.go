package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bersihkilat/erp-backend-go/internal/domain/attendance"
	"github.com/bersihkilat/erp-backend-go/internal/handler/http/response"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/timezone"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Clock(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Annul(w http.ResponseWriter, r *http.Request)
	ListAnnulments(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Clock implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var clockReq attendance.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&clockReq); err != nil {
		slog.Error("Clock decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := a.attendanceService.Clock(r.Context(), userID, clockReq)
	if err != nil {
		slog.Error("Clock service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", record)
}

// ListByDate implements AttendanceHandler. Admin view of everyone's records
// for one local calendar date.
func (a *AttendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = timezone.TodayLocal()
	}

	records, err := a.attendanceService.ListByDate(r.Context(), date)
	if err != nil {
		slog.Error("ListByDate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListMine implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, "month and year must be integers", nil)
		return
	}

	records, err := a.attendanceService.ListMine(r.Context(), userID, month, year)
	if err != nil {
		slog.Error("ListMine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Annul implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Annul(w http.ResponseWriter, r *http.Request) {
	adminID, adminRole, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	attendanceID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid attendance id", nil)
		return
	}

	var annulReq attendance.AnnulRequest
	if err := json.NewDecoder(r.Body).Decode(&annulReq); err != nil {
		slog.Error("Annul decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := a.attendanceService.Annul(r.Context(), adminID, adminRole, attendanceID, annulReq)
	if err != nil {
		slog.Error("Annul service error", "error", err, "attendance_id", attendanceID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance annulled", "attendance_id", attendanceID, "admin_id", adminID)
	response.SuccessWithMessage(w, "Attendance annulled", record)
}

// ListAnnulments implements AttendanceHandler. Admin view of recent annulments
// from the audit log.
func (a *AttendanceHandlerImpl) ListAnnulments(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	entries, err := a.attendanceService.ListAnnulments(r.Context(), limit)
	if err != nil {
		slog.Error("ListAnnulments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
