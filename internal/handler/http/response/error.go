package response

import (
	"errors"
	"net/http"

	"github.com/bersihkilat/erp-backend-go/internal/domain/attendance"
	"github.com/bersihkilat/erp-backend-go/internal/domain/auth"
	"github.com/bersihkilat/erp-backend-go/internal/domain/payroll"
	"github.com/bersihkilat/erp-backend-go/internal/domain/production"
	"github.com/bersihkilat/erp-backend-go/internal/domain/user"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/timezone"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User is inactive")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrRoleAccessRequired):
		Forbidden(w, "Role not permitted for this resource")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyAnnulled):
		Conflict(w, "Attendance record already annulled")
	case errors.Is(err, attendance.ErrNotAuthorized):
		Forbidden(w, "Not authorized to annul attendance")
	case errors.Is(err, attendance.ErrInvalidReason):
		BadRequest(w, "Annulment reason is required", nil)
	case errors.Is(err, attendance.ErrInvalidClockType):
		BadRequest(w, "Clock type must be 'in' or 'out'", nil)
	case errors.Is(err, attendance.ErrInvalidTimestamp):
		BadRequest(w, "Timestamp is outside the accepted range", nil)

	// Production domain errors
	case errors.Is(err, production.ErrUnknownProcess):
		BadRequest(w, "Unknown production process", nil)
	case errors.Is(err, production.ErrWeightRequired):
		BadRequest(w, "Weight is required for this process", nil)
	case errors.Is(err, production.ErrEntryNotFound):
		NotFound(w, "Production entry not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Date parsing errors
	case errors.Is(err, timezone.ErrInvalidFormat):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
	case errors.Is(err, timezone.ErrInvalidDateValue):
		BadRequest(w, "Date value does not exist in the calendar", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
