package http

import (
	"net/http"
	"strconv"

	"github.com/bersihkilat/erp-backend-go/internal/domain/auth"
	"github.com/bersihkilat/erp-backend-go/internal/domain/user"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/timezone"
	"github.com/go-chi/jwtauth/v5"
)

// currentUser pulls the authenticated identity out of the verified token.
func currentUser(r *http.Request) (int64, user.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, "", auth.ErrInvalidToken
	}

	var userID int64
	switch v := claims["user_id"].(type) {
	case int64:
		userID = v
	case float64:
		userID = int64(v)
	default:
		return 0, "", auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return 0, "", auth.ErrInvalidToken
	}

	return userID, user.Role(roleStr), nil
}

// periodFromQuery reads month/year query params, defaulting to the current
// local period when both are absent.
func periodFromQuery(r *http.Request) (month, year int, err error) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	if monthStr == "" && yearStr == "" {
		month, year = timezone.CurrentMonth()
		return month, year, nil
	}

	month, err = strconv.Atoi(monthStr)
	if err != nil {
		return 0, 0, err
	}
	year, err = strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, err
	}
	return month, year, nil
}
