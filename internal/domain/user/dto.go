package user

import "time"

// UserResponse is the outward shape of a user. The password hash never leaves
// the domain.
type UserResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	JoinDate   time.Time `json:"join_date"`
	BaseSalary int64     `json:"base_salary"`
	Active     bool      `json:"active"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		Role:       string(u.Role),
		JoinDate:   u.JoinDate,
		BaseSalary: u.BaseSalary,
		Active:     u.Active,
	}
}
