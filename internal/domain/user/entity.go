package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // back office - payroll, annulment, rates
	RoleGudang   Role = "gudang"   // warehouse staff
	RoleProduksi Role = "produksi" // production floor staff
	RoleKurir    Role = "kurir"    // delivery courier
)

// ValidRoles is the closed role enumeration. Unknown role strings are treated
// as unauthorized everywhere, never as an error.
var ValidRoles = []Role{RoleAdmin, RoleGudang, RoleProduksi, RoleKurir}

type User struct {
	ID           int64
	Name         string
	Username     string
	PasswordHash string
	Role         Role
	JoinDate     time.Time // calendar date, time part ignored
	BaseSalary   int64     // Rupiah per month
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidRole reports whether a role string belongs to the closed enumeration.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if Role(role) == r {
			return true
		}
	}
	return false
}

// IsAdmin checks if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
