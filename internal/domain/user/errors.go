package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameExists      = errors.New("username already exists")
	ErrUserInactive        = errors.New("user is inactive")
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrRoleAccessRequired  = errors.New("role not permitted for this resource")
)
