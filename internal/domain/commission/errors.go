package commission

import "errors"

var (
	ErrRateNotFound = errors.New("commission rate not found")
)
