package production

import "errors"

var (
	ErrUnknownProcess = errors.New("unknown production process")
	ErrWeightRequired = errors.New("weight is required for this process")
	ErrEntryNotFound  = errors.New("production entry not found")
)
