package expense

import "errors"

var (
	ErrClaimNotFound         = errors.New("expense claim not found")
	ErrClaimAlreadyProcessed = errors.New("expense claim already approved or rejected")
)
