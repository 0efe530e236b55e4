package services

import "errors"

// Gate and validation failures are sentinel errors so controllers can map
// them to statuses without string matching.
var (
	ErrAuthRequired       = errors.New("authentication required")
	ErrMembershipRequired = errors.New("membership upgrade required")
	ErrAlreadyLiked       = errors.New("already liked")
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("invalid state transition")
	ErrInvalidPackage     = errors.New("invalid package")
	ErrChargeFailed       = errors.New("charge failed")
)
