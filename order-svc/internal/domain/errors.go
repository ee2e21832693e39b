package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrAlreadyFinalized     = errors.New("order already finalized")
	ErrDuplicateTableNumber = errors.New("table number already exists")
	ErrTableNotAvailable    = errors.New("table not available")
	ErrTableOccupied        = errors.New("table is occupied")
	ErrInsufficientPoints   = errors.New("insufficient loyalty points")
	ErrValidation           = errors.New("validation error")
	ErrDuplicateFeedback    = errors.New("feedback already submitted for this order")
)
