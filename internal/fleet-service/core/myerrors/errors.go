package myerrors

import "errors"

var (
	ErrFieldIsEmpty           = errors.New("field is empty")
	ErrUnknownProduct         = errors.New("unknown product category")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrEndBeforeStart         = errors.New("end time is before start time")
	ErrTripNotInProgress      = errors.New("trip is not in progress")
	ErrTruckNotAvailable      = errors.New("truck is not available")
	ErrNotFound               = errors.New("not found")
)
