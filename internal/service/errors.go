package service

import "errors"

// Failure kinds booking and management flows report. Callers pick them
// apart with errors.Is; the HTTP layer maps each to a status code.
var (
	// ErrSlotDisabled: the requested slot is globally marked unavailable.
	ErrSlotDisabled = errors.New("time slot is disabled")
	// ErrConflict: the (date, time) pair is already occupied by another lesson.
	ErrConflict = errors.New("time slot is already booked")
	// ErrValidation: required fields are missing or out of range.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound: the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
)
