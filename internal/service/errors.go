package service

import "errors"

// Common service errors
var (
	// ErrOfferNotFound is returned when no offer matches the given id
	ErrOfferNotFound = errors.New("offer not found")

	// ErrUnknownStatus is returned when a status value outside the
	// lifecycle enum is supplied
	ErrUnknownStatus = errors.New("unknown offer status")

	// ErrValidation is returned when a draft fails validation; no mutation
	// happens when it is raised
	ErrValidation = errors.New("validation failed")
)
