package errorz

import "errors"

var (
	Unauthenticated = errors.New("authentication required")
	Forbidden       = errors.New("forbidden")
	NotFound        = errors.New("not found")
	Conflict        = errors.New("conflict")
	AlreadyExists   = errors.New("already exists")
	InvalidInput    = errors.New("invalid input")
)
