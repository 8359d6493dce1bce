package entity

import "errors"

// Error taxonomy shared by usecases, repositories and HTTP handlers.
// Repositories wrap driver failures in ErrStorage; usecases wrap input
// problems in ErrValidation. Handlers map each sentinel to a status code.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrStorage    = errors.New("storage failure")
)
