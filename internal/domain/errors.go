package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrNotFound        = errors.New("employee not found")
	ErrInvalidField    = errors.New("invalid field")
	ErrInvalidOperator = errors.New("invalid operator for field")
	ErrInvalidValue    = errors.New("invalid value for field")
	ErrCycleDetected   = errors.New("reporting chain contains a cycle")
)
