package sizeclass

import "errors"

var (
	// ErrOutOfRange indicates a size larger than the largest size class.
	ErrOutOfRange = errors.New("sizeclass: size exceeds maximum")

	// ErrInvalidSize indicates a zero or negative size.
	ErrInvalidSize = errors.New("sizeclass: size must be positive")

	// ErrBadIndex indicates a class index outside [0, NumClasses).
	ErrBadIndex = errors.New("sizeclass: class index out of range")

	// ErrBadConfig indicates a Config that cannot produce a valid table.
	ErrBadConfig = errors.New("sizeclass: invalid config")
)
