package domain

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidRange = errors.New("invalid range")
)
