package domain

import "errors"

var (
	ErrStockNotFound    = errors.New("stock not found")
	ErrDuplicateSymbol  = errors.New("stock symbol already registered")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInsufficientData = errors.New("not enough data")
	// a zero close price cannot be the base of a return
	ErrDivisionByZero = errors.New("division by zero")
)
