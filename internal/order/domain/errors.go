package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrUnknownSKU    = errors.New("unknown SKU")
	ErrInvalidItems  = errors.New("invalid order items")
	ErrInvalidPick   = errors.New("invalid pick request")
	ErrDuplicatePick = errors.New("pick already submitted")
)

// UnknownSKUError names the SKU that is missing from the ledger
type UnknownSKUError struct {
	SKU string
}

func (e *UnknownSKUError) Error() string {
	return fmt.Sprintf("product SKU '%s' not found", e.SKU)
}

// Is lets errors.Is(err, ErrUnknownSKU) match
func (e *UnknownSKUError) Is(target error) bool {
	return target == ErrUnknownSKU
}
