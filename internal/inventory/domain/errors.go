package domain

import "errors"

var (
	ErrNotFound          = errors.New("inventory item not found")
	ErrDuplicateSKU      = errors.New("product SKU already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrSKURequired       = errors.New("sku is required")
	ErrNameRequired      = errors.New("name is required")
)
