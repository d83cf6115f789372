package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks that a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks that a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegative checks that a number is non-negative
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateNotEmpty checks that a slice is not empty
func ValidateNotEmpty[T any](slice []T, fieldName string) error {
	if len(slice) == 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be empty", fieldName))
	}
	return nil
}

// ValidateTableNumber checks that a table number is a positive integer
func ValidateTableNumber(tableNumber int) error {
	if tableNumber <= 0 {
		return NewValidationError("table number must be a positive integer")
	}
	return nil
}

// ValidateItemData validates the required fields of a bill item
func ValidateItemData(name string, price float64, quantity int) error {
	if err := ValidateRequired(name, "item name"); err != nil {
		return err
	}
	if err := ValidateNonNegative(price, "item price"); err != nil {
		return err
	}
	if quantity <= 0 {
		return NewValidationError("item quantity must be positive")
	}
	return nil
}
