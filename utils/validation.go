package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidateClock checks that a field holds a well-formed HH:MM time
func ValidateClock(value, fieldName string) error {
	if !ValidClock(value) {
		return NewValidationError(fmt.Sprintf("%s must be HH:MM", fieldName))
	}
	return nil
}

// ValidateOptionalClock is ValidateClock for fields that may be empty
func ValidateOptionalClock(value, fieldName string) error {
	if value == "" {
		return nil
	}
	return ValidateClock(value, fieldName)
}

// ValidatePositiveAmount checks if an integer amount is positive
func ValidatePositiveAmount(value int, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateOTP checks the simulated six-digit verification code
func ValidateOTP(code string) error {
	if len(code) != 6 {
		return NewValidationError(ErrInvalidOTP)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return NewValidationError(ErrInvalidOTP)
		}
	}
	return nil
}
