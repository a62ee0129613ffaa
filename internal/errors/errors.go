package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors.
// Fatal at construction time; not recoverable without correcting the
// team configuration.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrEngineerNotFound    = &NotFoundError{Entity: "engineer"}
	ErrSwapRequestNotFound = &NotFoundError{Entity: "swap request"}
	ErrWeekNotFound        = &NotFoundError{Entity: "week"}
)

// Business Logic Errors
var (
	ErrWeekOutOfHorizon    = errors.New("week is outside the supported horizon")
	ErrSwapAlreadyResolved = errors.New("swap request is already approved or rejected")
)

// Configuration Errors
var (
	ErrNotEnoughEngineers     = &ConfigurationError{Message: "need at least one engineer per rotation day"}
	ErrEmptyRoster            = &ConfigurationError{Message: "team roster is empty"}
	ErrMandatoryDayInRotation = &ConfigurationError{Message: "mandatory day cannot also be a rotation day"}
	ErrUnsupportedHolidayCode = &ConfigurationError{Message: "unsupported holiday country code"}
)

// Authentication Errors
var (
	ErrInvalidCredentials    = &AuthenticationError{Message: "invalid approver credentials"}
	ErrMissingOrInvalidToken = &AuthenticationError{Message: "missing or invalid bearer token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
