// Package errors provides the application error carrier shared by every layer.
// Ownership denial and absence both surface as not_found.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation          ErrorType = "validation_error"
	ErrorTypeNotFound            ErrorType = "not_found"
	ErrorTypeConflict            ErrorType = "conflict"
	ErrorTypeUnauthorized        ErrorType = "unauthorized"
	ErrorTypeRateLimited         ErrorType = "rate_limited"
	ErrorTypeGenerationExhausted ErrorType = "generation_exhausted"
	ErrorTypePayloadTooLarge     ErrorType = "payload_too_large"
	ErrorTypeInternal            ErrorType = "internal_error"
	ErrorTypeBadRequest          ErrorType = "bad_request"
)

var statusCodes = map[ErrorType]int{
	ErrorTypeValidation:          http.StatusBadRequest,
	ErrorTypeNotFound:            http.StatusNotFound,
	ErrorTypeConflict:            http.StatusConflict,
	ErrorTypeUnauthorized:        http.StatusUnauthorized,
	ErrorTypeRateLimited:         http.StatusTooManyRequests,
	ErrorTypeGenerationExhausted: http.StatusInternalServerError,
	ErrorTypePayloadTooLarge:     http.StatusRequestEntityTooLarge,
	ErrorTypeInternal:            http.StatusInternalServerError,
	ErrorTypeBadRequest:          http.StatusBadRequest,
}

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Is matches another AppError by type, so errors.Is(err, ErrNotFound) works
// for any not_found error.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Type == e.Type && t.Message == ""
}

// Sentinels usable with errors.Is.
var (
	ErrNotFound            = &AppError{Type: ErrorTypeNotFound}
	ErrConflict            = &AppError{Type: ErrorTypeConflict}
	ErrRateLimited         = &AppError{Type: ErrorTypeRateLimited}
	ErrGenerationExhausted = &AppError{Type: ErrorTypeGenerationExhausted}
)

func newAppError(t ErrorType, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    statusCodes[t],
		Details: detail,
	}
}

func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, message, details)
}

func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, message, details)
}

func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, message, details)
}

func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, message, details)
}

// NewInvalidCredentialsError never reveals which of email or password was wrong.
func NewInvalidCredentialsError() *AppError {
	return newAppError(ErrorTypeUnauthorized, "Incorrect email or password", nil)
}

func NewRateLimitedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeRateLimited, message, details)
}

func NewGenerationExhaustedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeGenerationExhausted, message, details)
}

func NewPayloadTooLargeError(message string, details ...string) *AppError {
	return newAppError(ErrorTypePayloadTooLarge, message, details)
}

func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, message, details)
}

func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, message, details)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

func IsConflictError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeConflict
}

func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range []string{
		"Duplicate entry",          // mysql
		"duplicate key",            // postgres
		"unique constraint",        // postgres
		"UNIQUE constraint failed", // sqlite
		"duplicated key",           // gorm.ErrDuplicatedKey
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
