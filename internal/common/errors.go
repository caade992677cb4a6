package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error codes. CONFIG_ERROR is fatal before any file is touched; the rest
// are caught at the file boundary and only skip the offending file.
const (
	CodeConfig             = "CONFIG_ERROR"
	CodeExtractionFailed   = "EXTRACTION_FAILED"
	CodeAIExtractionFailed = "AI_EXTRACTION_FAILED"
	CodeFilesystem         = "FS_ERROR"
)

// Common application errors
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrExtraction      = errors.New("text extraction failed")
	ErrAIExtraction    = errors.New("structured extraction failed")
	ErrFilesystem      = errors.New("filesystem operation failed")
	ErrUnknownVariable = errors.New("unknown template variable")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func ConfigError(message string, cause error) *AppError {
	return NewAppError(CodeConfig, message, cause)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// CodeOf extracts the AppError code from an error chain, or "" if none.
func CodeOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
