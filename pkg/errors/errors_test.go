package errors

import (
	"errors"
	"strings"
	"testing"
)

// TestNewCLIError creates and validates a CLI error
func TestNewCLIError(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewCLIError(ErrorTypeValidation, "Test error", cause)

	if err == nil {
		t.Fatal("NewCLIError returned nil")
	}

	if err.Type != ErrorTypeValidation {
		t.Errorf("Expected type %s, got %s", ErrorTypeValidation, err.Type)
	}

	if err.Message != "Test error" {
		t.Errorf("Expected message 'Test error', got '%s'", err.Message)
	}

	if err.Cause != cause {
		t.Error("Cause not set correctly")
	}
}

// TestWithSuggestion adds suggestion to error
func TestWithSuggestion(t *testing.T) {
	err := NewCLIError(ErrorTypeValidation, "Test", nil)
	suggestion := "Try something else"

	result := err.WithSuggestion(suggestion)

	if !result.HasSuggestion() {
		t.Error("HasSuggestion returned false")
	}

	if result.Suggestion != suggestion {
		t.Errorf("Expected suggestion '%s', got '%s'", suggestion, result.Suggestion)
	}
}

// TestNetworkError creates network error
func TestNetworkError(t *testing.T) {
	err := NetworkError("Connection failed")

	if err.Type != ErrorTypeNetwork {
		t.Errorf("Expected type %s, got %s", ErrorTypeNetwork, err.Type)
	}

	if !err.HasSuggestion() {
		t.Error("Expected suggestion for network error")
	}

	if !strings.Contains(err.Suggestion, "internet") {
		t.Error("Expected helpful suggestion about internet connection")
	}
}

// TestAuthErrorSuggestsLogin validates auth errors point at the login command
func TestAuthErrorSuggestsLogin(t *testing.T) {
	err := AuthError("Invalid credentials")

	if err.Type != ErrorTypeAuth {
		t.Errorf("Expected type %s, got %s", ErrorTypeAuth, err.Type)
	}

	if !strings.Contains(err.Suggestion, "auth login") {
		t.Error("Expected suggestion mentioning 'auth login'")
	}
}

// TestImageFormatError creates image format error
func TestImageFormatError(t *testing.T) {
	err := ImageFormatError("bmp")

	if err.Type != ErrorTypeImageFormat {
		t.Errorf("Expected type %s, got %s", ErrorTypeImageFormat, err.Type)
	}

	if !strings.Contains(err.Message, "bmp") {
		t.Error("Expected format in message")
	}

	if !strings.Contains(err.Suggestion, "jpg") {
		t.Error("Expected supported formats in suggestion")
	}
}

// TestImageSizeError creates image size error
func TestImageSizeError(t *testing.T) {
	err := ImageSizeError(12.5, 10)

	if err.Type != ErrorTypeImageSize {
		t.Errorf("Expected type %s, got %s", ErrorTypeImageSize, err.Type)
	}

	if !strings.Contains(err.Message, "12.5") {
		t.Error("Expected size in message")
	}
}

// TestCategorizeError maps raw errors to typed errors
func TestCategorizeError(t *testing.T) {
	testCases := []struct {
		name     string
		input    error
		expected ErrorType
	}{
		{"connection refused", errors.New("dial tcp: connection refused"), ErrorTypeNetwork},
		{"timeout", errors.New("request timeout exceeded"), ErrorTypeTimeout},
		{"deadline", errors.New("context deadline exceeded"), ErrorTypeTimeout},
		{"unauthorized", errors.New("401 unauthorized"), ErrorTypeAuth},
		{"forbidden", errors.New("403 forbidden"), ErrorTypeForbidden},
		{"not found", errors.New("404 not found"), ErrorTypeNotFound},
		{"rate limit", errors.New("429 rate limit"), ErrorTypeRateLimit},
		{"server error", errors.New("500 server error"), ErrorTypeServer},
		{"unknown", errors.New("something strange"), ErrorTypeUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := CategorizeError(tc.input)
			if result.Type != tc.expected {
				t.Errorf("Expected type %s, got %s", tc.expected, result.Type)
			}
		})
	}
}

// TestCategorizeErrorNil handles nil input
func TestCategorizeErrorNil(t *testing.T) {
	if CategorizeError(nil) != nil {
		t.Error("Expected nil for nil input")
	}
}

// TestCategorizeErrorPassthrough keeps existing CLIErrors intact
func TestCategorizeErrorPassthrough(t *testing.T) {
	original := ValidationError("title", "too long")
	result := CategorizeError(original)

	if result != original {
		t.Error("Expected existing CLIError to pass through unchanged")
	}
}

// TestFormatError renders message and suggestion
func TestFormatError(t *testing.T) {
	err := NetworkError("Connection failed")
	formatted := FormatError(err)

	if !strings.Contains(formatted, "Connection failed") {
		t.Error("Expected message in formatted output")
	}

	if !strings.Contains(formatted, "Suggestion") {
		t.Error("Expected suggestion in formatted output")
	}
}

// TestUnwrap exposes the cause for errors.Is/As
func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewCLIError(ErrorTypeServer, "wrapped", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the cause")
	}
}
