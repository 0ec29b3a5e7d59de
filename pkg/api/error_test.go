package api

import (
	"errors"
	"strings"
	"testing"
)

func TestAPIErrorString(t *testing.T) {
	err := &APIError{
		Code:       "not_found",
		Message:    "image not found",
		StatusCode: 404,
	}

	msg := err.Error()
	if !strings.Contains(msg, "404") {
		t.Errorf("expected status code in message, got %q", msg)
	}
	if !strings.Contains(msg, "not_found") {
		t.Errorf("expected code in message, got %q", msg)
	}
	if !strings.Contains(msg, "image not found") {
		t.Errorf("expected message text, got %q", msg)
	}
}

func TestAPIErrorStringWithDetails(t *testing.T) {
	err := &APIError{
		Code:       "validation_error",
		Message:    "invalid input",
		StatusCode: 400,
		Details:    map[string]interface{}{"field": "title"},
	}

	if !strings.Contains(err.Error(), "details") {
		t.Errorf("expected details in message, got %q", err.Error())
	}
}

func TestStatusPredicates(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		unauthorized bool
		forbidden    bool
		notFound     bool
		serverError  bool
	}{
		{
			name:         "401",
			err:          &APIError{StatusCode: 401},
			unauthorized: true,
		},
		{
			name:      "403",
			err:       &APIError{StatusCode: 403},
			forbidden: true,
		},
		{
			name:     "404",
			err:      &APIError{StatusCode: 404},
			notFound: true,
		},
		{
			name:        "500",
			err:         &APIError{StatusCode: 500},
			serverError: true,
		},
		{
			name:        "503",
			err:         &APIError{StatusCode: 503},
			serverError: true,
		},
		{
			name: "plain error matches nothing",
			err:  errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnauthorized(tt.err); got != tt.unauthorized {
				t.Errorf("IsUnauthorized = %v, want %v", got, tt.unauthorized)
			}
			if got := IsForbidden(tt.err); got != tt.forbidden {
				t.Errorf("IsForbidden = %v, want %v", got, tt.forbidden)
			}
			if got := IsNotFound(tt.err); got != tt.notFound {
				t.Errorf("IsNotFound = %v, want %v", got, tt.notFound)
			}
			if got := IsServerError(tt.err); got != tt.serverError {
				t.Errorf("IsServerError = %v, want %v", got, tt.serverError)
			}
		})
	}
}
