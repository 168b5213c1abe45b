package rest

import (
	"errors"
	"testing"
)

func TestNewAPIError(t *testing.T) {
	err := NewAPIError(404, "Not Found")

	if err.Status != 404 {
		t.Errorf("Expected status 404, got %d", err.Status)
	}
	if err.StatusText != "Not Found" {
		t.Errorf("Expected status text Not Found, got %q", err.StatusText)
	}
	if err.Message != DefaultErrorMessage {
		t.Errorf("Expected default message, got %q", err.Message)
	}
	if err.Unauthorized {
		t.Error("Expected Unauthorized to be false for 404")
	}
	if err.Details != nil {
		t.Errorf("Expected no details, got %v", err.Details)
	}
}

func TestNewAPIErrorCustomMessage(t *testing.T) {
	err := NewAPIError(422, "Unprocessable Entity", "name is required")
	if err.Message != "name is required" {
		t.Errorf("Expected custom message, got %q", err.Message)
	}
}

func TestAPIErrorUnauthorized(t *testing.T) {
	if !NewAPIError(401, "Unauthorized").Unauthorized {
		t.Error("Expected Unauthorized to be true for 401")
	}

	for _, status := range []int{200, 400, 402, 403, 404, 500, 503} {
		if NewAPIError(status, "").Unauthorized {
			t.Errorf("Expected Unauthorized to be false for %d", status)
		}
	}
}

func TestAPIErrorError(t *testing.T) {
	err := NewAPIError(500, "Internal Server Error", "boom")
	expected := "500 Internal Server Error: boom"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}

	err = NewAPIError(418, "", "teapot")
	expected = "418: teapot"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	err := ParseErrorResponse(nil, nil)
	if !errors.Is(err, ErrNoResponse) {
		t.Error("Expected 503 fallback to wrap ErrNoResponse")
	}

	plain := NewAPIError(400, "Bad Request")
	if plain.Unwrap() != nil {
		t.Errorf("Expected no cause, got %v", plain.Unwrap())
	}
}

func TestIsOkay(t *testing.T) {
	for status := 0; status < 700; status++ {
		expected := status >= 200 && status < 300
		if IsOkay(status) != expected {
			t.Errorf("IsOkay(%d) = %v, want %v", status, IsOkay(status), expected)
		}
	}
}
