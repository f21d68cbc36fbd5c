package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	err := &AppError{Code: CodeNotFound, Message: "gone", Status: http.StatusNotFound}
	if err.Error() != "gone" {
		t.Errorf("Error() = %v, want gone", err.Error())
	}

	wrapped := err.WithError(errors.New("db down"))
	if wrapped.Error() != "gone: db down" {
		t.Errorf("Error() = %v, want gone: db down", wrapped.Error())
	}
}

func TestAppError_WithMessage(t *testing.T) {
	custom := ErrNotFound.WithMessage("User not found")
	if custom.Message != "User not found" {
		t.Errorf("WithMessage() Message = %v, want User not found", custom.Message)
	}
	if custom.Code != CodeNotFound {
		t.Errorf("WithMessage() Code = %v, want %v", custom.Code, CodeNotFound)
	}
	if custom.Status != http.StatusNotFound {
		t.Errorf("WithMessage() Status = %v, want 404", custom.Status)
	}
	if ErrNotFound.Message != "resource not found" {
		t.Error("WithMessage() mutated the shared sentinel")
	}
}

func TestIs_MatchesByCode(t *testing.T) {
	custom := ErrValidation.WithMessage("Invalid trade status")
	if !Is(custom, ErrValidation) {
		t.Error("Is() = false for same code, want true")
	}
	if Is(custom, ErrNotFound) {
		t.Error("Is() = true across codes, want false")
	}
	if Is(errors.New("plain"), ErrNotFound) {
		t.Error("Is() = true for a plain error, want false")
	}
}

func TestIs_Wrapped(t *testing.T) {
	inner := ErrUpstream.WithMessage("recommender returned status 502")
	outer := Wrap(inner, ErrInternalError)
	if !Is(outer, ErrInternalError) {
		t.Error("Is() = false for the wrapping error's code")
	}
}

func TestGetStatus(t *testing.T) {
	if got := GetStatus(ErrBadRequest); got != http.StatusBadRequest {
		t.Errorf("GetStatus() = %d, want 400", got)
	}
	if got := GetStatus(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("GetStatus() = %d, want 500", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("dial timeout")
	err := ErrUpstream.WithError(cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not reach the wrapped cause")
	}
}
