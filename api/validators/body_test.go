package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
)

type signInPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func requestWithBody(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestDecodeJSONBodyValid(t *testing.T) {
	var payload signInPayload
	err := DecodeJSONBody(requestWithBody(`{"email":"user@example.com","password":"pw"}`), &payload)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if payload.Email != "user@example.com" {
		t.Fatalf("unexpected email %q", payload.Email)
	}
}

func TestDecodeJSONBodyMalformed(t *testing.T) {
	var payload signInPayload
	err := DecodeJSONBody(requestWithBody(`{"email": `), &payload)

	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error got %v", err)
	}
	if typed.Code() != pkgerrors.CodeMalformedPayload {
		t.Fatalf("expected malformed payload code got %q", typed.Code())
	}
	if typed.Message() != "Invalid JSON format" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestDecodeJSONBodyTagValidation(t *testing.T) {
	var payload signInPayload
	err := DecodeJSONBody(requestWithBody(`{"email":"not-an-email"}`), &payload)

	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error got %v", err)
	}
	if typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code got %q", typed.Code())
	}

	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details got %T", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email detail %q", details["email"])
	}
	if details["password"] != "is required" {
		t.Fatalf("unexpected password detail %q", details["password"])
	}
}
