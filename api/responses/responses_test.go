package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
)

func decodeEnvelope(t *testing.T, resp *httptest.ResponseRecorder) APIError {
	t.Helper()
	var envelope APIError
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return envelope
}

func TestWriteErrorRendersClientMessage(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteError(context.Background(), nil, resp, pkgerrors.New(pkgerrors.CodeValidation, "origin is required"))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	envelope := decodeEnvelope(t, resp)
	if envelope.ErrorCode != "VALIDATION_ERROR" {
		t.Fatalf("unexpected code %q", envelope.ErrorCode)
	}
	if envelope.ErrorMessage != "origin is required" {
		t.Fatalf("unexpected message %q", envelope.ErrorMessage)
	}
}

func TestWriteErrorHidesInternalMessage(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteError(context.Background(), nil, resp, pkgerrors.Wrap(pkgerrors.CodeInternal, errors.New("pq: duplicate key"), "insert blew up"))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
	envelope := decodeEnvelope(t, resp)
	if envelope.ErrorMessage != "internal server error" {
		t.Fatalf("internal details leaked: %q", envelope.ErrorMessage)
	}
}

func TestWriteErrorBusinessCodePassesThrough(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteError(context.Background(), nil, resp, pkgerrors.NewBusiness("90001", "User not found in directory"))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	envelope := decodeEnvelope(t, resp)
	if envelope.ErrorCode != "90001" {
		t.Fatalf("expected upstream code got %q", envelope.ErrorCode)
	}
	if envelope.ErrorMessage != "User not found in directory" {
		t.Fatalf("unexpected message %q", envelope.ErrorMessage)
	}
}

func TestWriteErrorUntypedFallsBackToInternal(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteError(context.Background(), nil, resp, errors.New("boom"))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
	envelope := decodeEnvelope(t, resp)
	if envelope.ErrorCode != "INTERNAL_ERROR" {
		t.Fatalf("unexpected code %q", envelope.ErrorCode)
	}
}

func TestWriteMethodNotAllowedSetsAllowHeader(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteMethodNotAllowed(context.Background(), nil, resp, http.MethodPost)

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", resp.Code)
	}
	if got := resp.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("expected Allow: POST got %q", got)
	}
	envelope := decodeEnvelope(t, resp)
	if envelope.ErrorCode != "METHOD_NOT_ALLOWED" {
		t.Fatalf("unexpected code %q", envelope.ErrorCode)
	}
}

func TestWriteSuccessIsFlat(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteSuccess(resp, map[string]any{"totalPrice": 450.50, "currency": "USD"})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if _, nested := payload["data"]; nested {
		t.Fatal("success payload must not be wrapped in a data envelope")
	}
	if payload["totalPrice"] != 450.50 {
		t.Fatalf("unexpected totalPrice %v", payload["totalPrice"])
	}
}
