package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aerolinehq/ndc-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
}

type apiErrorEnvelope struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

func decodeAPIError(t *testing.T, resp *httptest.ResponseRecorder) apiErrorEnvelope {
	t.Helper()
	var envelope apiErrorEnvelope
	if err := jsonDecode(resp, &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return envelope
}

func jsonDecode(resp *httptest.ResponseRecorder, dest any) error {
	return json.NewDecoder(resp.Body).Decode(dest)
}
