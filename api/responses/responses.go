// Package responses renders the flat JSON envelopes of the distribution API:
// success payloads at the top level, failures as errorCode + errorMessage.
package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
	"github.com/aerolinehq/ndc-backend/pkg/logger"
)

// APIError is the wire shape of every failure.
type APIError struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
	Details      any    `json:"details,omitempty"`
}

// WriteSuccess writes the payload as-is with a 200.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteSuccessStatus(w, http.StatusOK, data)
}

// WriteSuccessStatus writes the payload as-is with the given status.
func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

// WriteError classifies the error and renders its status and envelope.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	if meta.DetailsAllowed || clientFacingCode(typed.Code()) {
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	payload := APIError{
		ErrorCode:    string(typed.Code()),
		ErrorMessage: msg,
	}
	if meta.DetailsAllowed {
		if details := typed.Details(); details != nil {
			payload.Details = details
		}
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)
		ctx = logg.WithFields(ctx, map[string]any{
			"error":         dump.TopMessage,
			"error_code":    dump.Code,
			"error_chain":   dump.Chain,
			"pg_code":       dump.PGCode,
			"pg_detail":     dump.PGDetail,
			"pg_message":    dump.PGMessage,
			"pg_table":      dump.PGTable,
			"pg_column":     dump.PGColumn,
			"pg_constraint": dump.PGConstraint,
		})
		logg.Error(ctx, "request.error", err)
	}

	writeJSON(w, meta.HTTPStatus, payload)
}

// WriteMethodNotAllowed renders a 405 advertising the supported verbs.
func WriteMethodNotAllowed(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, allow string) {
	if allow != "" {
		w.Header().Set("Allow", allow)
	}
	WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "method not allowed"))
}

// clientFacingCode reports whether the error's own message is safe to show.
// Internal and dependency failures keep their generic public message.
func clientFacingCode(code pkgerrors.Code) bool {
	switch code {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeOfferExpired,
		pkgerrors.CodeUnauthorized:
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
