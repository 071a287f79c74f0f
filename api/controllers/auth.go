package controllers

import (
	"net/http"

	"github.com/aerolinehq/ndc-backend/api/responses"
	"github.com/aerolinehq/ndc-backend/api/validators"
	"github.com/aerolinehq/ndc-backend/internal/identity"
	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
	"github.com/aerolinehq/ndc-backend/pkg/logger"
)

// SignIn starts the two-step sign-in flow and issues an OTP challenge.
func SignIn(svc *identity.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "identity service unavailable"))
			return
		}

		var payload identity.SignInRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.SignIn(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}

// SignInVerify completes the challenge and mints the access token.
func SignInVerify(svc *identity.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "identity service unavailable"))
			return
		}

		var payload identity.VerifyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Verify(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}
