package controllers

import (
	"net/http"

	"github.com/aerolinehq/ndc-backend/api/responses"
	"github.com/aerolinehq/ndc-backend/api/validators"
	"github.com/aerolinehq/ndc-backend/internal/pricing"
	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
	"github.com/aerolinehq/ndc-backend/pkg/logger"
)

// OfferPrice handles OfferPriceRQ: resolves the referenced offers against the
// store and returns the aggregated price breakdown.
func OfferPrice(svc *pricing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pricing service unavailable"))
			return
		}

		var payload pricing.Request
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Price(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}
