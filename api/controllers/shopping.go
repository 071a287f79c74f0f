package controllers

import (
	"net/http"

	"github.com/aerolinehq/ndc-backend/api/responses"
	"github.com/aerolinehq/ndc-backend/api/validators"
	"github.com/aerolinehq/ndc-backend/internal/shopping"
	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
	"github.com/aerolinehq/ndc-backend/pkg/logger"
)

// AirShopping handles AirShoppingRQ: validates the itinerary criteria and
// returns the minted (or cached) offer set.
func AirShopping(svc *shopping.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shopping service unavailable"))
			return
		}

		var payload shopping.Request
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Search(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}
