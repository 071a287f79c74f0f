package shopping

import (
	"time"

	"github.com/aerolinehq/ndc-backend/internal/pax"
	"github.com/aerolinehq/ndc-backend/pkg/enums"
)

// OriginDestLeg is one requested flight leg.
type OriginDestLeg struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
}

// PaxEntry is one passenger in the request.
type PaxEntry struct {
	PaxID string `json:"paxId"`
	PTC   string `json:"ptc"`
}

// Request is the AirShoppingRQ payload.
type Request struct {
	OriginDestCriteria []OriginDestLeg `json:"originDestCriteria"`
	CabinTypeCode      string          `json:"cabinTypeCode"`
	PrefLevelCode      string          `json:"prefLevelCode"`
	PaxList            []PaxEntry      `json:"paxList"`
}

// NormalizedLeg is a leg after validation: codes uppercased, date parsed.
type NormalizedLeg struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
}

// Criteria is the validated, normalized form of a Request.
type Criteria struct {
	Legs          []NormalizedLeg
	CabinTypeCode enums.CabinTypeCode
	PrefLevelCode enums.PrefLevelCode
	Passengers    []pax.Entry
}

// OfferView is one generated offer as rendered to clients.
type OfferView struct {
	OfferID       string  `json:"offerId"`
	OfferRefID    string  `json:"offerRefId"`
	OwnerCode     string  `json:"ownerCode"`
	Airline       string  `json:"airline"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	CabinTypeCode string  `json:"cabinTypeCode"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	ExpiresAt     string  `json:"expiresAt"`
}

// Response is the AirShoppingRQ success payload.
type Response struct {
	ShoppingResponseID string      `json:"shoppingResponseId"`
	Offers             []OfferView `json:"offers"`
}
