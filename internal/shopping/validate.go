package shopping

import (
	"errors"
	"time"

	"github.com/aerolinehq/ndc-backend/internal/pax"
	"github.com/aerolinehq/ndc-backend/pkg/enums"
	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
	"github.com/aerolinehq/ndc-backend/pkg/iata"
)

// ValidateCriteria checks the request field by field, left to right, and
// returns the normalized criteria. The first violated rule is reported and
// the rest of the request is not inspected.
func ValidateCriteria(req Request, now time.Time) (*Criteria, error) {
	if len(req.OriginDestCriteria) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "originDestCriteria is required")
	}

	legs := make([]NormalizedLeg, 0, len(req.OriginDestCriteria))
	var prevDate time.Time
	for i, leg := range req.OriginDestCriteria {
		normalized, err := validateLeg(leg, now)
		if err != nil {
			return nil, err
		}
		if i > 0 && normalized.DepartureDate.Before(prevDate) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "departure dates must be in chronological order")
		}
		prevDate = normalized.DepartureDate
		legs = append(legs, *normalized)
	}

	if req.CabinTypeCode == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cabinTypeCode is required")
	}
	cabin, err := enums.ParseCabinTypeCode(req.CabinTypeCode)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cabinTypeCode")
	}

	if req.PrefLevelCode == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "prefLevelCode is required")
	}
	prefLevel, err := enums.ParsePrefLevelCode(req.PrefLevelCode)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid prefLevelCode")
	}

	if len(req.PaxList) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "At least one passenger required")
	}
	passengers := make([]pax.Entry, 0, len(req.PaxList))
	for _, p := range req.PaxList {
		passengers = append(passengers, pax.Entry{PaxID: p.PaxID, PTC: enums.PTC(p.PTC)})
	}
	if err := pax.Validate(passengers); err != nil {
		return nil, err
	}

	return &Criteria{
		Legs:          legs,
		CabinTypeCode: cabin,
		PrefLevelCode: prefLevel,
		Passengers:    passengers,
	}, nil
}

func validateLeg(leg OriginDestLeg, now time.Time) (*NormalizedLeg, error) {
	if leg.Origin == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "origin is required")
	}
	origin, err := iata.NormalizeLocationCode(leg.Origin)
	if err != nil {
		return nil, locationError(err, "origin")
	}

	if leg.Destination == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "destination is required")
	}
	destination, err := iata.NormalizeLocationCode(leg.Destination)
	if err != nil {
		return nil, locationError(err, "destination")
	}

	if leg.DepartureDate == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "departureDate is required")
	}
	date, err := iata.ParseDate(leg.DepartureDate)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid date format, use YYYY-MM-DD")
	}
	if err := iata.ValidateDateNotPast(date, now); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "departureDate cannot be in the past")
	}

	if origin == destination {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "origin and destination cannot be the same")
	}

	return &NormalizedLeg{Origin: origin, Destination: destination, DepartureDate: date}, nil
}

func locationError(err error, field string) error {
	if errors.Is(err, iata.ErrInvalidCharacters) {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid characters in "+field)
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid IATA code format")
}
