package shopping

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/aerolinehq/ndc-backend/pkg/db/models"
	"github.com/aerolinehq/ndc-backend/pkg/enums"
)

type carrier struct {
	ownerCode string
	name      string
}

var carriers = []carrier{
	{"AA", "American Airlines"},
	{"DL", "Delta Air Lines"},
	{"UA", "United Airlines"},
	{"BA", "British Airways"},
	{"AF", "Air France"},
}

// cabinFareMultiplier scales the base fare per cabin, in percent.
var cabinFareMultiplier = map[enums.CabinTypeCode]int64{
	enums.CabinFirst:          400,
	enums.CabinBusiness:       250,
	enums.CabinPremiumEconomy: 150,
	enums.CabinEconomy:        100,
	enums.CabinBasicEconomy:   80,
}

// ptcFareMultiplier scales the per-passenger fare per type, in percent.
var ptcFareMultiplier = map[enums.PTC]int64{
	enums.PTCAdult:      100,
	enums.PTCSenior:     90,
	enums.PTCYoungAdult: 85,
	enums.PTCChild:      75,
	enums.PTCInfant:     10,
}

// Generate mints offers for the validated criteria. Output is deterministic
// for a given criteria and offer count so repeated searches are comparable;
// only the minted IDs differ between calls.
func Generate(criteria *Criteria, offersPerLeg int, currency string, ttl time.Duration, now time.Time) (string, []*models.StoredOffer) {
	if offersPerLeg <= 0 {
		offersPerLeg = 3
	}

	shoppingResponseID := uuid.NewString()
	expiresAt := now.Add(ttl)

	var offers []*models.StoredOffer
	for _, leg := range criteria.Legs {
		for i := 0; i < offersPerLeg; i++ {
			offers = append(offers, mintOffer(shoppingResponseID, criteria, leg, i, currency, expiresAt))
		}
	}
	return shoppingResponseID, offers
}

func mintOffer(shoppingResponseID string, criteria *Criteria, leg NormalizedLeg, ordinal int, currency string, expiresAt time.Time) *models.StoredOffer {
	seed := routeSeed(leg, ordinal)
	c := carriers[seed%uint64(len(carriers))]

	baseFareCents := int64(12000 + seed%38000)
	baseFareCents = baseFareCents * cabinFareMultiplier[criteria.CabinTypeCode] / 100

	departure := leg.DepartureDate.Add(time.Duration(6+ordinal*4) * time.Hour)
	arrival := departure.Add(6*time.Hour + 15*time.Minute)

	offer := &models.StoredOffer{
		ShoppingResponseID: shoppingResponseID,
		OfferID:            fmt.Sprintf("offer-%d-%s", ordinal+1, uuid.NewString()[:8]),
		OwnerCode:          c.ownerCode,
		Airline:            c.name,
		Origin:             leg.Origin,
		Destination:        leg.Destination,
		CabinTypeCode:      string(criteria.CabinTypeCode),
		DepartureTime:      departure,
		ArrivalTime:        arrival,
		Currency:           currency,
		ExpiresAt:          expiresAt,
	}

	var total int64
	for i, p := range criteria.Passengers {
		unit := baseFareCents * ptcFareMultiplier[p.PTC] / 100
		total += unit
		offer.Items = append(offer.Items, models.StoredOfferItem{
			ItemID:         fmt.Sprintf("item-%d", i+1),
			PaxRefID:       p.PaxID,
			PTC:            string(p.PTC),
			UnitPriceCents: unit,
		})
	}
	offer.TotalPriceCents = total
	return offer
}

func routeSeed(leg NormalizedLeg, ordinal int) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%d", leg.Origin, leg.Destination, leg.DepartureDate.Format("2006-01-02"), ordinal)
	return h.Sum64()
}
