package pricing

import "github.com/shopspring/decimal"

// Aggregate sums the snapshot prices into the response payload. Items sharing
// a paxRefId each contribute their own price; nothing is deduplicated. An
// offer with zero items prices to exactly 0.00.
func Aggregate(resolved []*ResolvedOffer) *Response {
	grandTotal := decimal.Zero
	currency := ""

	priced := make([]PricedOffer, 0, len(resolved))
	for _, offer := range resolved {
		if currency == "" {
			currency = offer.Currency
		}

		offerTotal := decimal.Zero
		items := make([]PricedItem, 0, len(offer.Items))
		for _, item := range offer.Items {
			offerTotal = offerTotal.Add(item.UnitPrice)
			items = append(items, PricedItem{
				OfferItemRefID: item.OfferItemRefID,
				PaxRefID:       item.PaxRefID,
				Price:          item.UnitPrice.InexactFloat64(),
			})
		}
		grandTotal = grandTotal.Add(offerTotal)

		priced = append(priced, PricedOffer{
			OfferRefID: offer.OfferRefID,
			OwnerCode:  offer.OwnerCode,
			Items:      items,
			OfferTotal: offerTotal.InexactFloat64(),
		})
	}

	return &Response{
		PricedOffers: priced,
		TotalPrice:   grandTotal.InexactFloat64(),
		Currency:     currency,
	}
}
