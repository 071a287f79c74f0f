package pricing

import "github.com/shopspring/decimal"

// SelectedOfferItem references one priceable item of a stored offer.
type SelectedOfferItem struct {
	OfferItemRefID string `json:"offerItemRefId"`
	PaxRefID       string `json:"paxRefId"`
}

// SelectedOffer references a stored offer being priced.
type SelectedOffer struct {
	OfferRefID            string              `json:"offerRefId"`
	OwnerCode             string              `json:"ownerCode"`
	SelectedOfferItemList []SelectedOfferItem `json:"selectedOfferItemList"`
}

// Request is the OfferPriceRQ payload.
type Request struct {
	SelectedOfferList []SelectedOffer `json:"selectedOfferList"`
}

// ResolvedItem is a store snapshot of one selected item, captured at
// resolution time so pricing never re-queries the store.
type ResolvedItem struct {
	OfferItemRefID string
	PaxRefID       string
	UnitPrice      decimal.Decimal
}

// ResolvedOffer is a store snapshot of one selected offer.
type ResolvedOffer struct {
	OfferRefID string
	OwnerCode  string
	Currency   string
	Items      []ResolvedItem
}

// PricedItem is one priced line in the response.
type PricedItem struct {
	OfferItemRefID string  `json:"offerItemRefId"`
	PaxRefID       string  `json:"paxRefId"`
	Price          float64 `json:"price"`
}

// PricedOffer groups priced items per selected offer.
type PricedOffer struct {
	OfferRefID string       `json:"offerRefId"`
	OwnerCode  string       `json:"ownerCode"`
	Items      []PricedItem `json:"items"`
	OfferTotal float64      `json:"offerTotal"`
}

// Response is the OfferPriceRQ success payload.
type Response struct {
	PricedOffers []PricedOffer `json:"pricedOffers"`
	TotalPrice   float64       `json:"totalPrice"`
	Currency     string        `json:"currency"`
}
