package models

import (
	"time"

	"github.com/google/uuid"
)

// StoredOffer is a priced travel product minted at shopping time. Rows stay
// queryable after expiry (the resolver classifies them as expired) until the
// purge job removes them.
type StoredOffer struct {
	ID                 uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ShoppingResponseID string    `gorm:"column:shopping_response_id;not null;uniqueIndex:idx_offer_ref,priority:1"`
	OfferID            string    `gorm:"column:offer_id;not null;uniqueIndex:idx_offer_ref,priority:2"`
	OwnerCode          string    `gorm:"column:owner_code;not null"`
	Airline            string    `gorm:"column:airline;not null"`
	Origin             string    `gorm:"column:origin;not null"`
	Destination        string    `gorm:"column:destination;not null"`
	CabinTypeCode      string    `gorm:"column:cabin_type_code;not null"`
	DepartureTime      time.Time `gorm:"column:departure_time;not null"`
	ArrivalTime        time.Time `gorm:"column:arrival_time;not null"`
	Currency           string    `gorm:"column:currency;not null"`
	TotalPriceCents    int64     `gorm:"column:total_price_cents;not null"`
	ExpiresAt          time.Time `gorm:"column:expires_at;not null;index"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`

	Items []StoredOfferItem `gorm:"foreignKey:OfferRowID"`
}

// Ref renders the opaque composite reference clients quote back.
func (o StoredOffer) Ref() string {
	return o.ShoppingResponseID + "|" + o.OfferID
}

// Expired reports whether the offer is past its expiry at the given instant.
func (o StoredOffer) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
