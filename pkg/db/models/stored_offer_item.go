package models

import (
	"time"

	"github.com/google/uuid"
)

// StoredOfferItem is one priceable component of a stored offer, bound to the
// passenger reference it was generated for.
type StoredOfferItem struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OfferRowID     uuid.UUID `gorm:"column:offer_row_id;type:uuid;not null;index"`
	ItemID         string    `gorm:"column:item_id;not null"`
	PaxRefID       string    `gorm:"column:pax_ref_id;not null"`
	PTC            string    `gorm:"column:ptc;not null"`
	UnitPriceCents int64     `gorm:"column:unit_price_cents;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

// Ref renders the full item reference given the parent offer reference.
func (i StoredOfferItem) Ref(offerRef string) string {
	return offerRef + "|" + i.ItemID
}
