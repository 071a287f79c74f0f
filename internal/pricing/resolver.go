// Package pricing resolves selected offer references against the offer store
// and aggregates item prices into totals.
package pricing

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/aerolinehq/ndc-backend/pkg/db/models"
	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
	"github.com/aerolinehq/ndc-backend/pkg/iata"
)

// OfferReader is the offer store surface the resolver queries.
type OfferReader interface {
	FindByRef(ctx context.Context, shoppingResponseID, offerID string) (*models.StoredOffer, error)
}

// Resolver maps selected offer references to store snapshots.
type Resolver struct {
	reader        OfferReader
	lookupTimeout time.Duration
	now           func() time.Time
}

// NewResolver wires the resolver to the offer store.
func NewResolver(reader OfferReader, lookupTimeout time.Duration) *Resolver {
	return &Resolver{
		reader:        reader,
		lookupTimeout: lookupTimeout,
		now:           time.Now,
	}
}

// Resolve validates the selected offer's reference formats and looks it up in
// the store. All format checks run before any store access; a reference that
// fails them never causes I/O.
func (r *Resolver) Resolve(ctx context.Context, selected SelectedOffer) (*ResolvedOffer, error) {
	if selected.OfferRefID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "OfferRefID is required")
	}
	if err := iata.ValidateOfferRef(selected.OfferRefID); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid OfferRefID format")
	}
	if selected.OwnerCode == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ownerCode is required")
	}
	if err := iata.ValidateOwnerCode(selected.OwnerCode); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid ownerCode format")
	}
	for _, item := range selected.SelectedOfferItemList {
		if item.OfferItemRefID == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "offerItemRefId is required")
		}
		if item.PaxRefID == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "paxRefId is required")
		}
		if err := iata.ValidateOfferItemRef(selected.OfferRefID, item.OfferItemRefID); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item reference mismatch")
		}
	}

	shoppingResponseID, offerID, err := iata.SplitOfferRef(selected.OfferRefID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid OfferRefID format")
	}

	lookupCtx := ctx
	if r.lookupTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, r.lookupTimeout)
		defer cancel()
	}

	stored, err := r.reader.FindByRef(lookupCtx, shoppingResponseID, offerID)
	if err != nil {
		return nil, classifyLookupError(err)
	}

	if stored.Expired(r.now()) {
		return nil, pkgerrors.New(pkgerrors.CodeOfferExpired, "Offer expired")
	}

	return snapshot(selected, stored)
}

func classifyLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Offer not found")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "offer store timed out")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "offer store unavailable")
}

// snapshot captures unit prices for the selected items from the stored offer.
// Selecting an item the offer never contained is a lookup miss, not a format
// violation.
func snapshot(selected SelectedOffer, stored *models.StoredOffer) (*ResolvedOffer, error) {
	byItemID := make(map[string]models.StoredOfferItem, len(stored.Items))
	for _, item := range stored.Items {
		byItemID[item.ItemID] = item
	}

	resolved := &ResolvedOffer{
		OfferRefID: selected.OfferRefID,
		OwnerCode:  selected.OwnerCode,
		Currency:   stored.Currency,
	}
	for _, item := range selected.SelectedOfferItemList {
		suffix := iata.ItemSuffix(selected.OfferRefID, item.OfferItemRefID)
		storedItem, ok := byItemID[suffix]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Offer item not found")
		}
		resolved.Items = append(resolved.Items, ResolvedItem{
			OfferItemRefID: item.OfferItemRefID,
			PaxRefID:       item.PaxRefID,
			UnitPrice:      decimal.New(storedItem.UnitPriceCents, -2),
		})
	}
	return resolved, nil
}
