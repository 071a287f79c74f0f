package offers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aerolinehq/ndc-backend/pkg/db/models"
)

// Repository encapsulates stored offer persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided GORM handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx scopes the repository to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// FindByRef returns the stored offer for the composite reference with its items.
func (r *Repository) FindByRef(ctx context.Context, shoppingResponseID, offerID string) (*models.StoredOffer, error) {
	var offer models.StoredOffer
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("shopping_response_id = ? AND offer_id = ?", shoppingResponseID, offerID).
		First(&offer).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

// Create inserts the provided offer and its items.
func (r *Repository) Create(ctx context.Context, offer *models.StoredOffer) (*models.StoredOffer, error) {
	assignIDs(offer)
	if err := r.db.WithContext(ctx).Create(offer).Error; err != nil {
		return nil, err
	}
	return offer, nil
}

// CreateBatch inserts every offer in the batch within one transaction.
func (r *Repository) CreateBatch(ctx context.Context, batch []*models.StoredOffer) error {
	if len(batch) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, offer := range batch {
			assignIDs(offer)
			if err := tx.Create(offer).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteExpiredBefore removes offers whose expiry predates the cutoff, at most
// batchSize rows per call. Items cascade through the foreign key.
func (r *Repository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time, batchSize int) (int64, error) {
	if batchSize <= 0 {
		batchSize = 500
	}

	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.StoredOffer{}).
		Where("expires_at < ?", cutoff).
		Order("expires_at ASC").
		Limit(batchSize).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	var removed int64
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_row_id IN ?", ids).Delete(&models.StoredOfferItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&models.StoredOffer{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// assignIDs fills primary keys up front so the insert works on backends
// without a gen_random_uuid default.
func assignIDs(offer *models.StoredOffer) {
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	for i := range offer.Items {
		if offer.Items[i].ID == uuid.Nil {
			offer.Items[i].ID = uuid.New()
		}
		if offer.Items[i].OfferRowID == uuid.Nil {
			offer.Items[i].OfferRowID = offer.ID
		}
	}
}
