package offers

import (
	"context"
	"time"

	"github.com/aerolinehq/ndc-backend/pkg/db/models"
)

// OfferRepository defines the persistence surface for stored offers.
type OfferRepository interface {
	FindByRef(ctx context.Context, shoppingResponseID, offerID string) (*models.StoredOffer, error)
	Create(ctx context.Context, offer *models.StoredOffer) (*models.StoredOffer, error)
	CreateBatch(ctx context.Context, batch []*models.StoredOffer) error
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time, batchSize int) (int64, error)
}
