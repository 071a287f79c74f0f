package offers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/aerolinehq/ndc-backend/pkg/db/models"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	handle, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, handle.AutoMigrate(&models.StoredOffer{}, &models.StoredOfferItem{}))
	return NewRepository(handle)
}

func testOffer(shoppingResponseID, offerID string, expiresAt time.Time) *models.StoredOffer {
	return &models.StoredOffer{
		ShoppingResponseID: shoppingResponseID,
		OfferID:            offerID,
		OwnerCode:          "AA",
		Airline:            "American Airlines",
		Origin:             "JFK",
		Destination:        "LAX",
		CabinTypeCode:      "5",
		DepartureTime:      time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC),
		ArrivalTime:        time.Date(2026, 10, 1, 11, 45, 0, 0, time.UTC),
		Currency:           "USD",
		TotalPriceCents:    45000,
		ExpiresAt:          expiresAt,
		Items: []models.StoredOfferItem{
			{ItemID: "item-1", PaxRefID: "pax-1", PTC: "ADT", UnitPriceCents: 30000},
			{ItemID: "item-2", PaxRefID: "pax-2", PTC: "CHD", UnitPriceCents: 15000},
		},
	}
}

func TestCreateAndFindByRef(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testOffer("resp-1", "offer-1", time.Now().Add(30*time.Minute)))
	require.NoError(t, err)
	assert.Equal(t, "resp-1|offer-1", created.Ref())

	found, err := repo.FindByRef(ctx, "resp-1", "offer-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	require.Len(t, found.Items, 2)
	for _, item := range found.Items {
		assert.Equal(t, created.ID, item.OfferRowID, "item %s not linked to offer row", item.ItemID)
	}
}

func TestFindByRefNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByRef(context.Background(), "resp-x", "offer-x")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateBatch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	batch := []*models.StoredOffer{
		testOffer("resp-1", "offer-1", time.Now().Add(30*time.Minute)),
		testOffer("resp-1", "offer-2", time.Now().Add(30*time.Minute)),
	}
	require.NoError(t, repo.CreateBatch(ctx, batch))

	for _, offerID := range []string{"offer-1", "offer-2"} {
		_, err := repo.FindByRef(ctx, "resp-1", offerID)
		assert.NoError(t, err, "find %s", offerID)
	}
}

func TestDeleteExpiredBefore(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	_, err := repo.Create(ctx, testOffer("resp-1", "stale", now.Add(-48*time.Hour)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOffer("resp-1", "fresh", now.Add(30*time.Minute)))
	require.NoError(t, err)

	removed, err := repo.DeleteExpiredBefore(ctx, now.Add(-24*time.Hour), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.FindByRef(ctx, "resp-1", "stale")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "stale offer should be purged")
	_, err = repo.FindByRef(ctx, "resp-1", "fresh")
	assert.NoError(t, err, "fresh offer should survive purge")
}

func TestDeleteExpiredBeforeRespectsBatchSize(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	for _, offerID := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, testOffer("resp-1", offerID, now.Add(-48*time.Hour)))
		require.NoError(t, err)
	}

	removed, err := repo.DeleteExpiredBefore(ctx, now, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}
