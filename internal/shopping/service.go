// Package shopping validates AirShoppingRQ criteria and mints priced offers.
package shopping

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aerolinehq/ndc-backend/pkg/config"
	"github.com/aerolinehq/ndc-backend/pkg/db/models"
	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
	"github.com/aerolinehq/ndc-backend/pkg/logger"
)

// OfferWriter persists minted offers.
type OfferWriter interface {
	CreateBatch(ctx context.Context, batch []*models.StoredOffer) error
}

// ResponseCache holds rendered shopping responses keyed by criteria hash.
type ResponseCache interface {
	GetShoppingResponse(ctx context.Context, criteriaHash string) (string, error)
	StoreShoppingResponse(ctx context.Context, criteriaHash, payload string, ttl time.Duration) error
}

// Service handles AirShoppingRQ requests.
type Service struct {
	writer   OfferWriter
	cache    ResponseCache
	logg     *logger.Logger
	cfg      config.ShoppingConfig
	offerTTL time.Duration
	now      func() time.Time
}

// NewService wires the shopping service.
func NewService(writer OfferWriter, cache ResponseCache, logg *logger.Logger, cfg config.ShoppingConfig, offerTTL time.Duration) *Service {
	return &Service{
		writer:   writer,
		cache:    cache,
		logg:     logg,
		cfg:      cfg,
		offerTTL: offerTTL,
		now:      time.Now,
	}
}

// Search validates the request, returning cached offers when an identical
// search was served recently, otherwise minting, persisting and caching a
// fresh batch.
func (s *Service) Search(ctx context.Context, req Request) (*Response, error) {
	now := s.now()

	criteria, err := ValidateCriteria(req, now)
	if err != nil {
		return nil, err
	}

	hash := CriteriaHash(criteria)
	ctx = s.logg.WithField(ctx, "criteria_hash", hash)

	if cached := s.lookupCache(ctx, hash); cached != nil {
		return cached, nil
	}

	shoppingResponseID, offers := Generate(criteria, s.cfg.OffersPerLeg, s.cfg.DefaultCurrency, s.offerTTL, now)
	ctx = s.logg.WithShoppingResponseID(ctx, shoppingResponseID)

	if err := s.writer.CreateBatch(ctx, offers); err != nil {
		s.logg.Error(ctx, "persisting minted offers", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "offer store unavailable")
	}

	resp := renderResponse(shoppingResponseID, offers)
	s.storeCache(ctx, hash, resp)

	s.logg.Info(ctx, "shopping response minted")
	return resp, nil
}

func (s *Service) lookupCache(ctx context.Context, hash string) *Response {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.GetShoppingResponse(ctx, hash)
	if err != nil {
		return nil
	}
	var resp Response
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		s.logg.Warn(ctx, "dropping undecodable cached shopping response")
		return nil
	}
	return &resp
}

func (s *Service) storeCache(ctx context.Context, hash string, resp *Response) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cache.StoreShoppingResponse(ctx, hash, string(payload), s.cfg.CacheTTL); err != nil {
		s.logg.Warn(ctx, "caching shopping response failed")
	}
}

func renderResponse(shoppingResponseID string, offers []*models.StoredOffer) *Response {
	views := make([]OfferView, 0, len(offers))
	for _, o := range offers {
		views = append(views, OfferView{
			OfferID:       o.OfferID,
			OfferRefID:    o.Ref(),
			OwnerCode:     o.OwnerCode,
			Airline:       o.Airline,
			Origin:        o.Origin,
			Destination:   o.Destination,
			CabinTypeCode: o.CabinTypeCode,
			Price:         float64(o.TotalPriceCents) / 100,
			Currency:      o.Currency,
			DepartureTime: o.DepartureTime.UTC().Format(time.RFC3339),
			ArrivalTime:   o.ArrivalTime.UTC().Format(time.RFC3339),
			ExpiresAt:     o.ExpiresAt.UTC().Format(time.RFC3339),
		})
	}
	return &Response{ShoppingResponseID: shoppingResponseID, Offers: views}
}
