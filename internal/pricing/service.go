package pricing

import (
	"context"

	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
	"github.com/aerolinehq/ndc-backend/pkg/logger"
)

// Service handles OfferPriceRQ requests.
type Service struct {
	resolver *Resolver
	logg     *logger.Logger
}

// NewService wires the pricing service.
func NewService(resolver *Resolver, logg *logger.Logger) *Service {
	return &Service{resolver: resolver, logg: logg}
}

// Price resolves every selected offer and aggregates the snapshot prices.
// The first failing offer aborts the request; partial pricing is never
// returned.
func (s *Service) Price(ctx context.Context, req Request) (*Response, error) {
	if len(req.SelectedOfferList) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one selected offer required")
	}

	resolved := make([]*ResolvedOffer, 0, len(req.SelectedOfferList))
	for _, selected := range req.SelectedOfferList {
		offerCtx := s.logg.WithOfferRef(ctx, selected.OfferRefID)
		snapshot, err := s.resolver.Resolve(offerCtx, selected)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, snapshot)
	}

	resp := Aggregate(resolved)
	s.logg.Info(ctx, "priced selected offers")
	return resp, nil
}
