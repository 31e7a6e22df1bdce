package service

import (
	"context"
	"fmt"
	localCache "portfolio/cache"
	"portfolio/model"
	"portfolio/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const portfolioFlightKey = "portfolio"

type PortfolioService interface {
	GetPortfolio(ctx context.Context) (model.PortfolioResponse, error)
	Refresh(ctx context.Context) (model.PortfolioResponse, error)
}

type PortfolioServiceImpl struct {
	repo       repository.HoldingRepository
	aggregator *Aggregator
	cache      *localCache.PortfolioCache
	group      singleflight.Group
}

func NewPortfolioService(repo repository.HoldingRepository, aggregator *Aggregator, cache *localCache.PortfolioCache) PortfolioService {
	return &PortfolioServiceImpl{
		repo:       repo,
		aggregator: aggregator,
		cache:      cache,
	}
}

// GetPortfolio serves the cached snapshot while it is live. On a miss, callers
// arriving together share a single aggregation.
func (s *PortfolioServiceImpl) GetPortfolio(ctx context.Context) (model.PortfolioResponse, error) {
	if snapshot, ok := s.cache.Get(); ok {
		return model.PortfolioResponse{Source: model.SourceCache, PortfolioSnapshot: snapshot}, nil
	}

	return s.compute(ctx)
}

// Refresh drops the cached snapshot and recomputes it.
func (s *PortfolioServiceImpl) Refresh(ctx context.Context) (model.PortfolioResponse, error) {
	s.cache.Clear()
	return s.compute(ctx)
}

func (s *PortfolioServiceImpl) compute(ctx context.Context) (model.PortfolioResponse, error) {
	// the result is shared, so one caller going away must not cancel it
	detached := context.WithoutCancel(ctx)

	val, err, shared := s.group.Do(portfolioFlightKey, func() (any, error) {
		// a flight that finished between our cache miss and this call already stored a snapshot
		if snapshot, ok := s.cache.Get(); ok {
			return model.PortfolioResponse{Source: model.SourceCache, PortfolioSnapshot: snapshot}, nil
		}

		holdings, err := s.repo.FindAll(detached)
		if err != nil {
			return nil, fmt.Errorf("load holdings: %w", err)
		}

		snapshot, err := s.aggregator.Aggregate(detached, holdings)
		if err != nil {
			return nil, fmt.Errorf("aggregate portfolio: %w", err)
		}

		s.cache.Put(snapshot)
		log.Info().
			Int("stocks", len(snapshot.Stocks)).
			Float64("totalPresentValue", snapshot.TotalPresentValue).
			Msg("Portfolio snapshot computed")
		return model.PortfolioResponse{Source: model.SourceFresh, PortfolioSnapshot: snapshot}, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("Portfolio aggregation failed")
		return model.PortfolioResponse{}, err
	}

	if shared {
		log.Debug().Msg("Portfolio aggregation shared with concurrent request")
	}

	return val.(model.PortfolioResponse), nil
}
