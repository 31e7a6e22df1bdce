package service

import (
	"context"
	"portfolio/model"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// PageClient fetches a provider quote page; client.GoogleFinanceClient implements it.
type PageClient interface {
	GetQuotePage(ctx context.Context, ticker string) (string, error)
}

// MetricsService returns best-effort valuation metrics. Any failure yields
// empty metrics rather than an error.
type MetricsService interface {
	FetchMetrics(ctx context.Context, symbol string, exchange model.Exchange) model.Metrics
}

type MetricsServiceImpl struct {
	client    PageClient
	extractor MetricsExtractor
	store     *cache.Cache
}

// NewMetricsService wires the page client and extractor. store may be nil to
// disable caching of successful lookups.
func NewMetricsService(c PageClient, extractor MetricsExtractor, store *cache.Cache) MetricsService {
	if extractor == nil {
		extractor = NewRegexPERatioExtractor()
	}
	return &MetricsServiceImpl{
		client:    c,
		extractor: extractor,
		store:     store,
	}
}

func (s *MetricsServiceImpl) FetchMetrics(ctx context.Context, symbol string, exchange model.Exchange) model.Metrics {
	ticker := exchange.GoogleTicker(symbol)

	if s.store != nil {
		if cached, found := s.store.Get(ticker); found {
			return cached.(model.Metrics)
		}
	}

	page, err := s.client.GetQuotePage(ctx, ticker)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Str("ticker", ticker).Str("source", "google").
			Msg("Google Finance fetch failed")
		return model.Metrics{}
	}

	pe := s.extractor.Extract(page)
	if !pe.IsPresent() {
		log.Debug().Str("symbol", symbol).Str("ticker", ticker).Msg("P/E ratio not found on quote page")
		return model.Metrics{}
	}

	metrics := model.Metrics{
		PERatio:      pe,
		EarningsNote: model.Some(model.EarningsNote),
	}

	if s.store != nil {
		s.store.Set(ticker, metrics, cache.DefaultExpiration)
	}

	return metrics
}
