package service

import (
	"context"
	"portfolio/model"

	"github.com/rs/zerolog/log"
)

// QuoteClient is the transport used by QuoteService; client.YahooClient implements it.
type QuoteClient interface {
	GetQuotePrice(ctx context.Context, ticker string) (float64, error)
	GetQuoteSummaryPrice(ctx context.Context, ticker string) (float64, error)
}

// QuoteService resolves the current market price of an instrument. It never
// fails: an unavailable price is returned as model.None.
type QuoteService interface {
	FetchPrice(ctx context.Context, symbol string, exchange model.Exchange) model.Optional[float64]
}

type QuoteServiceImpl struct {
	client QuoteClient
}

func NewQuoteService(c QuoteClient) QuoteService {
	return &QuoteServiceImpl{client: c}
}

func (s *QuoteServiceImpl) FetchPrice(ctx context.Context, symbol string, exchange model.Exchange) model.Optional[float64] {
	ticker := exchange.YahooTicker(symbol)

	price, err := s.client.GetQuotePrice(ctx, ticker)
	if err == nil {
		return model.Some(price)
	}
	log.Warn().Err(err).Str("symbol", symbol).Str("ticker", ticker).Str("source", "primary").
		Msg("Primary Yahoo fetch failed")

	price, err = s.client.GetQuoteSummaryPrice(ctx, ticker)
	if err == nil {
		return model.Some(price)
	}
	log.Warn().Err(err).Str("symbol", symbol).Str("ticker", ticker).Str("source", "fallback").
		Msg("Fallback Yahoo fetch failed")

	return model.None[float64]()
}
