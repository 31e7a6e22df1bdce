package service

import (
	"context"
	"sync"
	"sync/atomic"

	"portfolio/model"
)

type fakeQuoteService struct {
	prices map[string]model.Optional[float64]
	calls  atomic.Int32
	gate   chan struct{}
	panics bool
}

func (f *fakeQuoteService) FetchPrice(ctx context.Context, symbol string, exchange model.Exchange) model.Optional[float64] {
	f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	if f.panics {
		panic("quote backend exploded")
	}
	if p, ok := f.prices[symbol]; ok {
		return p
	}
	return model.None[float64]()
}

type fakeMetricsService struct {
	mu      sync.Mutex
	metrics map[string]model.Metrics
}

func (f *fakeMetricsService) FetchMetrics(ctx context.Context, symbol string, exchange model.Exchange) model.Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.metrics[symbol]
}

type fakeHoldingRepository struct {
	holdings []model.Holding
	err      error
}

func (f *fakeHoldingRepository) FindAll(ctx context.Context) ([]model.Holding, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Holding, len(f.holdings))
	copy(out, f.holdings)
	return out, nil
}

func itHoldings() []model.Holding {
	return []model.Holding{
		{Symbol: "TCS", Name: "Tata Consultancy Services", Exchange: model.ExchangeNSE, Sector: "IT", PurchasePrice: 3200, Quantity: 10},
		{Symbol: "INFY", Name: "Infosys", Exchange: model.ExchangeNSE, Sector: "IT", PurchasePrice: 1500, Quantity: 20},
	}
}
