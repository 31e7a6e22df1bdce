package service

import (
	"context"
	"fmt"
	"math"
	"portfolio/customerrors"
	"portfolio/model"
	"portfolio/validator"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

const defaultFetchConcurrency = 8

type fetchResult struct {
	price   model.Optional[float64]
	metrics model.Metrics
}

// Aggregator turns a holdings list into a PortfolioSnapshot. Upstream failures
// degrade individual fields; only faults in the pipeline itself return an error.
type Aggregator struct {
	quotes      QuoteService
	metrics     MetricsService
	clock       clockwork.Clock
	concurrency int
}

func NewAggregator(quotes QuoteService, metrics MetricsService, clock clockwork.Clock) *Aggregator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Aggregator{
		quotes:      quotes,
		metrics:     metrics,
		clock:       clock,
		concurrency: defaultFetchConcurrency,
	}
}

func (a *Aggregator) Aggregate(ctx context.Context, holdings []model.Holding) (*model.PortfolioSnapshot, error) {
	for i := range holdings {
		h := holdings[i]
		if err := validator.ValidateHolding(&h); err != nil {
			return nil, err
		}
	}

	results, err := a.fetchAll(ctx, holdings)
	if err != nil {
		return nil, err
	}

	snapshot := &model.PortfolioSnapshot{
		Stocks:  make([]model.EnrichedHolding, 0, len(holdings)),
		Sectors: make([]model.SectorSummary, 0),
	}
	sectorIdx := make(map[string]int)

	for i, h := range holdings {
		investment := h.Investment()
		current := results[i].price.OrElse(h.PurchasePrice)
		presentValue := current * float64(h.Quantity)

		snapshot.Stocks = append(snapshot.Stocks, model.EnrichedHolding{
			Holding:        h,
			CMP:            results[i].price,
			Investment:     investment,
			PresentValue:   presentValue,
			GainLoss:       presentValue - investment,
			PERatio:        results[i].metrics.PERatio,
			LatestEarnings: results[i].metrics.EarningsNote,
		})

		snapshot.TotalInvestment += investment
		snapshot.TotalPresentValue += presentValue

		idx, seen := sectorIdx[h.Sector]
		if !seen {
			idx = len(snapshot.Sectors)
			sectorIdx[h.Sector] = idx
			snapshot.Sectors = append(snapshot.Sectors, model.SectorSummary{Sector: h.Sector})
		}
		snapshot.Sectors[idx].TotalInvestment += investment
		snapshot.Sectors[idx].TotalPresentValue += presentValue
	}

	if !isFinite(snapshot.TotalInvestment) || !isFinite(snapshot.TotalPresentValue) {
		return nil, fmt.Errorf("%w: investment=%v presentValue=%v",
			customerrors.ErrNonFiniteTotal, snapshot.TotalInvestment, snapshot.TotalPresentValue)
	}

	// percentages need the final total, so they are a separate pass
	for i := range snapshot.Stocks {
		if snapshot.TotalPresentValue != 0 {
			snapshot.Stocks[i].PortfolioPercent = snapshot.Stocks[i].PresentValue / snapshot.TotalPresentValue * 100
		}
	}

	snapshot.TotalGainLoss = snapshot.TotalPresentValue - snapshot.TotalInvestment
	for i := range snapshot.Sectors {
		snapshot.Sectors[i].GainLoss = snapshot.Sectors[i].TotalPresentValue - snapshot.Sectors[i].TotalInvestment
	}

	snapshot.LastUpdated = a.clock.Now().UTC()
	return snapshot, nil
}

// fetchAll resolves price and metrics for every holding. Results are indexed
// like holdings so accumulation order does not depend on completion order.
func (a *Aggregator) fetchAll(ctx context.Context, holdings []model.Holding) ([]fetchResult, error) {
	results := make([]fetchResult, len(holdings))

	var g errgroup.Group
	g.SetLimit(a.concurrency)

	for i, h := range holdings {
		i, h := i, h
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("fetch for %s panicked: %v", h.Symbol, r)
				}
			}()

			results[i] = fetchResult{
				price:   a.quotes.FetchPrice(ctx, h.Symbol, h.Exchange),
				metrics: a.metrics.FetchMetrics(ctx, h.Symbol, h.Exchange),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
