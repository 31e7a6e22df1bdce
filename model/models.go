package model

import "time"

// --- HOLDINGS ---

// Holding is one static equity position. It is never mutated after load.
type Holding struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	Exchange      Exchange `json:"exchange"`
	Sector        string   `json:"sector"`
	PurchasePrice float64  `json:"purchasePrice"`
	Quantity      int      `json:"quantity"`
}

func (h Holding) Investment() float64 {
	return h.PurchasePrice * float64(h.Quantity)
}

// EnrichedHolding is a Holding with the values computed on one aggregation pass.
// CMP is absent when both price lookups failed.
type EnrichedHolding struct {
	Holding
	CMP              Optional[float64] `json:"cmp,omitzero"`
	Investment       float64           `json:"investment"`
	PresentValue     float64           `json:"presentValue"`
	GainLoss         float64           `json:"gainLoss"`
	PortfolioPercent float64           `json:"portfolioPercent"`
	PERatio          Optional[float64] `json:"peRatio,omitzero"`
	LatestEarnings   Optional[string]  `json:"latestEarnings,omitzero"`
}

// --- PORTFOLIO ---

type SectorSummary struct {
	Sector            string  `json:"sector"`
	TotalInvestment   float64 `json:"totalInvestment"`
	TotalPresentValue float64 `json:"totalPresentValue"`
	GainLoss          float64 `json:"gainLoss"`
}

// PortfolioSnapshot is the unit that is cached and served. It is not modified
// after the aggregator returns it.
type PortfolioSnapshot struct {
	Stocks            []EnrichedHolding `json:"stocks"`
	TotalInvestment   float64           `json:"totalInvestment"`
	TotalPresentValue float64           `json:"totalPresentValue"`
	TotalGainLoss     float64           `json:"totalGainLoss"`
	Sectors           []SectorSummary   `json:"sectors"`
	LastUpdated       time.Time         `json:"lastUpdated"`
}

// PortfolioResponse tags a snapshot with where it came from.
type PortfolioResponse struct {
	Source Source `json:"source"`
	*PortfolioSnapshot
}
