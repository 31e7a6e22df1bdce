package model

// JSON paths of the current market price in the two Yahoo Finance response
// shapes. The primary is the v7 quote endpoint, the fallback the v10
// quoteSummary endpoint with the price module.
const (
	YahooQuotePricePath   = "$.quoteResponse.result[0].regularMarketPrice"
	YahooSummaryPricePath = "$.quoteSummary.result[0].price.regularMarketPrice.raw"
)

// Metrics is the best-effort valuation data for one instrument.
type Metrics struct {
	PERatio      Optional[float64]
	EarningsNote Optional[string]
}

const EarningsNote = "Latest earnings data available on Google Finance"
