package model

type Exchange string

const (
	ExchangeNSE Exchange = "NSE"
	ExchangeBSE Exchange = "BSE"
)

// YahooTicker returns the exchange-suffixed ticker used by Yahoo Finance,
// e.g. TCS.NS or TCS.BO.
func (e Exchange) YahooTicker(symbol string) string {
	if e == ExchangeBSE {
		return symbol + ".BO"
	}
	return symbol + ".NS"
}

// GoogleTicker returns the colon-separated ticker used by Google Finance,
// e.g. TCS:NSE.
func (e Exchange) GoogleTicker(symbol string) string {
	if e == ExchangeBSE {
		return symbol + ":BSE"
	}
	return symbol + ":NSE"
}

type Source string

const (
	SourceFresh Source = "fresh"
	SourceCache Source = "cache"
)
