package service

import (
	"portfolio/model"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MetricsExtractor pulls a P/E ratio out of a provider quote page.
type MetricsExtractor interface {
	Extract(page string) model.Optional[float64]
}

var peRatioPattern = regexp.MustCompile(`(?i)P/E ratio</div><div[^>]*>([\d.,]+)`)

// RegexPERatioExtractor reads the value cell that follows the "P/E ratio" label
// on a Google Finance quote page.
type RegexPERatioExtractor struct {
	pattern *regexp.Regexp
}

func NewRegexPERatioExtractor() *RegexPERatioExtractor {
	return &RegexPERatioExtractor{pattern: peRatioPattern}
}

func (e *RegexPERatioExtractor) Extract(page string) model.Optional[float64] {
	match := e.pattern.FindStringSubmatch(page)
	if len(match) < 2 {
		return model.None[float64]()
	}

	raw := strings.ReplaceAll(match[1], ",", "")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return model.None[float64]()
	}

	return model.Some(d.InexactFloat64())
}
