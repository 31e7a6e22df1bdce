package client

import (
	"context"
	"encoding/json"
	"fmt"
	"portfolio/customerrors"
	"portfolio/model"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-resty/resty/v2"
)

const yahooUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// YahooClient talks to two Yahoo Finance hosts: the v7 quote API and the
// v10 quoteSummary API, which return the same price in different shapes.
type YahooClient struct {
	primary  *resty.Client
	fallback *resty.Client
}

func NewYahooClient(primaryUrl, fallbackUrl string, timeout time.Duration) *YahooClient {
	return &YahooClient{
		primary:  newYahooResty(primaryUrl, timeout),
		fallback: newYahooResty(fallbackUrl, timeout),
	}
}

func newYahooResty(baseUrl string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseUrl).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": yahooUserAgent,
		})
}

// GetQuotePrice reads regularMarketPrice from /v7/finance/quote.
func (y *YahooClient) GetQuotePrice(ctx context.Context, ticker string) (float64, error) {
	resp, err := y.primary.R().
		SetContext(ctx).
		SetQueryParam("symbols", ticker).
		Get("/v7/finance/quote")

	return extractPrice(resp, err, model.YahooQuotePricePath)
}

// GetQuoteSummaryPrice reads price.regularMarketPrice.raw from /v10/finance/quoteSummary.
func (y *YahooClient) GetQuoteSummaryPrice(ctx context.Context, ticker string) (float64, error) {
	resp, err := y.fallback.R().
		SetContext(ctx).
		SetQueryParam("modules", "price").
		SetPathParam("ticker", ticker).
		Get("/v10/finance/quoteSummary/{ticker}")

	return extractPrice(resp, err, model.YahooSummaryPricePath)
}

func extractPrice(resp *resty.Response, err error, path string) (float64, error) {
	if err != nil {
		return 0, fmt.Errorf("yahoo request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return 0, fmt.Errorf("yahoo request failed: status %d", resp.StatusCode())
	}

	var body any
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return 0, fmt.Errorf("yahoo response decode error: %w", err)
	}

	val, err := jsonpath.Get(path, body)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", customerrors.ErrPriceUnavailable, path, err)
	}

	price, ok := val.(float64)
	if !ok || price < 0 {
		return 0, fmt.Errorf("%w: %s is %v", customerrors.ErrPriceUnavailable, path, val)
	}

	return price, nil
}
