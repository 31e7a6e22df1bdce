package client

import (
	"context"
	"fmt"
	"portfolio/middleware"
	"time"

	"github.com/go-resty/resty/v2"
)

type GoogleFinanceClient struct {
	client *resty.Client
}

func NewGoogleFinanceClient(baseUrl string, timeout time.Duration) *GoogleFinanceClient {
	c := resty.New().
		SetBaseURL(baseUrl).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Accept":          "text/html",
			"Accept-Encoding": "gzip, deflate, br",
			"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		})

	c.OnAfterResponse(middleware.DecompressMiddleware)

	return &GoogleFinanceClient{client: c}
}

// GetQuotePage returns the raw HTML of the quote page for a ticker such as TCS:NSE.
func (g *GoogleFinanceClient) GetQuotePage(ctx context.Context, ticker string) (string, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("ticker", ticker).
		Get("/quote/{ticker}")

	if err != nil {
		return "", fmt.Errorf("google finance request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("google finance request failed: status %d", resp.StatusCode())
	}

	return resp.String(), nil
}
