package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"portfolio/client"
	"portfolio/model"
)

type providerStub struct {
	status int
	body   string
	delay  time.Duration
	hits   atomic.Int32
	last   atomic.Value
}

func (p *providerStub) server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.hits.Add(1)
		p.last.Store(r.URL.RequestURI())
		if p.delay > 0 {
			time.Sleep(p.delay)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(p.status)
		w.Write([]byte(p.body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const (
	primaryOK  = `{"quoteResponse":{"result":[{"symbol":"TCS.NS","regularMarketPrice":3512.456}]}}`
	fallbackOK = `{"quoteSummary":{"result":[{"price":{"regularMarketPrice":{"raw":3498.1,"fmt":"3,498.10"}}}]}}`
)

func newQuoteServiceFor(t *testing.T, primary, fallback *providerStub, timeout time.Duration) QuoteService {
	t.Helper()
	yc := client.NewYahooClient(primary.server(t).URL, fallback.server(t).URL, timeout)
	return NewQuoteService(yc)
}

func TestFetchPrice_Primary(t *testing.T) {
	primary := &providerStub{status: http.StatusOK, body: primaryOK}
	fallback := &providerStub{status: http.StatusOK, body: fallbackOK}
	svc := newQuoteServiceFor(t, primary, fallback, time.Second)

	price, ok := svc.FetchPrice(context.Background(), "TCS", model.ExchangeNSE).Get()
	if !ok || price != 3512.456 {
		t.Errorf("expected unrounded 3512.456 from primary, got %v %v", price, ok)
	}
	if fallback.hits.Load() != 0 {
		t.Error("fallback should not be called when primary succeeds")
	}
	if got := primary.last.Load().(string); got != "/v7/finance/quote?symbols=TCS.NS" {
		t.Errorf("unexpected primary request: %s", got)
	}
}

func TestFetchPrice_FallbackPaths(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{}`},
		{"malformed json", http.StatusOK, `{"quoteResponse":`},
		{"empty result", http.StatusOK, `{"quoteResponse":{"result":[]}}`},
		{"missing field", http.StatusOK, `{"quoteResponse":{"result":[{"symbol":"TCS.NS"}]}}`},
		{"non numeric price", http.StatusOK, `{"quoteResponse":{"result":[{"regularMarketPrice":"3500"}]}}`},
		{"null price", http.StatusOK, `{"quoteResponse":{"result":[{"regularMarketPrice":null}]}}`},
		{"negative price", http.StatusOK, `{"quoteResponse":{"result":[{"regularMarketPrice":-4}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &providerStub{status: tt.status, body: tt.body}
			fallback := &providerStub{status: http.StatusOK, body: fallbackOK}
			svc := newQuoteServiceFor(t, primary, fallback, time.Second)

			price, ok := svc.FetchPrice(context.Background(), "TCS", model.ExchangeNSE).Get()
			if !ok || price != 3498.1 {
				t.Errorf("expected 3498.1 from fallback, got %v %v", price, ok)
			}
			if got := fallback.last.Load().(string); got != "/v10/finance/quoteSummary/TCS.NS?modules=price" {
				t.Errorf("unexpected fallback request: %s", got)
			}
		})
	}
}

func TestFetchPrice_PrimaryTimeout(t *testing.T) {
	primary := &providerStub{status: http.StatusOK, body: primaryOK, delay: 300 * time.Millisecond}
	fallback := &providerStub{status: http.StatusOK, body: fallbackOK}
	svc := newQuoteServiceFor(t, primary, fallback, 50*time.Millisecond)

	price, ok := svc.FetchPrice(context.Background(), "TCS", model.ExchangeNSE).Get()
	if !ok || price != 3498.1 {
		t.Errorf("expected fallback price after primary timeout, got %v %v", price, ok)
	}
}

func TestFetchPrice_BothFail(t *testing.T) {
	primary := &providerStub{status: http.StatusServiceUnavailable, body: ``}
	fallback := &providerStub{status: http.StatusOK, body: `{"quoteSummary":{"result":[{"price":{}}]}}`}
	svc := newQuoteServiceFor(t, primary, fallback, time.Second)

	if svc.FetchPrice(context.Background(), "TCS", model.ExchangeNSE).IsPresent() {
		t.Error("expected absent price when both sources fail")
	}
}

func TestFetchPrice_UnreachableHosts(t *testing.T) {
	yc := client.NewYahooClient("http://127.0.0.1:1", "http://127.0.0.1:1", 200*time.Millisecond)
	svc := NewQuoteService(yc)

	if svc.FetchPrice(context.Background(), "INFY", model.ExchangeBSE).IsPresent() {
		t.Error("expected absent price for unreachable hosts")
	}
}

func TestFetchPrice_BseTicker(t *testing.T) {
	primary := &providerStub{status: http.StatusOK, body: primaryOK}
	fallback := &providerStub{status: http.StatusOK, body: fallbackOK}
	svc := newQuoteServiceFor(t, primary, fallback, time.Second)

	svc.FetchPrice(context.Background(), "ITC", model.ExchangeBSE)

	if got := primary.last.Load().(string); got != "/v7/finance/quote?symbols=ITC.BO" {
		t.Errorf("unexpected primary request: %s", got)
	}
}
