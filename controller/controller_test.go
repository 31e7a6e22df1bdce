package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio/model"

	"github.com/gin-gonic/gin"
)

type fakePortfolioService struct {
	resp      model.PortfolioResponse
	err       error
	refreshed bool
}

func (f *fakePortfolioService) GetPortfolio(ctx context.Context) (model.PortfolioResponse, error) {
	return f.resp, f.err
}

func (f *fakePortfolioService) Refresh(ctx context.Context) (model.PortfolioResponse, error) {
	f.refreshed = true
	return f.resp, f.err
}

func sampleResponse(source model.Source) model.PortfolioResponse {
	return model.PortfolioResponse{
		Source: source,
		PortfolioSnapshot: &model.PortfolioSnapshot{
			Stocks: []model.EnrichedHolding{
				{
					Holding:          model.Holding{Symbol: "TCS", Name: "Tata Consultancy Services", Exchange: model.ExchangeNSE, Sector: "IT", PurchasePrice: 3200, Quantity: 10},
					CMP:              model.Some(3500.0),
					Investment:       32000,
					PresentValue:     35000,
					GainLoss:         3000,
					PortfolioPercent: 53.85,
					PERatio:          model.Some(29.84),
					LatestEarnings:   model.Some(model.EarningsNote),
				},
				{
					Holding:          model.Holding{Symbol: "INFY", Name: "Infosys", Exchange: model.ExchangeNSE, Sector: "IT", PurchasePrice: 1500, Quantity: 20},
					Investment:       30000,
					PresentValue:     30000,
					PortfolioPercent: 46.15,
				},
			},
			TotalInvestment:   62000,
			TotalPresentValue: 65000,
			TotalGainLoss:     3000,
			Sectors:           []model.SectorSummary{{Sector: "IT", TotalInvestment: 62000, TotalPresentValue: 65000, GainLoss: 3000}},
			LastUpdated:       time.Date(2026, 10, 19, 4, 0, 0, 0, time.UTC),
		},
	}
}

func newTestRouter(svc *fakePortfolioService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(DashboardTemplates())

	api := r.Group("/api")
	NewHealthController().RegisterRoutes(api)
	NewPortfolioController(svc).RegisterRoutes(api)
	NewDashboardController(svc, 15).RegisterRoutes(r)
	return r
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&fakePortfolioService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body model.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body.Status != "OK" {
		t.Errorf("expected status OK, got %s", body.Status)
	}
}

func TestGetPortfolio_JSONShape(t *testing.T) {
	r := newTestRouter(&fakePortfolioService{resp: sampleResponse(model.SourceFresh)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Portfolio-Source") != "fresh" {
		t.Errorf("expected source header fresh, got %q", w.Header().Get("X-Portfolio-Source"))
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if body["source"] != "fresh" {
		t.Errorf("expected source fresh, got %v", body["source"])
	}
	if body["totalPresentValue"] != 65000.0 {
		t.Errorf("unexpected totalPresentValue: %v", body["totalPresentValue"])
	}
	if _, ok := body["lastUpdated"]; !ok {
		t.Error("expected lastUpdated field")
	}

	stocks := body["stocks"].([]any)
	tcs := stocks[0].(map[string]any)
	infy := stocks[1].(map[string]any)

	if tcs["cmp"] != 3500.0 || tcs["peRatio"] != 29.84 || tcs["latestEarnings"] != model.EarningsNote {
		t.Errorf("unexpected TCS fields: %v", tcs)
	}
	for _, field := range []string{"cmp", "peRatio", "latestEarnings"} {
		if _, present := infy[field]; present {
			t.Errorf("expected INFY %s to be omitted when absent", field)
		}
	}
	if infy["symbol"] != "INFY" || infy["purchasePrice"] != 1500.0 {
		t.Errorf("expected holding fields inline, got %v", infy)
	}

	sectors := body["sectors"].([]any)
	if len(sectors) != 1 || sectors[0].(map[string]any)["sector"] != "IT" {
		t.Errorf("unexpected sectors: %v", sectors)
	}
}

func TestGetPortfolio_Failure(t *testing.T) {
	r := newTestRouter(&fakePortfolioService{err: errors.New("aggregate portfolio: boom")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body model.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body.Success || body.Message != "Portfolio data unavailable" {
		t.Errorf("unexpected error body: %+v", body)
	}
}

func TestRefreshPortfolio(t *testing.T) {
	svc := &fakePortfolioService{resp: sampleResponse(model.SourceFresh)}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/portfolio/refresh", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !svc.refreshed {
		t.Error("expected Refresh to be called")
	}
}

func TestDashboard_RendersPlaceholders(t *testing.T) {
	r := newTestRouter(&fakePortfolioService{resp: sampleResponse(model.SourceCache)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	html := w.Body.String()

	for _, want := range []string{"CACHED", "Tata Consultancy Services", "₹3500.00", "29.84", "53.85%", "₹65000", "Sector Summary", "19 Oct 2026, 09:30:00"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected dashboard to contain %q", want)
		}
	}
	if !strings.Contains(html, "<td>-</td>") {
		t.Error("expected placeholder for INFY absent fields")
	}
	if strings.Contains(html, "Portfolio data unavailable") {
		t.Error("absent fields must not trigger the unavailable state")
	}
}

func TestDashboard_Unavailable(t *testing.T) {
	r := newTestRouter(&fakePortfolioService{err: errors.New("boom")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Portfolio data unavailable") {
		t.Error("expected unavailable state")
	}
}
