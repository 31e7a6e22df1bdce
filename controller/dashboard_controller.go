package controller

import (
	_ "embed"
	"fmt"
	"html/template"
	"math"
	"net/http"

	"portfolio/model"
	"portfolio/service"
	"portfolio/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

//go:embed templates/dashboard.html
var dashboardHTML string

const dashboardTemplate = "dashboard.html"

// DashboardTemplates parses the dashboard page; the router installs it with SetHTMLTemplate.
func DashboardTemplates() *template.Template {
	return template.Must(template.New(dashboardTemplate).Funcs(template.FuncMap{
		"money":    formatMoney,
		"price":    formatPrice,
		"percent":  func(v float64) string { return fmt.Sprintf("%.2f%%", v) },
		"optPrice": func(o model.Optional[float64]) string { return optional(o, formatPrice) },
		"optNumber": func(o model.Optional[float64]) string {
			return optional(o, func(v float64) string { return fmt.Sprintf("%.2f", v) })
		},
		"optText":   func(o model.Optional[string]) string { return o.OrElse("-") },
		"gainClass": func(v float64) string { return map[bool]string{true: "gain", false: "loss"}[v >= 0] },
		"arrow":     func(v float64) string { return map[bool]string{true: "▲", false: "▼"}[v >= 0] },
		"ist":       util.FormatIst,
	}).Parse(dashboardHTML))
}

type DashboardController struct {
	portfolioService service.PortfolioService
	refreshSeconds   int
}

func NewDashboardController(ps service.PortfolioService, refreshSeconds int) *DashboardController {
	return &DashboardController{
		portfolioService: ps,
		refreshSeconds:   refreshSeconds,
	}
}

func (ctrl *DashboardController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", ctrl.Dashboard)
}

// Dashboard renders the portfolio as an HTML page. Absent prices and metrics
// show as "-"; only a failed aggregation shows the unavailable state.
func (ctrl *DashboardController) Dashboard(c *gin.Context) {
	resp, err := ctrl.portfolioService.GetPortfolio(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Dashboard render without data")
		c.HTML(http.StatusInternalServerError, dashboardTemplate, gin.H{
			"Error":          true,
			"RefreshSeconds": ctrl.refreshSeconds,
		})
		return
	}

	c.HTML(http.StatusOK, dashboardTemplate, gin.H{
		"Source":            string(resp.Source),
		"LastUpdated":       resp.LastUpdated,
		"TotalInvestment":   resp.TotalInvestment,
		"TotalPresentValue": resp.TotalPresentValue,
		"TotalGainLoss":     resp.TotalGainLoss,
		"Stocks":            resp.Stocks,
		"Sectors":           resp.Sectors,
		"RefreshSeconds":    ctrl.refreshSeconds,
	})
}

func formatMoney(v float64) string {
	return fmt.Sprintf("₹%.0f", math.Round(v))
}

func formatPrice(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

func optional[T any](o model.Optional[T], format func(T) string) string {
	if v, ok := o.Get(); ok {
		return format(v)
	}
	return "-"
}
