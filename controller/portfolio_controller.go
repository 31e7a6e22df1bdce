package controller

import (
	"net/http"

	"portfolio/model"
	"portfolio/service"

	"github.com/gin-gonic/gin"
)

type PortfolioController struct {
	portfolioService service.PortfolioService
}

func NewPortfolioController(ps service.PortfolioService) *PortfolioController {
	return &PortfolioController{
		portfolioService: ps,
	}
}

// RegisterRoutes sets up the portfolio routes under the /api group.
func (ctrl *PortfolioController) RegisterRoutes(router *gin.RouterGroup) {
	portfolioGroup := router.Group("/portfolio")
	{
		portfolioGroup.GET("", ctrl.GetPortfolio)
		portfolioGroup.POST("/refresh", ctrl.RefreshPortfolio)
	}
}

// GetPortfolio returns the current portfolio snapshot.
// @Summary      Get Portfolio Snapshot
// @Description  Aggregated holdings, totals and sector rollups. Served from a short-lived cache when possible.
// @Tags         Portfolio
// @Produce      json
// @Success      200  {object}  model.PortfolioResponse
// @Failure      500  {object}  model.Response
// @Router       /portfolio [get]
func (ctrl *PortfolioController) GetPortfolio(c *gin.Context) {
	resp, err := ctrl.portfolioService.GetPortfolio(c.Request.Context())
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	ctrl.handleSuccess(c, resp)
}

// RefreshPortfolio drops the cached snapshot and recomputes it.
// @Summary      Refresh Portfolio Snapshot
// @Tags         Portfolio
// @Produce      json
// @Success      200  {object}  model.PortfolioResponse
// @Failure      500  {object}  model.Response
// @Router       /portfolio/refresh [post]
func (ctrl *PortfolioController) RefreshPortfolio(c *gin.Context) {
	resp, err := ctrl.portfolioService.Refresh(c.Request.Context())
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	ctrl.handleSuccess(c, resp)
}

// --- Internal Response Helpers ---

func (ctrl *PortfolioController) handleSuccess(c *gin.Context, resp model.PortfolioResponse) {
	c.Header("X-Portfolio-Source", string(resp.Source))
	c.JSON(http.StatusOK, resp)
}

func (ctrl *PortfolioController) handleError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, model.Response{
		Success: false,
		Message: "Portfolio data unavailable",
		Error:   err.Error(),
	})
}
