package controller

import (
	"net/http"
	"time"

	"portfolio/model"

	"github.com/gin-gonic/gin"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// RegisterRoutes sets up the health check endpoint under the /api group
func (ctrl *HealthController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", ctrl.healthCheck)
	router.HEAD("/health", ctrl.healthCheck)
}

// healthCheck returns the current status of the server
// @Summary      System Health Check
// @Description  Confirm that the server is up and running.
// @Tags         System
// @Produce      json
// @Success      200  {object}  model.HealthResponse
// @Router       /health [get]
// @Router       /health [head]
func (ctrl *HealthController) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:  "OK",
		Message: "Backend server is running",
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}
