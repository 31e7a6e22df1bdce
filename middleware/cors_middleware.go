package middleware

import (
	"portfolio/config"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORS(cfg *config.ConfigManager) gin.HandlerFunc {
	return cors.New(cors.Config{
		// The dashboard frontend origins; avoid "*" so credentials stay allowed
		AllowOrigins: cfg.GetConfig().FrontendUrls,

		// Read-only API apart from the refresh endpoint
		AllowMethods: []string{"GET", "POST", "HEAD", "OPTIONS"},

		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"X-Requested-With",
		},

		ExposeHeaders: []string{"Content-Length", "X-Portfolio-Source"},

		AllowCredentials: true,

		// How long the browser may cache the preflight response
		MaxAge: 12 * time.Hour,
	})
}
