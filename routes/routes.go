package routes

import (
	localCache "portfolio/cache"
	"portfolio/client"
	"portfolio/config"
	"portfolio/controller"
	"portfolio/middleware"
	"portfolio/repository"
	"portfolio/service"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

func SetupRouter(repo repository.HoldingRepository, cfg *config.SystemConfigs) *gin.Engine {
	r := gin.New()
	cm := config.NewConfigManager(cfg.Config)

	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.CORS(cm))
	r.Use(middleware.RateLimiter(cm))

	r.SetHTMLTemplate(controller.DashboardTemplates())

	// --- 1. Clients ---
	yahooClient := client.NewYahooClient(cfg.Config.YahooPrimaryUrl, cfg.Config.YahooFallbackUrl, cfg.Config.RequestTimeout)
	googleClient := client.NewGoogleFinanceClient(cfg.Config.GoogleFinanceUrl, cfg.Config.RequestTimeout)

	// --- 2. Services (Dependency Injection) ---
	clock := clockwork.NewRealClock()
	quoteSvc := service.NewQuoteService(yahooClient)
	metricsSvc := service.NewMetricsService(googleClient, service.NewRegexPERatioExtractor(), localCache.NewMetricsCache(cfg.Config.MetricsCacheTTL))
	aggregator := service.NewAggregator(quoteSvc, metricsSvc, clock)
	portfolioSvc := service.NewPortfolioService(repo, aggregator, localCache.NewPortfolioCache(cfg.Config.CacheTTL, clock))

	// --- 3. Routes & Controllers ---
	controller.NewDashboardController(portfolioSvc, int(cfg.Config.CacheTTL.Seconds())).RegisterRoutes(r)

	// Unprefixed path kept for the dashboard frontend
	r.GET("/portfolio", controller.NewPortfolioController(portfolioSvc).GetPortfolio)

	api := r.Group("/api")
	{
		// Health Check
		controller.NewHealthController().RegisterRoutes(api)

		// Portfolio Endpoints
		controller.NewPortfolioController(portfolioSvc).RegisterRoutes(api)
	}

	return r
}
