package main

import (
	"portfolio/config"
	"portfolio/repository"
	"portfolio/routes"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	if level, err := zerolog.ParseLevel(sysConfigs.Config.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	if sysConfigs.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	repo, err := loadHoldings(sysConfigs.Config.HoldingsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading holdings")
	}

	router := routes.SetupRouter(repo, sysConfigs)

	port := sysConfigs.Config.Port
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Dur("cacheTtl", sysConfigs.Config.CacheTTL).Msg("Server starting")
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}

func loadHoldings(path string) (repository.HoldingRepository, error) {
	if path == "" {
		return repository.NewStaticHoldingRepository(repository.DefaultHoldings)
	}
	log.Info().Str("file", path).Msg("Loading holdings from file")
	return repository.NewCsvHoldingRepository(path)
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
