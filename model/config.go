package model

import "time"

// --- SYSTEM CONFIG ---
// EnvConfig holds the process settings read from the environment (and .env).
type EnvConfig struct {
	Port        string `env:"PORT" envDefault:"8080" json:"port"`
	Environment string `env:"ENVIRONMENT" envDefault:"development" json:"environment"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" json:"logLevel"`

	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"15s" json:"cacheTtl"`
	MetricsCacheTTL time.Duration `env:"METRICS_CACHE_TTL" envDefault:"5m" json:"metricsCacheTtl"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s" json:"requestTimeout"`

	FrontendUrls []string `env:"FRONTEND_URLS" envDefault:"http://localhost:3000" envSeparator:"," json:"frontendUrls"`
	RateLimiter  bool     `env:"RATE_LIMITER" envDefault:"true" json:"rateLimiter"`
	HoldingsFile string   `env:"HOLDINGS_FILE" json:"holdingsFile"`

	YahooPrimaryUrl  string `env:"YAHOO_PRIMARY_URL" envDefault:"https://query1.finance.yahoo.com" json:"yahooPrimaryUrl"`
	YahooFallbackUrl string `env:"YAHOO_FALLBACK_URL" envDefault:"https://query2.finance.yahoo.com" json:"yahooFallbackUrl"`
	GoogleFinanceUrl string `env:"GOOGLE_FINANCE_URL" envDefault:"https://www.google.com/finance" json:"googleFinanceUrl"`
}

func (c *EnvConfig) IsProduction() bool {
	return c.Environment == "production"
}
