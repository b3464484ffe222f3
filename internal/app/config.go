package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/meridian-trade/meridian/internal/pricing"
)

// Config holds runtime configuration for the calculation service.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"120"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	// Organization-wide pricing constants, maintained by administrators and
	// never editable per quote.
	ForexRiskReservePct         decimal.Decimal `envconfig:"FOREX_RISK_RESERVE_PCT" default:"2"`
	FinancingAgentCommissionPct decimal.Decimal `envconfig:"FINANCING_AGENT_COMMISSION_PCT" default:"1.5"`
	AnnualInterestRatePct       decimal.Decimal `envconfig:"ANNUAL_INTEREST_RATE_PCT" default:"24"`
	FixedPaymentTermDays        int             `envconfig:"FIXED_PAYMENT_TERM_DAYS" default:"30"`
	DutyBaseIncludesFirstLeg    bool            `envconfig:"DUTY_BASE_INCLUDES_FIRST_LEG" default:"true"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.FixedPaymentTermDays < 0 {
		return nil, errors.New("fixed payment term must not be negative")
	}
	return &cfg, nil
}

// AdminSettings assembles the engine-facing constants from configuration.
func (c *Config) AdminSettings() pricing.AdminSettings {
	return pricing.AdminSettings{
		ForexRiskReservePct:         c.ForexRiskReservePct,
		FinancingAgentCommissionPct: c.FinancingAgentCommissionPct,
		AnnualInterestRatePct:       c.AnnualInterestRatePct,
		FixedPaymentTermDays:        c.FixedPaymentTermDays,
		DutyBaseIncludesFirstLeg:    c.DutyBaseIncludesFirstLeg,
	}
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
