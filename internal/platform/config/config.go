package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// ChartCodes maps ledger roles to chart-of-accounts codes. Defaults match
	// the standard chart; deployments with a custom chart override per role.
	ChartCodes domain.ChartCodes
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	defaults := domain.DefaultChartCodes()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("CHART_BANK_CODE", defaults[domain.ControlBank])
	viper.SetDefault("CHART_AR_CONTROL_CODE", defaults[domain.ControlARControl])
	viper.SetDefault("CHART_AP_CONTROL_CODE", defaults[domain.ControlAPControl])
	viper.SetDefault("CHART_VAT_PAYABLE_CODE", defaults[domain.ControlVATPayable])
	viper.SetDefault("CHART_SC_INCOME_CODE", defaults[domain.ControlServiceChargeIncome])

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.ChartCodes = domain.ChartCodes{
		domain.ControlBank:                viper.GetString("CHART_BANK_CODE"),
		domain.ControlARControl:           viper.GetString("CHART_AR_CONTROL_CODE"),
		domain.ControlAPControl:           viper.GetString("CHART_AP_CONTROL_CODE"),
		domain.ControlVATPayable:          viper.GetString("CHART_VAT_PAYABLE_CODE"),
		domain.ControlServiceChargeIncome: viper.GetString("CHART_SC_INCOME_CODE"),
	}

	return cfg, nil
}
