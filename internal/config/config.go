package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	ierr "github.com/memberware/renewals/internal/errors"
	"github.com/memberware/renewals/internal/types"
)

// Configuration is the full runtime configuration, loaded once at startup and
// injected everywhere through ServiceParams.
type Configuration struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Billing BillingConfig `mapstructure:"billing"`
	Dues    DuesConfig    `mapstructure:"dues"`
	Pricing PricingConfig `mapstructure:"pricing"`
}

type LoggingConfig struct {
	Level          types.LogLevel `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	FluentdEnabled bool           `mapstructure:"fluentd_enabled"`
	FluentdHost    string         `mapstructure:"fluentd_host"`
	FluentdPort    int            `mapstructure:"fluentd_port"`
}

type CacheConfig struct {
	Enabled bool        `mapstructure:"enabled"`
	Type    string      `mapstructure:"type" validate:"omitempty,oneof=inmemory redis"`
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	UseTLS   bool   `mapstructure:"use_tls"`
	PoolSize int    `mapstructure:"pool_size"`
}

// BillingConfig fixes the civil semantics of renewal dates: renewals land on
// the last day of the target month at RenewalHour in CivilZone.
type BillingConfig struct {
	CivilZone   string `mapstructure:"civil_zone" validate:"required"`
	RenewalHour int    `mapstructure:"renewal_hour" validate:"gte=0,lte=23"`
}

// DuesConfig names the member attributes the dues profile lives under.
type DuesConfig struct {
	AnnualKey    string `mapstructure:"annual_key" validate:"required"`
	QuarterlyKey string `mapstructure:"quarterly_key" validate:"required"`
	BiennialKey  string `mapstructure:"biennial_key" validate:"required"`
}

// PricingConfig carries the static product/variation id -> tier table.
type PricingConfig struct {
	Mapping map[string]string `mapstructure:"mapping"`
}

// NewConfig loads configuration from ./config/config.{yaml,json}, the working
// directory, and RENEWALS_* environment variables, on top of defaults.
func NewConfig() (*Configuration, error) {
	// A missing .env file is fine; env vars may come from the real environment.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("RENEWALS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, ierr.WithError(err).
				WithHint("Configuration file exists but could not be read").
				Mark(ierr.ErrValidation)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Configuration could not be decoded").
			Mark(ierr.ErrValidation)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.type", "inmemory")
	v.SetDefault("billing.civil_zone", "America/New_York")
	v.SetDefault("billing.renewal_hour", 9)
	v.SetDefault("dues.annual_key", "annual_dues")
	v.SetDefault("dues.quarterly_key", "quarterly_dues")
	v.SetDefault("dues.biennial_key", "biennial_dues")
}

// Validate checks field constraints plus the pieces struct tags cannot cover:
// the civil zone must resolve against the zone database and every mapping
// value must be a known dues tier.
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return ierr.WithError(err).
			WithHint("Configuration failed validation").
			Mark(ierr.ErrValidation)
	}

	if err := types.ValidateTimezone(c.Billing.CivilZone); err != nil {
		return err
	}

	for id, tier := range c.Pricing.Mapping {
		if _, err := types.ParseDuesTier(tier); err != nil {
			return ierr.NewErrorf("pricing mapping for %q has invalid tier %q", id, tier).
				WithHint("Mapping values must be one of annual, quarterly, biennial").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// GetDefaultConfig returns a usable in-process configuration for tests and
// scripts that never read files or the environment.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{Level: types.LogLevelInfo},
		Cache:   CacheConfig{Enabled: true, Type: "inmemory"},
		Billing: BillingConfig{CivilZone: "America/New_York", RenewalHour: 9},
		Dues: DuesConfig{
			AnnualKey:    "annual_dues",
			QuarterlyKey: "quarterly_dues",
			BiennialKey:  "biennial_dues",
		},
	}
}
