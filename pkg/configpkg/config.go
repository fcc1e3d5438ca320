// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"
	"fmt"

	"github.com/go-petr/household/pkg/currencypkg"
	"github.com/spf13/viper"
)

// ErrInvalidConfig indicates that a loaded value failed validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment    string `mapstructure:"GO_ENV" validate:"oneof=development production"`
	LogLevel       string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
	ReportCurrency string `mapstructure:"REPORT_CURRENCY" validate:"currency"`
}

// Load reads configuration from app.env in path, overridden by environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("GO_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REPORT_CURRENCY", currencypkg.USD)

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	validate, err := currencypkg.NewValidator()
	if err != nil {
		return c, err
	}

	if err := validate.Struct(c); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return c, nil
}
