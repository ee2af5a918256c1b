package pricetracker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables the tracker consumes. Zero values mean "use the
// default"; call Normalize (done by LoadConfig and NewStore) before use.
type Config struct {
	// DefaultCurrency is applied to records entered without a currency code.
	DefaultCurrency string `yaml:"default_currency"`
	// DefaultUnit is applied to records entered without a unit.
	DefaultUnit string `yaml:"default_unit"`

	// AlertThreshold is the minimum absolute price change, in percent,
	// for a change to surface as an alert.
	AlertThreshold float64 `yaml:"alert_threshold"`
	// MaxAlerts caps how many alerts the presentation layer shows.
	MaxAlerts int `yaml:"max_alerts"`

	// BackupRetention is how many backup copies to keep; older ones are
	// deleted on rotation.
	BackupRetention int `yaml:"backup_retention"`
	// BackupDir overrides where backups are written. Empty means a
	// "backups" directory next to the store file.
	BackupDir string `yaml:"backup_dir"`

	// MaxFutureDays is how far ahead of today an observation date may lie.
	MaxFutureDays int `yaml:"max_future_days"`

	MinPrice          float64 `yaml:"min_price"`
	MaxPrice          float64 `yaml:"max_price"`
	MaxItemLength     int     `yaml:"max_item_length"`
	MaxLocationLength int     `yaml:"max_location_length"`
}

// DefaultConfig returns the stock configuration for a Gambian market survey.
func DefaultConfig() Config {
	return Config{
		DefaultCurrency:   "GMD",
		DefaultUnit:       "piece",
		AlertThreshold:    15.0,
		MaxAlerts:         5,
		BackupRetention:   10,
		MaxFutureDays:     1,
		MinPrice:          0.01,
		MaxPrice:          10000,
		MaxItemLength:     100,
		MaxLocationLength: 50,
	}
}

// Normalize fills zero fields with their defaults and returns the result.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.DefaultCurrency == "" {
		c.DefaultCurrency = def.DefaultCurrency
	}
	if c.DefaultUnit == "" {
		c.DefaultUnit = def.DefaultUnit
	}
	if c.AlertThreshold == 0 {
		c.AlertThreshold = def.AlertThreshold
	}
	if c.MaxAlerts == 0 {
		c.MaxAlerts = def.MaxAlerts
	}
	if c.BackupRetention == 0 {
		c.BackupRetention = def.BackupRetention
	}
	if c.MaxFutureDays == 0 {
		c.MaxFutureDays = def.MaxFutureDays
	}
	if c.MinPrice == 0 {
		c.MinPrice = def.MinPrice
	}
	if c.MaxPrice == 0 {
		c.MaxPrice = def.MaxPrice
	}
	if c.MaxItemLength == 0 {
		c.MaxItemLength = def.MaxItemLength
	}
	if c.MaxLocationLength == 0 {
		c.MaxLocationLength = def.MaxLocationLength
	}
	return c
}

// LoadConfig reads the tracker configuration from a YAML file. A missing file
// is not an error: the defaults apply.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	return c.Normalize(), nil
}
