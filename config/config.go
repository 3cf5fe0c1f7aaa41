// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// MinOffset is the smallest offset accepted for either lane or group spacing
	MinOffset = 0.001

	// MaxOffset is the largest offset accepted for either lane or group spacing
	MaxOffset = 1.0
)

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// Offset is added to an occurrence's lane for each earlier occurrence it overlaps
	Offset float64 `mapstructure:"offset"`

	// OffsetFile is the gap between the top of one group and the baseline of the next
	OffsetFile float64 `mapstructure:"offset-file"`

	// PlotWidth is the width of rendered plots in pixels
	PlotWidth int `mapstructure:"plot-width"`

	// PlotHeight is the height of rendered plots in pixels
	PlotHeight int `mapstructure:"plot-height"`
}

func init() {
	viper.SetDefault("offset", 0.1)
	viper.SetDefault("offset-file", 0.5)
	viper.SetDefault("plot-width", 1024)
	viper.SetDefault("plot-height", 512)

	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".pepoverlay"))
	}

	viper.SetEnvPrefix("PEPOVERLAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// New returns a new Config struct populated by Viper settings
// (the local settings.yaml, environment and/or command line arguments)
func New() *Config {
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatalf("failed to read settings file: %v", err)
		}
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return &c
}

// Validate checks that the offsets are within the accepted range
// and that the plot has a drawable size.
func (c *Config) Validate() error {
	if c.Offset < MinOffset || c.Offset > MaxOffset {
		return fmt.Errorf("offset must be between %v and %v, got %v", MinOffset, MaxOffset, c.Offset)
	}

	if c.OffsetFile < MinOffset || c.OffsetFile > MaxOffset {
		return fmt.Errorf("offset-file must be between %v and %v, got %v", MinOffset, MaxOffset, c.OffsetFile)
	}

	if c.PlotWidth <= 0 || c.PlotHeight <= 0 {
		return fmt.Errorf("plot size must be positive, got %dx%d", c.PlotWidth, c.PlotHeight)
	}

	return nil
}
