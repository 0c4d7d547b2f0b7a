// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Default thresholds, overridable from the command line.
const (
	// DefaultMinRows is the minimum number of hits supporting a
	// genotype before it is auto-suggested
	DefaultMinRows = 20

	// DefaultMinIdentity is the minimum max %-identity for auto-suggestion
	DefaultMinIdentity = 90.0

	// DefaultMinBitScore is the minimum max bit score for auto-suggestion
	DefaultMinBitScore = 400.0

	// DefaultMinContigLength is the minimum contig length (bp) for the
	// quality filter
	DefaultMinContigLength = 200

	// DefaultMinCoverage is the minimum contig coverage (x) for the
	// quality filter
	DefaultMinCoverage = 50.0
)

// Config is the root-level settings struct, a mix of defaults and
// command line arguments bound through Viper.
type Config struct {
	// minimum hits supporting the top genotype for auto-suggestion
	SuggestMinRows int `mapstructure:"suggest-min-rows"`

	// minimum max percent identity for auto-suggestion
	SuggestMinIdentity float64 `mapstructure:"suggest-min-identity"`

	// minimum max bit score for auto-suggestion
	SuggestMinBitScore float64 `mapstructure:"suggest-min-bitscore"`

	// contigs at or below this length are dropped by the quality filter
	MinContigLength int `mapstructure:"min-length"`

	// contigs at or below this coverage are dropped by the quality filter
	MinCoverage float64 `mapstructure:"min-coverage"`
}

// New returns a new Config struct populated by Viper settings
// and/or command line arguments.
func New() *Config {
	viper.SetDefault("suggest-min-rows", DefaultMinRows)
	viper.SetDefault("suggest-min-identity", DefaultMinIdentity)
	viper.SetDefault("suggest-min-bitscore", DefaultMinBitScore)
	viper.SetDefault("min-length", DefaultMinContigLength)
	viper.SetDefault("min-coverage", DefaultMinCoverage)

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
