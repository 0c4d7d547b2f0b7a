package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew_defaults(t *testing.T) {
	viper.Reset()

	c := New()

	if c.SuggestMinRows != DefaultMinRows {
		t.Errorf("SuggestMinRows = %d, want %d", c.SuggestMinRows, DefaultMinRows)
	}
	if c.SuggestMinIdentity != DefaultMinIdentity {
		t.Errorf("SuggestMinIdentity = %f, want %f", c.SuggestMinIdentity, DefaultMinIdentity)
	}
	if c.SuggestMinBitScore != DefaultMinBitScore {
		t.Errorf("SuggestMinBitScore = %f, want %f", c.SuggestMinBitScore, DefaultMinBitScore)
	}
	if c.MinContigLength != DefaultMinContigLength {
		t.Errorf("MinContigLength = %d, want %d", c.MinContigLength, DefaultMinContigLength)
	}
	if c.MinCoverage != DefaultMinCoverage {
		t.Errorf("MinCoverage = %f, want %f", c.MinCoverage, DefaultMinCoverage)
	}
}

func TestNew_overrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("suggest-min-rows", 10)
	viper.Set("suggest-min-bitscore", 300.0)

	c := New()

	if c.SuggestMinRows != 10 {
		t.Errorf("SuggestMinRows = %d, want 10", c.SuggestMinRows)
	}
	if c.SuggestMinBitScore != 300.0 {
		t.Errorf("SuggestMinBitScore = %f, want 300", c.SuggestMinBitScore)
	}
	// untouched settings keep their defaults
	if c.SuggestMinIdentity != DefaultMinIdentity {
		t.Errorf("SuggestMinIdentity = %f, want %f", c.SuggestMinIdentity, DefaultMinIdentity)
	}
}
