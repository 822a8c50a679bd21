// Package config loads the anomaly pipeline profile.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
	"gopkg.in/yaml.v3"
)

// Profile holds the tunable pipeline parameters. NonNegativeColumns keeps the
// defaults when the key is omitted; an explicit null or empty list disables the
// non-negative filter.
type Profile struct {
	Percentile         int      `yaml:"percentile"`
	NonNegativeColumns []string `yaml:"non_negative_columns"`
}

// DefaultProfile returns the built-in pipeline parameters.
func DefaultProfile() Profile {
	return Profile{
		Percentile:         model.DefaultPercentile,
		NonNegativeColumns: model.DefaultNonNegativeColumns(),
	}
}

// LoadProfile reads the YAML profile at path, if any, and applies environment
// overrides. A missing file yields the defaults.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Profile{}, fmt.Errorf("read profile: %w", err)
		default:
			if err := p.decode(data); err != nil {
				return Profile{}, fmt.Errorf("parse profile: %w", err)
			}
		}
	}

	if err := p.loadEnv(); err != nil {
		return Profile{}, err
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (p *Profile) decode(data []byte) error {
	if err := yaml.Unmarshal(data, p); err != nil {
		return err
	}
	if p.NonNegativeColumns != nil {
		return nil
	}
	var keys map[string]yaml.Node
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return err
	}
	if _, ok := keys["non_negative_columns"]; ok {
		p.NonNegativeColumns = []string{}
	}
	return nil
}

func (p *Profile) loadEnv() error {
	if v := os.Getenv("ANOMALY_PERCENTILE"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("ANOMALY_PERCENTILE: %w", err)
		}
		p.Percentile = n
	}
	if v, ok := os.LookupEnv("ANOMALY_NON_NEGATIVE_COLUMNS"); ok {
		cols := make([]string, 0)
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cols = append(cols, c)
			}
		}
		p.NonNegativeColumns = cols
	}
	return nil
}

// Validate checks the percentile range.
func (p Profile) Validate() error {
	if p.Percentile < model.MinPercentile || p.Percentile > model.MaxPercentile {
		return fmt.Errorf("%w: %d not in [%d, %d]", model.ErrInvalidPercentile, p.Percentile, model.MinPercentile, model.MaxPercentile)
	}
	return nil
}
