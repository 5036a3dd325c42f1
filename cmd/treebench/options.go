package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/treebench/store/bench"
	"github.com/treebench/store/keys"
)

// options holds the raw command line values that shape a run.
// Empty lists select the default matrix and negative bounds select
// the default size policy.
type options struct {
	sizes    string
	trees    string
	patterns string
	decimal  string
	seed     int64

	baselineMax int
	balancedMin int
}

// config returns the validated bench.Config described by o.
func (o options) config() (bench.Config, error) {
	cfg := bench.DefaultConfig()
	cfg.Seed = o.seed
	if o.sizes != "" {
		cfg.Sizes = nil
		for _, s := range split(o.sizes) {
			n, err := strconv.Atoi(s)
			if err != nil {
				return cfg, errors.Wrapf(err, "invalid size %q", s)
			}
			cfg.Sizes = append(cfg.Sizes, n)
		}
	}
	if o.trees != "" {
		cfg.Trees = nil
		for _, s := range split(o.trees) {
			k, err := bench.ParseKind(s)
			if err != nil {
				return cfg, err
			}
			cfg.Trees = append(cfg.Trees, k)
		}
	}
	if o.patterns != "" {
		cfg.Patterns = nil
		for _, s := range split(o.patterns) {
			p, err := keys.ParsePattern(s)
			if err != nil {
				return cfg, err
			}
			cfg.Patterns = append(cfg.Patterns, p)
		}
	}
	switch strings.ToLower(o.decimal) {
	case "comma":
		cfg.DecimalComma = true
	case "period":
		cfg.DecimalComma = false
	default:
		return cfg, errors.Errorf("invalid decimal separator %q", o.decimal)
	}
	if o.baselineMax >= 0 {
		cfg.BaselineMax = o.baselineMax
	}
	if o.balancedMin >= 0 {
		cfg.BalancedMin = o.balancedMin
	}
	return cfg, cfg.Validate()
}

// outputName returns name, or a timestamped results file name if name is empty.
func outputName(name string, now time.Time) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("results-%s.csv", now.Format("2006-01-02_15-04-05"))
}

func split(s string) []string {
	var f []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			f = append(f, v)
		}
	}
	return f
}
