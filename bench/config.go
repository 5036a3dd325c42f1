package bench

import (
	"github.com/pkg/errors"

	"github.com/treebench/store/keys"
)

// Config describes a benchmark run.
type Config struct {
	// Sizes are the key set sizes to measure.
	Sizes []int
	// Trees are the tree kinds to measure, in run order.
	Trees []Kind
	// Patterns are the key set patterns measured at each size.
	Patterns []keys.Pattern

	// BaselineMax is the largest size at which the BST baseline is run.
	// Zero means no limit.
	BaselineMax int
	// BalancedMin is the smallest size at which trees other than the
	// baseline are run.
	BalancedMin int

	// Seed seeds key generation and treap priorities. Zero selects a
	// time based seed.
	Seed int64
	// DecimalComma selects a comma as the decimal separator of times.
	DecimalComma bool
}

// DefaultConfig returns the standard experiment matrix.
func DefaultConfig() Config {
	return Config{
		Sizes: []int{
			10000, 25000, 50000, 75000, 100000,
			250000, 500000, 750000, 1000000,
			2000000, 3000000, 4000000, 5000000,
		},
		Trees:        append([]Kind(nil), Kinds...),
		Patterns:     append([]keys.Pattern(nil), keys.Patterns...),
		BaselineMax:  100000,
		BalancedMin:  100000,
		DecimalComma: true,
	}
}

// Validate returns an error if the Config cannot be run.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("bench: no sizes")
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return errors.Errorf("bench: invalid size %d", n)
		}
	}
	if len(c.Trees) == 0 {
		return errors.New("bench: no trees")
	}
	for _, k := range c.Trees {
		if pk, err := ParseKind(string(k)); err != nil {
			return err
		} else if pk != k {
			return errors.Wrapf(ErrUnknownKind, "%q", string(k))
		}
	}
	if len(c.Patterns) == 0 {
		return errors.New("bench: no patterns")
	}
	for _, p := range c.Patterns {
		if !p.Valid() {
			return errors.Errorf("bench: invalid pattern %d", int(p))
		}
	}
	if c.BaselineMax < 0 || c.BalancedMin < 0 {
		return errors.New("bench: negative size bound")
	}
	return nil
}

// Runs returns whether the tree kind k is measured at size n.
func (c Config) Runs(k Kind, n int) bool {
	if k == BST {
		return c.BaselineMax == 0 || n <= c.BaselineMax
	}
	return n >= c.BalancedMin
}
