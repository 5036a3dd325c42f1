package bench

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/treebench/store/keys"
)

// A Runner walks a Config's experiment matrix, writing one Result per
// tree kind, size and key pattern.
type Runner struct {
	cfg    Config
	out    *Writer
	logger log.Logger

	gen *keys.Generator
	rnd *rand.Rand
}

// NewRunner returns a Runner for cfg writing to out.
func NewRunner(cfg Config, out *Writer) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	return &Runner{
		cfg:    cfg,
		out:    out,
		logger: log.NewNopLogger(),
		gen:    keys.New(rand.NewSource(rnd.Int63())),
		rnd:    rnd,
	}, nil
}

// SetLogger sets the Logger.
func (r *Runner) SetLogger(l log.Logger) {
	r.logger = l
}

// Run performs every run of the matrix in order. The Results written so far
// are returned. A write failure ends the run.
func (r *Runner) Run() ([]Result, error) {
	var results []Result
	for _, k := range r.cfg.Trees {
		r.logger.Info("Measuring tree", "tree", k)
		for _, n := range r.cfg.Sizes {
			if !r.cfg.Runs(k, n) {
				continue
			}
			for _, p := range r.cfg.Patterns {
				res, err := r.run(k, p, n)
				if err != nil {
					return results, err
				}
				r.logger.Info("Inserted keys",
					"tree", k,
					"dataset", res.Dataset,
					"size", n,
					"seconds", FormatSeconds(res.Elapsed, false),
					"rotations", res.Rotations,
				)
				if err := r.out.Write(res); err != nil {
					r.logger.Error("Error writing result", "err", err)
					return results, errors.Wrapf(err, "failed to record %s/%s/%d", k, res.Dataset, n)
				}
				results = append(results, res)
			}
		}
	}
	return results, nil
}

func (r *Runner) run(k Kind, p keys.Pattern, n int) (Result, error) {
	t, err := NewTree(k, rand.NewSource(r.rnd.Int63()))
	if err != nil {
		return Result{}, err
	}
	ks := r.gen.Keys(p, n)
	elapsed := Measure(t, ks)
	return Result{
		Tree:      k,
		Dataset:   p.Label(),
		Size:      n,
		Elapsed:   elapsed,
		Rotations: t.Rotations(),
	}, nil
}
