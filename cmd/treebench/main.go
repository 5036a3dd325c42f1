// treebench measures key insertion into unbalanced, AVL, left-leaning
// red-black and treap trees and writes the timings and rotation counts to a
// semicolon separated results file.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/libs/log"
	tmos "github.com/tendermint/tendermint/libs/os"

	"github.com/treebench/store/bench"
)

var (
	sizes    = flag.String("sizes", "", "Comma separated key set sizes (default: standard matrix).")
	trees    = flag.String("trees", "", "Comma separated tree kinds: BST, AVL, VP, TREAP, BTREE (default: all but BTREE).")
	patterns = flag.String("patterns", "", "Comma separated key patterns: A, B, C, D (default: all).")
	out      = flag.String("out", "", "Results file (default: results-<timestamp>.csv).")
	seed     = flag.Int64("seed", 0, "Seed for key generation and treap priorities (0: time based).")
	decimal  = flag.String("decimal", "comma", "Decimal separator for times: comma or period.")
	baseMax  = flag.Int("baseline-max", -1, "Largest size for the BST baseline (default: matrix policy, 0: no limit).")
	balMin   = flag.Int("balanced-min", -1, "Smallest size for balanced trees (default: matrix policy).")
	logLevel = flag.String("log_level", "info", "Log level: debug, info, error or none.")
)

func main() {
	flag.Parse()

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	opt, err := log.AllowLevel(*logLevel)
	if err != nil {
		tmos.Exit(err.Error())
	}
	logger = log.NewFilter(logger, opt).With("module", "treebench")

	cfg, err := options{
		sizes:       *sizes,
		trees:       *trees,
		patterns:    *patterns,
		decimal:     *decimal,
		seed:        *seed,
		baselineMax: *baseMax,
		balancedMin: *balMin,
	}.config()
	if err != nil {
		tmos.Exit(err.Error())
	}

	name := outputName(*out, time.Now())
	f, err := os.Create(name)
	if err != nil {
		tmos.Exit(fmt.Sprintf("Error writing to file: %v", err))
	}

	err = run(cfg, f, logger)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "failed to close results file")
	}
	if err != nil {
		tmos.Exit(fmt.Sprintf("Error writing to file: %v", err))
	}
	logger.Info("Finished", "results", name)
}

func run(cfg bench.Config, f *os.File, logger log.Logger) error {
	w := bench.NewWriter(f, cfg.DecimalComma)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	r, err := bench.NewRunner(cfg, w)
	if err != nil {
		return err
	}
	r.SetLogger(logger)
	_, err = r.Run()
	return err
}
