package bench

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/treebench/store/keys"
)

var allKinds = []Kind{BST, AVL, VP, Treap, BTree}

func TestParseKind(t *testing.T) {
	for _, k := range allKinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	_, err := ParseKind("SPLAY")
	require.Error(t, err)
	require.Equal(t, ErrUnknownKind, errors.Cause(err))

	got, err := ParseKind("treap")
	require.NoError(t, err)
	require.Equal(t, Treap, got)
}

func TestNewTree(t *testing.T) {
	for _, k := range allKinds {
		tree, err := NewTree(k, rand.NewSource(1))
		require.NoError(t, err, "kind %s", k)
		require.NotNil(t, tree)
		require.Zero(t, tree.Rotations(), "kind %s", k)
	}
	_, err := NewTree(Kind("SPLAY"), nil)
	require.Equal(t, ErrUnknownKind, errors.Cause(err))
}

func TestDuplicateKeepsRotations(t *testing.T) {
	ks := keys.New(rand.NewSource(5)).Keys(keys.Shuffled, 2000)
	for _, k := range allKinds {
		tree, err := NewTree(k, rand.NewSource(1))
		require.NoError(t, err)
		Measure(tree, ks)
		before := tree.Rotations()
		Measure(tree, ks)
		require.Equal(t, before, tree.Rotations(), "kind %s", k)
	}
}

func TestBaselineNeverRotates(t *testing.T) {
	tree, err := NewTree(BST, nil)
	require.NoError(t, err)
	Measure(tree, keys.New(rand.NewSource(1)).Keys(keys.Shuffled, 5000))
	require.Zero(t, tree.Rotations())
}

func TestBTreeReference(t *testing.T) {
	tree := newBTree(DefaultDegree)
	Measure(tree, []int{3, 1, 2, 3, 1})
	require.Equal(t, 3, tree.Len())
	require.Zero(t, tree.Rotations())
}

func TestFormatSeconds(t *testing.T) {
	d := 1234567890 * time.Nanosecond
	require.Equal(t, "1.2346", FormatSeconds(d, false))
	require.Equal(t, "1,2346", FormatSeconds(d, true))
	require.Equal(t, "0,0000", FormatSeconds(0, true))
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(Result{
		Tree:      AVL,
		Dataset:   "C",
		Size:      100000,
		Elapsed:   123456789 * time.Nanosecond,
		Rotations: 69786,
	}))
	require.NoError(t, w.Write(Result{Tree: BST, Dataset: "A", Size: 10000, Elapsed: 2 * time.Second}))
	require.Equal(t,
		"TreeType;Dataset;Size;Time(s);Rotations\n"+
			"AVL;C;100000;0,1235;69786\n"+
			"BST;A;10000;2,0000;0\n",
		buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterFailure(t *testing.T) {
	w := NewWriter(failWriter{}, false)
	err := w.WriteHeader()
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, Kinds, cfg.Trees)
	require.Len(t, cfg.Patterns, 4)

	require.True(t, cfg.Runs(BST, 10000))
	require.True(t, cfg.Runs(BST, 100000))
	require.False(t, cfg.Runs(BST, 250000))
	require.False(t, cfg.Runs(AVL, 75000))
	require.True(t, cfg.Runs(AVL, 100000))
	require.True(t, cfg.Runs(Treap, 5000000))
}

func TestConfigValidate(t *testing.T) {
	for _, test := range []struct {
		name string
		edit func(*Config)
	}{
		{"no sizes", func(c *Config) { c.Sizes = nil }},
		{"bad size", func(c *Config) { c.Sizes = []int{10, 0} }},
		{"no trees", func(c *Config) { c.Trees = nil }},
		{"bad tree", func(c *Config) { c.Trees = []Kind{"SPLAY"} }},
		{"unnormalized tree", func(c *Config) { c.Trees = []Kind{"avl"} }},
		{"no patterns", func(c *Config) { c.Patterns = nil }},
		{"bad pattern", func(c *Config) { c.Patterns = []keys.Pattern{keys.Ascending, keys.Pattern(7)} }},
		{"negative pattern", func(c *Config) { c.Patterns = []keys.Pattern{keys.Pattern(-1)} }},
		{"negative bound", func(c *Config) { c.BalancedMin = -1 }},
	} {
		cfg := DefaultConfig()
		test.edit(&cfg)
		require.Error(t, cfg.Validate(), test.name)
	}
}

func TestRunner(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Sizes:       []int{10, 20},
		Trees:       Kinds,
		Patterns:    keys.Patterns,
		BaselineMax: 10,
		BalancedMin: 20,
		Seed:        1,
	}
	r, err := NewRunner(cfg, NewWriter(&buf, false))
	require.NoError(t, err)
	require.NoError(t, r.out.WriteHeader())

	results, err := r.Run()
	require.NoError(t, err)
	require.Len(t, results, 4+3*4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+len(results))
	require.Equal(t, "TreeType;Dataset;Size;Time(s);Rotations", lines[0])
	for i, res := range results {
		require.True(t, strings.HasPrefix(lines[i+1], string(res.Tree)+";"+res.Dataset+";"), lines[i+1])
		if res.Tree == BST {
			require.Equal(t, 10, res.Size)
			require.Zero(t, res.Rotations)
		} else {
			require.Equal(t, 20, res.Size)
		}
	}
	require.Equal(t, "A", results[0].Dataset)
	require.Equal(t, "D", results[3].Dataset)
}

func TestRunnerRotations(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Sizes:    []int{7},
		Trees:    []Kind{AVL},
		Patterns: []keys.Pattern{keys.Ascending},
		Seed:     1,
	}
	r, err := NewRunner(cfg, NewWriter(&buf, false))
	require.NoError(t, err)
	results, err := r.Run()
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 4, results[0].Rotations)
}

func TestRunnerWriteFailure(t *testing.T) {
	cfg := Config{
		Sizes:    []int{10},
		Trees:    []Kind{AVL, VP},
		Patterns: keys.Patterns,
		Seed:     1,
	}
	r, err := NewRunner(cfg, NewWriter(failWriter{}, false))
	require.NoError(t, err)
	results, err := r.Run()
	require.Error(t, err)
	require.Empty(t, results)
	require.Contains(t, err.Error(), "AVL/A/10")
}

func TestNewRunnerInvalid(t *testing.T) {
	_, err := NewRunner(Config{}, NewWriter(&bytes.Buffer{}, false))
	require.Error(t, err)
}

func TestNewRunnerUnknownPattern(t *testing.T) {
	cfg := Config{
		Sizes:    []int{10},
		Trees:    []Kind{AVL},
		Patterns: []keys.Pattern{keys.Pattern(7)},
		Seed:     1,
	}
	var r *Runner
	require.NotPanics(t, func() {
		var err error
		r, err = NewRunner(cfg, NewWriter(&bytes.Buffer{}, false))
		require.Error(t, err)
	})
	require.Nil(t, r)
}

func BenchmarkMeasure(b *testing.B) {
	ks := keys.New(rand.NewSource(1)).Keys(keys.Shuffled, 100000)
	for _, k := range allKinds {
		b.Run(string(k), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				tree, _ := NewTree(k, rand.NewSource(1))
				Measure(tree, ks)
			}
		})
	}
}
