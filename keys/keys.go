// Package keys generates the integer key sets fed to the trees under test.
package keys

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// A Pattern describes the arrangement of a generated key set.
type Pattern int

const (
	Ascending  Pattern = iota // 1..n in order.
	Descending                // n..1 in order.
	Shuffled                  // A uniform random permutation of 1..n.
	Skewed                    // Mostly 1 with the remainder uniform in [2, n], shuffled.
)

// Patterns lists every Pattern in label order.
var Patterns = []Pattern{Ascending, Descending, Shuffled, Skewed}

// RepeatFraction is the fraction of a Skewed key set that holds the key 1.
const RepeatFraction = 0.9

var (
	labels = []string{Ascending: "A", Descending: "B", Shuffled: "C", Skewed: "D"}
	names  = []string{Ascending: "ascending", Descending: "descending", Shuffled: "shuffled", Skewed: "skewed"}
)

// Valid returns whether p is one of the defined Patterns.
func (p Pattern) Valid() bool {
	return p >= 0 && int(p) < len(labels)
}

// Label returns the single letter data set label of the Pattern.
func (p Pattern) Label() string {
	if !p.Valid() {
		return "?"
	}
	return labels[p]
}

// String returns a string representation of a Pattern.
func (p Pattern) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
	return names[p]
}

// ParsePattern returns the Pattern with the given label or name, ignoring case.
func ParsePattern(s string) (Pattern, error) {
	for _, p := range Patterns {
		if strings.EqualFold(s, p.Label()) || strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, errors.Errorf("keys: unknown pattern %q", s)
}

// A Generator produces key sets. The zero value is not usable; use New.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator drawing random numbers from src.
func New(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Keys returns n keys arranged according to p. A non-positive n returns an
// empty key set.
func (g *Generator) Keys(p Pattern, n int) []int {
	if n <= 0 {
		return []int{}
	}
	switch p {
	case Ascending:
		return span(n)
	case Descending:
		k := span(n)
		reverse(k)
		return k
	case Shuffled:
		k := span(n)
		g.shuffle(k)
		return k
	case Skewed:
		return g.skewed(n)
	}
	panic(fmt.Sprintf("keys: unknown pattern %d", int(p)))
}

func (g *Generator) skewed(n int) []int {
	k := make([]int, n)
	repeated := int(RepeatFraction * float64(n))
	for i := range k {
		if i < repeated || n < 2 {
			k[i] = 1
		} else {
			k[i] = g.rnd.Intn(n-1) + 2
		}
	}
	g.shuffle(k)
	return k
}

// shuffle performs a Fisher-Yates shuffle of k.
func (g *Generator) shuffle(k []int) {
	for i := len(k) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		k[i], k[j] = k[j], k[i]
	}
}

// span returns 1..n.
func span(n int) []int {
	k := make([]int, n)
	for i := range k {
		k[i] = i + 1
	}
	return k
}

func reverse(k []int) {
	for i, j := 0, len(k)-1; i < j; i, j = i+1, j-1 {
		k[i], k[j] = k[j], k[i]
	}
}
