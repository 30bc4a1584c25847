package exprtree

import (
	"sort"
)

// Grammar owns the operator precedence table used by the converter.
// Higher levels bind tighter. A Grammar is never mutated after NewGrammar
// returns, so one value may be shared between goroutines.
type Grammar struct {
	prec map[string]int
}

type Option func(*Grammar)

// WithOperator adds op to the grammar with the given precedence level, or
// changes the level of an existing operator.
func WithOperator(op string, prec int) Option {
	return func(g *Grammar) {
		g.prec[op] = prec
	}
}

// NewGrammar returns the default table with opts applied on top.
func NewGrammar(opts ...Option) *Grammar {
	g := &Grammar{
		prec: map[string]int{
			"*": 3,
			"/": 3,
			"+": 2,
			"-": 2,
			"&": 1,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGrammar = NewGrammar()

// DefaultGrammar returns the shared default grammar.
func DefaultGrammar() *Grammar {
	return defaultGrammar
}

func (g *Grammar) IsOperator(op string) bool {
	_, ok := g.prec[op]
	return ok
}

func (g *Grammar) Precedence(op string) (int, bool) {
	p, ok := g.prec[op]
	return p, ok
}

// Operators returns the operator symbols sorted by descending precedence.
func (g *Grammar) Operators() []string {
	ops := make([]string, 0, len(g.prec))
	for op := range g.prec {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		if g.prec[ops[i]] != g.prec[ops[j]] {
			return g.prec[ops[i]] > g.prec[ops[j]]
		}
		return ops[i] < ops[j]
	})
	return ops
}
