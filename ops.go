package exprtree

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrUnsupportedOperand = errors.New("unsupported operand")
	ErrUnknownOperator    = errors.New("unknown operator")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrNegativeExponent   = errors.New("negative exponent")
	ErrOutOfRange         = errors.New("value out of range")
)

type Fn func(left, right int64) (int64, error)

// Evaluator reduces trees to integers through its operator table.
type Evaluator struct {
	ops map[string]Fn
}

func NewEvaluator() *Evaluator {
	e := &Evaluator{
		ops: make(map[string]Fn),
	}
	e.ops["+"] = doPlus
	e.ops["-"] = doMinus
	e.ops["*"] = doMul
	e.ops["/"] = doDiv
	e.ops["^"] = doPow
	e.ops["&"] = doAnd
	return e
}

var defaultEvaluator = NewEvaluator()

// Eval evaluates node with the default operator table.
func Eval(node *Node) (int64, error) {
	return defaultEvaluator.Eval(node)
}

// Supports reports whether op can be evaluated.
func (e *Evaluator) Supports(op string) bool {
	_, ok := e.ops[op]
	return ok
}

func (e *Evaluator) Eval(node *Node) (int64, error) {
	if node == nil {
		return 0, ErrEmptyExpression
	}
	if node.IsLeaf() {
		switch node.Kind() {
		case Literal:
			v, err := strconv.ParseInt(node.Value(), 10, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %s", ErrOutOfRange, node.Value())
			}
			return v, nil
		case FunctionCall:
			return 0, fmt.Errorf("%w: function calls are not evaluable: %s", ErrUnsupportedOperand, node.Value())
		}
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedOperand, node.Value())
	}

	fn, ok := e.ops[node.Value()]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownOperator, node.Value())
	}
	lhs, err := e.Eval(node.Left())
	if err != nil {
		return 0, err
	}
	rhs, err := e.Eval(node.Right())
	if err != nil {
		return 0, err
	}
	return fn(lhs, rhs)
}

func overflow(op string, lhs, rhs int64) error {
	return fmt.Errorf("%w: %d %s %d", ErrOutOfRange, lhs, op, rhs)
}

func doPlus(lhs, rhs int64) (int64, error) {
	r := lhs + rhs
	if (r > lhs) != (rhs > 0) {
		return 0, overflow("+", lhs, rhs)
	}
	return r, nil
}

func doMinus(lhs, rhs int64) (int64, error) {
	r := lhs - rhs
	if (r < lhs) != (rhs > 0) {
		return 0, overflow("-", lhs, rhs)
	}
	return r, nil
}

func doMul(lhs, rhs int64) (int64, error) {
	if lhs == 0 || rhs == 0 {
		return 0, nil
	}
	r := lhs * rhs
	if r/rhs != lhs || (lhs == -1 && rhs == math.MinInt64) || (rhs == -1 && lhs == math.MinInt64) {
		return 0, overflow("*", lhs, rhs)
	}
	return r, nil
}

// doDiv floors toward negative infinity.
func doDiv(lhs, rhs int64) (int64, error) {
	if rhs == 0 {
		return 0, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, lhs)
	}
	if lhs == math.MinInt64 && rhs == -1 {
		return 0, overflow("/", lhs, rhs)
	}
	q := lhs / rhs
	if (lhs%rhs != 0) && ((lhs < 0) != (rhs < 0)) {
		q--
	}
	return q, nil
}

func doPow(lhs, rhs int64) (int64, error) {
	if rhs < 0 {
		return 0, fmt.Errorf("%w: %d ^ %d", ErrNegativeExponent, lhs, rhs)
	}
	r := int64(1)
	base := lhs
	for e := rhs; e > 0; e >>= 1 {
		var err error
		if e&1 == 1 {
			if r, err = doMul(r, base); err != nil {
				return 0, overflow("^", lhs, rhs)
			}
		}
		if e > 1 {
			if base, err = doMul(base, base); err != nil {
				return 0, overflow("^", lhs, rhs)
			}
		}
	}
	return r, nil
}

func doAnd(lhs, rhs int64) (int64, error) {
	return lhs & rhs, nil
}
