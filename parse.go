package exprtree

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	ErrEmptyExpression     = errors.New("empty expression")
	ErrMalformedExpression = errors.New("malformed expression")
	ErrDanglingOperands    = errors.New("dangling operands")
	ErrUnbalancedParen     = errors.New("unbalanced parenthesis")
	ErrTruncatedInput      = errors.New("truncated input")
)

// Node is an expression tree node. A leaf has no children; an operator
// node has exactly two, left first.
type Node struct {
	tok      Token
	children []*Node
}

func NewLeaf(tok Token) *Node {
	return &Node{tok: tok}
}

func NewBinary(op Token, left, right *Node) *Node {
	return &Node{
		tok:      op,
		children: []*Node{left, right},
	}
}

func (n *Node) Value() string {
	return n.tok.Text
}

func (n *Node) Kind() Kind {
	return n.tok.Kind
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Children returns a copy of the node's children.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

func (n *Node) Left() *Node {
	if n.IsLeaf() {
		return nil
	}
	return n.children[0]
}

func (n *Node) Right() *Node {
	if n.IsLeaf() {
		return nil
	}
	return n.children[1]
}

// String returns the canonical form, e.g.
//
//	Node(+, [Node(2, []), Node(3, [])])
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	var buf bytes.Buffer
	n.writeTo(&buf)
	return buf.String()
}

func (n *Node) writeTo(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "Node(%s, [", n.tok.Text)
	for i, c := range n.children {
		if i > 0 {
			buf.WriteString(", ")
		}
		c.writeTo(buf)
	}
	buf.WriteString("])")
}

// Tree renders the node as an indented box-drawing tree, one node per
// line.
func (n *Node) Tree() string {
	var buf bytes.Buffer
	n.writeTree(&buf, "", true)
	return buf.String()
}

func (n *Node) writeTree(buf *bytes.Buffer, prefix string, tail bool) {
	buf.WriteString(prefix)
	if tail {
		buf.WriteString("└── ")
	} else {
		buf.WriteString("├── ")
	}
	buf.WriteString(n.tok.Text)
	buf.WriteByte('\n')

	if tail {
		prefix += "    "
	} else {
		prefix += "│   "
	}
	for i, c := range n.children {
		c.writeTree(buf, prefix, i == len(n.children)-1)
	}
}

// Parser runs the whole pipeline: classify, convert, build.
type Parser struct {
	Grammar *Grammar

	// Lenient keeps the first node when building leaves more than one
	// operand on the stack. Otherwise that is ErrDanglingOperands.
	Lenient bool

	// StrictTail turns a truncated scan into ErrTruncatedInput.
	StrictTail bool
}

func NewParser(g *Grammar) *Parser {
	if g == nil {
		g = DefaultGrammar()
	}
	return &Parser{
		Grammar: g,
	}
}

func (p *Parser) grammar() *Grammar {
	if p.Grammar == nil {
		return DefaultGrammar()
	}
	return p.Grammar
}

// Parse classifies ss and builds its tree. A nil node always comes with
// a non-nil error.
func (p *Parser) Parse(ss []string) (*Node, error) {
	node, _, err := p.ParseTokens(p.grammar().Tokens(ss))
	return node, err
}

// ParseTokens builds the tree of pre-classified tokens and also returns
// the intermediate postfix form, which is non-nil whenever conversion
// succeeded.
func (p *Parser) ParseTokens(toks []Token) (*Node, *Postfix, error) {
	pf, err := p.grammar().Postfix(toks)
	if err != nil {
		return nil, nil, err
	}
	if pf.Truncated && p.StrictTail {
		return nil, pf, fmt.Errorf("%w: unrecognized token %q at %d", ErrTruncatedInput, toks[pf.Stop].Text, pf.Stop)
	}
	node, err := p.Build(pf.Tokens)
	if err != nil {
		return nil, pf, err
	}
	return node, pf, nil
}

// Build reduces postfix tokens to a single tree with an operand stack.
func (p *Parser) Build(postfix []Token) (*Node, error) {
	var stack []*Node
	for i, tok := range postfix {
		if tok.IsLeaf() {
			stack = append(stack, NewLeaf(tok))
			continue
		}
		if tok.Kind != Operator {
			return nil, fmt.Errorf("%w: unexpected %v %q at %d", ErrMalformedExpression, tok.Kind, tok.Text, i)
		}
		if len(stack) < 2 {
			return nil, fmt.Errorf("%w: not enough operands for %q at %d", ErrMalformedExpression, tok.Text, i)
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, NewBinary(tok, left, right))
	}

	switch {
	case len(stack) == 0:
		return nil, ErrEmptyExpression
	case len(stack) > 1 && !p.Lenient:
		return nil, fmt.Errorf("%w: %d operands left", ErrDanglingOperands, len(stack))
	}
	return stack[0], nil
}

// Parse runs ss through a strict parser with the default grammar.
func Parse(ss []string) (*Node, error) {
	return NewParser(nil).Parse(ss)
}

// Build runs postfix through a strict parser with the default grammar.
func Build(postfix []Token) (*Node, error) {
	return NewParser(nil).Build(postfix)
}
