package exprtree

import (
	"unicode"
)

type Kind int

const (
	Unrecognized Kind = iota
	Literal
	FunctionCall
	Operator
	OpenParen
	CloseParen
)

var kindNames = map[Kind]string{
	Unrecognized: "Unrecognized",
	Literal:      "Literal",
	FunctionCall: "FunctionCall",
	Operator:     "Operator",
	OpenParen:    "OpenParen",
	CloseParen:   "CloseParen",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}

// Token is a classified token. Kind is resolved once by Grammar.Classify;
// everything downstream switches on it.
type Token struct {
	Kind Kind
	Text string
}

func (t Token) String() string {
	return t.Text
}

// IsLeaf reports whether the token becomes a leaf node.
func (t Token) IsLeaf() bool {
	return t.Kind == Literal || t.Kind == FunctionCall
}

// IsIntegerLiteral reports whether s is a non-empty run of decimal digits.
func IsIntegerLiteral(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsFunctionCall reports whether s is a zero-argument call such as
// "func()": an alphanumeric name not starting with a digit, followed by
// exactly one "()".
func IsFunctionCall(s string) bool {
	if len(s) < 3 {
		return false
	}
	if s[len(s)-2:] != "()" {
		return false
	}
	name := s[:len(s)-2]
	for i, r := range name {
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Classify puts s into exactly one Kind.
func (g *Grammar) Classify(s string) Token {
	t := Token{Text: s}
	switch {
	case IsIntegerLiteral(s):
		t.Kind = Literal
	case IsFunctionCall(s):
		t.Kind = FunctionCall
	case s == "(":
		t.Kind = OpenParen
	case s == ")":
		t.Kind = CloseParen
	case g.IsOperator(s):
		t.Kind = Operator
	default:
		t.Kind = Unrecognized
	}
	return t
}

// Tokens classifies every string of ss.
func (g *Grammar) Tokens(ss []string) []Token {
	toks := make([]Token, len(ss))
	for i, s := range ss {
		toks[i] = g.Classify(s)
	}
	return toks
}
