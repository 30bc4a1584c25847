// Package lexer splits a line of infix source into the token strings the
// exprtree parser consumes.
package lexer

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Def matches calls (with any number of trailing "()" so that a malformed
// call stays one token), integers, words, operator characters and
// parentheses. Anything else becomes a single character token.
var Def = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Call", Pattern: `[A-Za-z0-9_]+(\(\))+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Word", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Op", Pattern: `[-+*/^&]`},
	{Name: "Paren", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Other", Pattern: `[^ \t\r\n]`},
})

var whitespace = Def.Symbols()["Whitespace"]

// Split returns the tokens of s in order.
func Split(s string) ([]string, error) {
	lex, err := Def.LexString("", s)
	if err != nil {
		return nil, err
	}
	var out []string
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			return out, nil
		}
		if tok.Type == whitespace {
			continue
		}
		out = append(out, tok.Value)
	}
}
