package exprtree

import (
	"fmt"
	"strings"
)

// Postfix is the output of the shunting-yard conversion.
type Postfix struct {
	Tokens []Token

	// Truncated is set when the scan stopped at an unrecognized token.
	// Tokens then holds the conversion of everything before Stop.
	Truncated bool

	// Stop is the index of the token that ended the scan, or -1.
	Stop int
}

func (p *Postfix) String() string {
	ss := make([]string, len(p.Tokens))
	for i, t := range p.Tokens {
		ss[i] = t.Text
	}
	return strings.Join(ss, " ")
}

// Postfix converts infix tokens to postfix order.
//
// An unrecognized token stops the scan and whatever was read so far is
// converted; the caller sees this through Truncated. Operators of equal
// precedence are reduced left to right.
func (g *Grammar) Postfix(tokens []Token) (*Postfix, error) {
	out := &Postfix{Stop: -1}
	var stack []Token

scan:
	for i, tok := range tokens {
		switch tok.Kind {
		case Literal, FunctionCall:
			out.Tokens = append(out.Tokens, tok)
		case OpenParen:
			stack = append(stack, tok)
		case CloseParen:
			for {
				if len(stack) == 0 {
					return nil, fmt.Errorf("%w: unmatched ')' at token %d", ErrUnbalancedParen, i)
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == OpenParen {
					break
				}
				out.Tokens = append(out.Tokens, top)
			}
		case Operator:
			prec, ok := g.Precedence(tok.Text)
			if !ok {
				// classified against another grammar
				out.Truncated, out.Stop = true, i
				break scan
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == OpenParen {
					break
				}
				if p, _ := g.Precedence(top.Text); p < prec {
					break
				}
				out.Tokens = append(out.Tokens, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			out.Truncated, out.Stop = true, i
			break scan
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == OpenParen {
			return nil, fmt.Errorf("%w: unmatched '('", ErrUnbalancedParen)
		}
		out.Tokens = append(out.Tokens, top)
	}
	return out, nil
}
