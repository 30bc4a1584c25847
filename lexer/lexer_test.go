package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "", want: nil},
		{input: "2+3*4", want: []string{"2", "+", "3", "*", "4"}},
		{input: " ( 2 + 3 )*4 ", want: []string{"(", "2", "+", "3", ")", "*", "4"}},
		{input: "func()*5", want: []string{"func()", "*", "5"}},
		{input: "fun()() * 5", want: []string{"fun()()", "*", "5"}},
		{input: "2 + 3 a", want: []string{"2", "+", "3", "a"}},
		{input: "6&3^2", want: []string{"6", "&", "3", "^", "2"}},
		{input: "1 % 2", want: []string{"1", "%", "2"}},
		{input: "f(x)", want: []string{"f", "(", "x", ")"}},
	}
	for _, test := range tests {
		got, err := Split(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: %s", test.input, diff)
		}
	}
}
