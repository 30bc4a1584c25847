package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mattn/exprtree"
	"github.com/mattn/exprtree/history"
)

func testApp(out io.Writer) *app {
	return &app{
		parser: exprtree.NewParser(nil),
		eval:   exprtree.NewEvaluator(),
		out:    out,
		logger: log.New(io.Discard, "", 0),
	}
}

func TestBatch(t *testing.T) {
	var buf bytes.Buffer
	a := testApp(&buf)
	a.postfix = true
	input := "# comment\n2+3*4\n\nfunc()*5\n2 + * 3\n"
	if status := a.batch(context.Background(), strings.NewReader(input)); status != 1 {
		t.Errorf("want status 1 but got %d", status)
	}
	want := "" +
		"postfix: 2 3 4 * +\n" +
		"Node(+, [Node(2, []), Node(*, [Node(3, []), Node(4, [])])])\n" +
		"= 14\n" +
		"postfix: func() 5 *\n" +
		"Node(*, [Node(func(), []), Node(5, [])])\n" +
		"error: unsupported operand: function calls are not evaluable: func()\n" +
		"postfix: 2 3 * +\n" +
		"error: malformed expression: not enough operands for \"+\" at 3\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Error(diff)
	}
}

func TestRunTree(t *testing.T) {
	var buf bytes.Buffer
	a := testApp(&buf)
	a.tree = true
	if err := a.run(context.Background(), "(2+3)*4"); err != nil {
		t.Fatal(err)
	}
	want := "" +
		"└── *\n" +
		"    ├── +\n" +
		"    │   ├── 2\n" +
		"    │   └── 3\n" +
		"    └── 4\n" +
		"= 20\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Error(diff)
	}
}

func TestRunHistory(t *testing.T) {
	ctx := context.Background()
	store, err := history.Open(ctx, filepath.Join(t.TempDir(), "h.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var buf bytes.Buffer
	a := testApp(&buf)
	a.store = store
	a.run(ctx, "6 & 3")
	a.run(ctx, "1 / 0")
	a.run(ctx, "2 + 3 )")

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	type row struct {
		Input, Postfix, Result string
		Failed                 bool
	}
	var got []row
	for _, e := range entries {
		got = append(got, row{e.Input, e.Postfix, e.Result, e.Failed})
	}
	want := []row{
		{"6 & 3", "6 3 &", "2", false},
		{"1 / 0", "1 0 /", "division by zero: 1 / 0", true},
		{"2 + 3 )", "", "unbalanced parenthesis: unmatched ')' at token 3", true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestRunExamples(t *testing.T) {
	var buf bytes.Buffer
	a := testApp(&buf)
	if err := a.runExamples(context.Background()); err != nil {
		t.Fatalf("%v\n%s", err, buf.String())
	}
	if !strings.Contains(buf.String(), "# precedence: ") {
		t.Errorf("precedence example missing from output:\n%s", buf.String())
	}
}
