package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecord(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	inputs := []*Entry{
		{Input: "2 + 3", Postfix: "2 3 +", Result: "5"},
		{Input: "1 / 0", Postfix: "1 0 /", Result: "division by zero: 1 / 0", Failed: true},
		{Input: "2 * 2", Postfix: "2 2 *", Result: "4", Created: time.Unix(0, 42)},
	}
	for i, e := range inputs {
		id, err := s.Record(ctx, e)
		if err != nil {
			t.Fatal(err)
		}
		if id != int64(i+1) || e.ID != id {
			t.Errorf("want id %d but got %d", i+1, id)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(inputs[1:], got, cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })); diff != "" {
		t.Error(diff)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("want 3 entries but got %d", n)
	}
}

func TestLines(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	l := &Lines{Store: s, Ctx: ctx}

	if l.Len() != 0 {
		t.Fatalf("want empty history but got %d", l.Len())
	}
	if _, err := l.Write("ignored"); err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Errorf("Write must not record, got %d lines", l.Len())
	}

	for _, in := range []string{"1 + 1", "2 + 2"} {
		if _, err := s.Record(ctx, &Entry{Input: in}); err != nil {
			t.Fatal(err)
		}
	}
	if l.Len() != 2 {
		t.Errorf("want 2 lines but got %d", l.Len())
	}
	line, err := l.GetLine(1)
	if err != nil {
		t.Fatal(err)
	}
	if line != "2 + 2" {
		t.Errorf("want %q but got %q", "2 + 2", line)
	}
	if _, err := l.GetLine(5); err == nil {
		t.Error("want error for a missing line")
	}
	if entries, ok := l.Dump().([]*Entry); !ok || len(entries) != 2 {
		t.Errorf("unexpected dump %v", l.Dump())
	}
}
