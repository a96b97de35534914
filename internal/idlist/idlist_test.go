package idlist

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseSkipsJunk(t *testing.T) {
	input := "12\n\n  34  \nabc\n-5\n7.5\n56\n"
	ids, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := []int{12, 34, 56}
	if len(ids) != len(want) {
		t.Fatalf("got %v want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v want %v", ids, want)
		}
	}
}

func TestFileSourceLoad(t *testing.T) {
	dir := t.TempDir()
	held := filepath.Join(dir, "team_players_id.txt")
	if err := os.WriteFile(held, []byte("1\n2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewFileSource(held, filepath.Join(dir, "missing.txt"), zerolog.Nop())
	set, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("missing unwanted file must not be fatal: %v", err)
	}
	if !set.Contains(1) || !set.Contains(2) || set.Contains(3) {
		t.Fatalf("unexpected set %+v", set)
	}
	if len(set.Unwanted) != 0 {
		t.Fatalf("missing file should yield empty list, got %+v", set.Unwanted)
	}
}
