package lineup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"listone/internal/channels"
	"listone/internal/logging"
	"listone/internal/playlist"
)

func pairs(names ...string) []playlist.Pair {
	out := make([]playlist.Pair, len(names))
	for i, n := range names {
		out[i] = playlist.Pair{DisplayName: n, Locator: "http://example.com/" + n}
	}
	return out
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.DisplayName
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDedupeFirstOccurrenceWins(t *testing.T) {
	entries := []Entry{
		NewEntry(playlist.Pair{DisplayName: "RAI 1 (V)", Locator: "first"}),
		NewEntry(playlist.Pair{DisplayName: "RAI 1 (V) (2)", Locator: "second"}),
		NewEntry(playlist.Pair{DisplayName: "Rai 1", Locator: "third"}),
		NewEntry(playlist.Pair{DisplayName: "Rai 2", Locator: "other"}),
	}

	kept, dups := Dedupe(entries)
	if len(kept) != 2 {
		t.Fatalf("expected 2 kept entries, got %d (%v)", len(kept), names(kept))
	}
	if kept[0].DisplayName != "RAI 1 (V)" || kept[0].Locator != "first" {
		t.Fatalf("expected first occurrence to survive, got %#v", kept[0])
	}
	if len(dups) != 2 {
		t.Fatalf("expected 2 duplicates, got %d", len(dups))
	}
	for _, d := range dups {
		if d.Key != "RAI 1" {
			t.Fatalf("unexpected duplicate key %q", d.Key)
		}
		if d.Kept.Locator != "first" {
			t.Fatalf("duplicate should reference kept entry, got %#v", d.Kept)
		}
	}
}

func TestSortByCategoryThenName(t *testing.T) {
	entries := []Entry{
		NewEntry(playlist.Pair{DisplayName: "Evento Speciale"}),
		NewEntry(playlist.Pair{DisplayName: "DAZN 1"}),
		NewEntry(playlist.Pair{DisplayName: "Sky Calcio 2"}),
		NewEntry(playlist.Pair{DisplayName: "Sky Sport 24"}),
		NewEntry(playlist.Pair{DisplayName: "Sky Cinema Uno"}),
		NewEntry(playlist.Pair{DisplayName: "Sky Uno"}),
		NewEntry(playlist.Pair{DisplayName: "nove"}),
		NewEntry(playlist.Pair{DisplayName: "DMAX"}),
		NewEntry(playlist.Pair{DisplayName: "Rete 4"}),
		NewEntry(playlist.Pair{DisplayName: "Canale 5"}),
		NewEntry(playlist.Pair{DisplayName: "rai 2"}),
		NewEntry(playlist.Pair{DisplayName: "Rai 1"}),
	}

	Sort(entries)

	want := []string{
		"Rai 1", "rai 2",
		"Canale 5", "Rete 4",
		"DMAX", "nove",
		"Sky Uno",
		"Sky Cinema Uno",
		"Sky Sport 24",
		"Sky Calcio 2",
		"DAZN 1",
		"Evento Speciale",
	}
	if got := names(entries); !equalStrings(got, want) {
		t.Fatalf("unexpected order:\n got %v\nwant %v", got, want)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Category.Rank() > entries[i].Category.Rank() {
			t.Fatalf("category order violated at %d: %s before %s", i, entries[i-1].Category, entries[i].Category)
		}
	}
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	entries := []Entry{
		{Category: channels.Events, DisplayName: "Match", Locator: "a"},
		{Category: channels.Events, DisplayName: "match", Locator: "b"},
		{Category: channels.Events, DisplayName: "MATCH", Locator: "c"},
	}
	Sort(entries)
	for i, want := range []string{"a", "b", "c"} {
		if entries[i].Locator != want {
			t.Fatalf("position %d: got locator %q want %q", i, entries[i].Locator, want)
		}
	}
}

func TestAssemble(t *testing.T) {
	l := Assemble(pairs(
		"Local Indie Channel",
		"RAI 1 (V)",
		"Sky Uno",
		"RAI 1 (V) (2)",
		"Rete 4",
		"RAI 1",
	), nil)

	want := []string{"RAI 1 (V)", "Rete 4", "Sky Uno", "Local Indie Channel"}
	if got := names(l.Entries); !equalStrings(got, want) {
		t.Fatalf("unexpected lineup:\n got %v\nwant %v", got, want)
	}
	if l.Entries[0].Locator != "http://example.com/RAI 1 (V)" {
		t.Fatalf("kept entry lost its locator: %q", l.Entries[0].Locator)
	}
	if l.Stats.Parsed != 6 || l.Stats.Kept != 4 || l.Stats.Duplicates != 2 {
		t.Fatalf("unexpected stats: %+v", l.Stats)
	}
	if l.Stats.ByCategory[channels.Rai] != 1 || l.Stats.ByCategory[channels.Events] != 1 {
		t.Fatalf("unexpected category counts: %v", l.Stats.ByCategory)
	}
	if got := l.Pairs(); len(got) != 4 || got[1].DisplayName != "Rete 4" {
		t.Fatalf("unexpected pairs: %#v", got)
	}
}

func TestAssembleEmpty(t *testing.T) {
	l := Assemble(nil, nil)
	if len(l.Entries) != 0 || l.Stats.Kept != 0 || l.Stats.Parsed != 0 {
		t.Fatalf("expected empty lineup, got %+v", l)
	}
}

func TestAssembleLogsDuplicates(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "lineup.log")
	logger, closer, err := logging.New(logging.Options{Level: "debug", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	defer closer.Close()

	Assemble(pairs("RAI 1 (V)", "rai 1 (2)"), logger)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	for _, fragment := range []string{"duplicate channel dropped", "key=\"RAI 1\"", "kept=\"RAI 1 (V)\""} {
		if !strings.Contains(content, fragment) {
			t.Fatalf("expected %q in %q", fragment, content)
		}
	}
}
