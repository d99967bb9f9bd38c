// Package lineup turns parsed playlist pairs into the final channel order:
// classified, deduplicated by base name, and sorted by category rank.
package lineup

import (
	"log/slog"
	"sort"

	"listone/internal/channels"
	"listone/internal/logging"
	"listone/internal/playlist"
	"listone/internal/textutil"
)

// Entry is a classified playlist pair.
type Entry struct {
	Category    channels.Category
	DisplayName string
	Locator     string
}

// NewEntry classifies a parsed pair.
func NewEntry(p playlist.Pair) Entry {
	return Entry{
		Category:    channels.Classify(p.DisplayName),
		DisplayName: p.DisplayName,
		Locator:     p.Locator,
	}
}

// Key returns the deduplication key of the entry.
func (e Entry) Key() string {
	return channels.Key(e.DisplayName)
}

// Pair converts the entry back into its serializable form.
func (e Entry) Pair() playlist.Pair {
	return playlist.Pair{DisplayName: e.DisplayName, Locator: e.Locator}
}

// Duplicate records an entry dropped because an earlier entry shared its key.
type Duplicate struct {
	Key     string
	Dropped Entry
	Kept    Entry
}

// Stats summarizes one assembly pass.
type Stats struct {
	Parsed     int
	Kept       int
	Duplicates int
	ByCategory map[channels.Category]int
}

// Lineup is the deduplicated, sorted result of an assembly pass.
type Lineup struct {
	Entries    []Entry
	Duplicates []Duplicate
	Stats      Stats
}

// Pairs returns the entries in their serializable form, preserving order.
func (l Lineup) Pairs() []playlist.Pair {
	pairs := make([]playlist.Pair, len(l.Entries))
	for i, e := range l.Entries {
		pairs[i] = e.Pair()
	}
	return pairs
}

// Assemble classifies pairs, drops later duplicates, and sorts the survivors.
func Assemble(pairs []playlist.Pair, logger *slog.Logger) Lineup {
	if logger == nil {
		logger = logging.NewNop()
	}
	entries := make([]Entry, len(pairs))
	for i, p := range pairs {
		entries[i] = NewEntry(p)
	}

	kept, dups := Dedupe(entries)
	for _, d := range dups {
		logger.Debug("duplicate channel dropped",
			logging.String("key", d.Key),
			logging.String("dropped", d.Dropped.DisplayName),
			logging.String("kept", d.Kept.DisplayName),
		)
	}
	Sort(kept)

	stats := Stats{
		Parsed:     len(pairs),
		Kept:       len(kept),
		Duplicates: len(dups),
		ByCategory: make(map[channels.Category]int, len(channels.Order())),
	}
	for _, e := range kept {
		stats.ByCategory[e.Category]++
	}
	return Lineup{Entries: kept, Duplicates: dups, Stats: stats}
}

// Dedupe keeps the first entry seen for every key and reports the rest. A
// later entry is dropped even when its name carries more detail.
func Dedupe(entries []Entry) ([]Entry, []Duplicate) {
	seen := make(map[string]int, len(entries))
	kept := make([]Entry, 0, len(entries))
	var dups []Duplicate
	for _, e := range entries {
		key := e.Key()
		if idx, ok := seen[key]; ok {
			dups = append(dups, Duplicate{Key: key, Dropped: e, Kept: kept[idx]})
			continue
		}
		seen[key] = len(kept)
		kept = append(kept, e)
	}
	return kept, dups
}

// Sort orders entries by category rank and then by lowercased display name.
// Entries equal on both keys keep their relative order.
func Sort(entries []Entry) {
	type keyed struct {
		entry Entry
		rank  int
		name  string
	}
	items := make([]keyed, len(entries))
	for i, e := range entries {
		items[i] = keyed{entry: e, rank: e.Category.Rank(), name: textutil.Lower(e.DisplayName)}
	}
	sort.SliceStable(items, func(a, b int) bool {
		if items[a].rank != items[b].rank {
			return items[a].rank < items[b].rank
		}
		return items[a].name < items[b].name
	})
	for i := range items {
		entries[i] = items[i].entry
	}
}
