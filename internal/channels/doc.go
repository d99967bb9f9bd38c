// Package channels classifies playlist display names into the fixed set of
// channel categories and derives the canonical base name used to collapse
// duplicate entries.
//
// Classification walks an ordered rule ladder and the first matching rule
// wins; the ladder ends with a catch-all so every name gets exactly one
// category. The same ordered list that enumerates categories also defines
// their sort rank, keeping "how a channel is tagged" and "where it sorts"
// in one place.
package channels
