// Package textutil provides text normalization helpers shared by the playlist
// parser, the channel classifier, and the lineup sorter.
//
// The primary use cases are:
//   - Case folding display names for rule matching and sort keys
//   - Upper-casing base names into deduplication keys
//   - Decoding input text leniently so malformed UTF-8 never aborts a run
//
// Case mapping goes through golang.org/x/text/cases with the undetermined
// language tag so results do not depend on the host locale.
package textutil
