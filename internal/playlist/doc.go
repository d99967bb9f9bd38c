// Package playlist reads and writes the extended M3U text format.
//
// Reading is deliberately forgiving: only lines starting with the #EXTINF
// marker produce entries, every other line is skipped, and malformed UTF-8
// is dropped rather than reported. The display name is whatever follows the
// last comma of the metadata line and the locator is the line right after
// it. Writing emits the canonical form consumed by players: an #EXTM3U
// header followed by "#EXTINF:-1,<name>" and locator line pairs.
package playlist
