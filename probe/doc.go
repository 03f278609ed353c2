// Package probe runs dry-run symbol availability checks against a set of
// dynamic libraries described by a TOML plan.
//
// A plan lists libraries and the symbols each is expected to export:
//
//	[[libraries]]
//	path = "libfoo.so"
//	symbols = ["add_ints", "subtract_ints"]
//
//	[[libraries]]
//	path = "<process>"
//	symbols = ["puts"]
//
// The reserved path "<process>" probes the whole-process symbol space.
// Probing never resolves symbols for use; it only reports presence.
package probe
