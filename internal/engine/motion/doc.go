// Package motion resolves Vim cursor motions against a buffer.
//
// Execute applies a command to a buffer, moving its cursor and never its
// text. Resolve computes the destination without mutating anything.
//
// After every motion the cursor satisfies the buffer invariant: the line
// exists, and the column is 0 on an empty line or addresses an existing
// rune otherwise. The cursor never rests one past the end of a line.
//
// # Word Motions
//
// The word motions (w, b, e) classify every rune with one shared
// classifier into word (letters, digits, underscore), whitespace, and
// punctuation. A token is a maximal run of word or punctuation runes.
// Line breaks separate tokens: a token never spans two lines, and a scan
// that exhausts one line continues on the next (or previous) line.
//
// When a forward search finds no later token it stops on the last rune of
// the last line; a backward search that finds nothing stops at (0, 0).
package motion
