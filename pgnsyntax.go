// Package pgnsyntax parses PGN (Portable Game Notation) chess game
// collections into a lossless syntax tree: every byte of the source is
// represented somewhere in the tree, and diagnostics describe anomalies
// without ever aborting the parse.
//
// The tree comes in two layers. Package green holds the immutable,
// position-free representation the parser builds directly. Package red
// wraps it in a lazy, parent-linked overlay that computes absolute source
// offsets on demand, safe to navigate concurrently from multiple
// goroutines once built.
package pgnsyntax

import (
	"github.com/lgbarn/pgnsyntax/diagnostic"
	"github.com/lgbarn/pgnsyntax/internal/parse"
	"github.com/lgbarn/pgnsyntax/red"
)

// Parse scans and parses source in a single pass, never returning a Go
// error: malformed input is reported through the returned diagnostics
// instead. The returned *red.Node is the root of the game list; its
// children are the individual games in source order, plus any trailing
// trivia belonging to no game.
func Parse(source string) (*red.Node, []diagnostic.Diagnostic) {
	gameList, diags := parse.Parse(source)
	return red.New(gameList), diags
}
