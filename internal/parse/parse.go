// Package parse implements the two-mode PGN parser: a single pass over a
// lex.Lexer's token stream that assembles a green.GameList, recovering
// from malformed input by reclassifying or demoting tokens and never
// discarding one.
package parse

import (
	"sort"

	"github.com/lgbarn/pgnsyntax/diagnostic"
	"github.com/lgbarn/pgnsyntax/green"
	"github.com/lgbarn/pgnsyntax/internal/lex"
)

// Parse scans and parses an entire PGN source in one pass.
func Parse(source string) (*green.GameList, []diagnostic.Diagnostic) {
	p := &parser{lx: lex.New(source)}
	p.run()
	diags := append(append([]diagnostic.Diagnostic{}, p.lx.Diagnostics()...), p.diags...)
	sort.SliceStable(diags, func(i, j int) bool { return diags[i].Start < diags[j].Start })
	return p.gameList, diags
}

type mode int

const (
	modeTagSection mode = iota
	modeMoveTree
)

type parser struct {
	lx     *lex.Lexer
	diags  []diagnostic.Diagnostic
	offset int // absolute offset of everything consumed from lx so far

	mode mode
	ts   tagSectionState
	mt   moveTreeState

	pendingTags []*green.TagPair
	games       []*green.Game
	gameList    *green.GameList
}

func (p *parser) addDiag(code diagnostic.Code, start, length int, params ...string) {
	p.diags = append(p.diags, diagnostic.New(code, start, length, params...))
}

// next pulls the next foreground terminal from the lexer, tracking
// absolute offsets as it goes.
func (p *parser) next() (trivia green.Trivia, term *green.Terminal, start int, ok bool) {
	trivia, term, ok = p.lx.Next()
	if !ok {
		return trivia, term, p.offset, false
	}
	start = p.offset + trivia.Length()
	p.offset = start + term.Length()
	return trivia, term, start, true
}

func (p *parser) run() {
	p.ts = newTagSectionState()
	p.mt = newMoveTreeState()

	for {
		trivia, term, start, ok := p.next()
		if !ok {
			break
		}
		p.dispatch(trivia, term, start)
	}
	p.finish()
}

func (p *parser) dispatch(trivia green.Trivia, term *green.Terminal, start int) {
	wt := green.NewWithTrivia(trivia, term)
	switch p.mode {
	case modeTagSection:
		p.handleTagSection(wt, term, start)
	case modeMoveTree:
		p.handleMoveTree(wt, term, start)
	}
}

// finish flushes whatever is still open once the token stream is
// exhausted: an in-progress tag section, or an in-progress game.
func (p *parser) finish() {
	switch p.mode {
	case modeTagSection:
		if p.ts.started {
			p.closeTagSection()
		}
	case modeMoveTree:
		p.closeGameAtEOF()
	}
	p.gameList = &green.GameList{Games: p.games, Trailing: p.lx.TrailingTrivia()}
}
