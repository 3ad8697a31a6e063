package parse

import (
	"github.com/lgbarn/pgnsyntax/diagnostic"
	"github.com/lgbarn/pgnsyntax/green"
)

// pendingPly is the ply currently being assembled within one variation
// frame: an optional move-number slot, an optional move slot, the NAGs and
// variations seen so far, and the float items (stray periods, orphan
// closing parens) waiting to be attached to whichever slot closes next.
type pendingPly struct {
	active bool

	hasMoveNumber bool
	moveNumber    green.PlySlot
	hasMove       bool
	move          green.PlySlot
	nags          []green.PlySlot
	variations    []green.PlySlot

	floatBuffer []green.WithTrivia

	// sawMoveNumberSeparator marks that the one period expected between a
	// move number and its move ("1." before "e4") has already been
	// consumed. Any further period before the move arrives is a stray
	// orphan, not a repeat of the expected separator: "1..." has three
	// periods, but only the first is the separator.
	sawMoveNumberSeparator bool

	hasContentStart bool
	contentStart    int
	end             int
}

func (pp *pendingPly) noteContent(start int) {
	if !pp.hasContentStart {
		pp.hasContentStart = true
		pp.contentStart = start
	}
}

func (pp *pendingPly) drainFloats() []green.WithTrivia {
	b := pp.floatBuffer
	pp.floatBuffer = nil
	return b
}

// plyFrame is one entry of the variation stack; stack[0] is the game's
// top-level ply list and has hasOpen == false.
type plyFrame struct {
	open      green.WithTrivia
	openStart int
	hasOpen   bool

	pending pendingPly
	plies   []*green.Ply

	// hasFirstContent/firstContentStart record the absolute offset of this
	// frame's very first content token, surviving across ply closures
	// (unlike pendingPly.contentStart, which resets every ply). closeGame
	// needs this to place MissingTagSection correctly when the game's ply
	// list already has closed plies.
	hasFirstContent   bool
	firstContentStart int

	// reportedMissingMoveNumber marks that this frame has already flagged
	// one ply for lacking a move number. Only the first such ply in a
	// frame is reported: e.g. in "1. e4 e5 2. Nf3 Nc6", both "e5" and
	// "Nc6" lack a move number, but only "e5" is flagged.
	reportedMissingMoveNumber bool
}

func (f *plyFrame) noteFrameStart(start int) {
	if !f.hasFirstContent {
		f.hasFirstContent = true
		f.firstContentStart = start
	}
}

type moveTreeState struct {
	stack []*plyFrame
}

func newMoveTreeState() moveTreeState {
	return moveTreeState{stack: []*plyFrame{{}}}
}

func (p *parser) top() *plyFrame { return p.mt.stack[len(p.mt.stack)-1] }

// closePendingPly finalizes f's pending ply, if it has any content,
// reporting MissingMoveNumber (once per frame, on the first ply that
// actually lacks one) and MissingMove (on every ply that lacks a move).
// The float buffer carries over unclosed to the next ply.
func (p *parser) closePendingPly(f *plyFrame) {
	pp := &f.pending
	if !pp.active {
		return
	}
	ply := &green.Ply{
		MoveNumber: pp.moveNumber,
		Move:       pp.move,
		Nags:       pp.nags,
		Variations: pp.variations,
	}
	spanLength := pp.end - pp.contentStart
	if !pp.hasMoveNumber && !f.reportedMissingMoveNumber {
		p.addDiag(diagnostic.MissingMoveNumber, pp.contentStart, spanLength)
		f.reportedMissingMoveNumber = true
	}
	if !pp.hasMove {
		p.addDiag(diagnostic.MissingMove, pp.contentStart, spanLength)
	}
	f.plies = append(f.plies, ply)
	f.pending = pendingPly{floatBuffer: pp.floatBuffer}
}

func (p *parser) handleMoveTree(wt green.WithTrivia, term *green.Terminal, start int) {
	switch term.Kind {
	case green.MoveNumber:
		p.handleMoveNumber(wt, term, start)
	case green.Period:
		p.handlePeriod(wt, term, start)
	case green.Move, green.UnrecognizedMove:
		p.handleMove(wt, term, start)
	case green.Nag, green.EmptyNag, green.OverflowNag:
		p.handleNag(wt, term, start)
	case green.ParenthesisOpen:
		p.handleParenOpen(wt, start)
	case green.ParenthesisClose:
		p.handleParenClose(wt, term, start)
	case green.BracketOpen, green.BracketClose, green.TagValue, green.ErrorTagValue, green.TagName:
		p.switchToTagSection(wt, term, start)
	case green.Asterisk, green.DrawMarker, green.WhiteWinMarker, green.BlackWinMarker:
		p.handleResultMarker(wt, term, start)
	default:
		panic("parse: unreachable foreground kind in move-tree mode")
	}
}

func (p *parser) handleMoveNumber(wt green.WithTrivia, term *green.Terminal, start int) {
	f := p.top()
	p.closePendingPly(f)
	pp := &f.pending
	pp.active = true
	pp.noteContent(start)
	f.noteFrameStart(start)
	pp.moveNumber = green.PlySlot{Float: pp.drainFloats(), Value: wt}
	pp.hasMoveNumber = true
	pp.end = start + term.Length()
}

func (p *parser) handlePeriod(wt green.WithTrivia, term *green.Terminal, start int) {
	f := p.top()
	pp := &f.pending
	expected := pp.hasMoveNumber && !pp.hasMove && !pp.sawMoveNumberSeparator
	pp.floatBuffer = append(pp.floatBuffer, wt)
	f.noteFrameStart(start)
	if expected {
		pp.sawMoveNumberSeparator = true
	} else {
		p.addDiag(diagnostic.OrphanPeriod, start, term.Length())
	}
}

func (p *parser) handleMove(wt green.WithTrivia, term *green.Terminal, start int) {
	f := p.top()
	pp := &f.pending
	if pp.hasMove || len(pp.nags) > 0 || len(pp.variations) > 0 {
		p.closePendingPly(f)
		pp = &f.pending
	}
	pp.active = true
	pp.noteContent(start)
	f.noteFrameStart(start)
	pp.move = green.PlySlot{Float: pp.drainFloats(), Value: wt}
	pp.hasMove = true
	pp.end = start + term.Length()
}

func (p *parser) handleNag(wt green.WithTrivia, term *green.Terminal, start int) {
	f := p.top()
	pp := &f.pending
	if len(pp.variations) > 0 {
		p.closePendingPly(f)
		pp = &f.pending
	}
	pp.active = true
	pp.noteContent(start)
	f.noteFrameStart(start)
	pp.nags = append(pp.nags, green.PlySlot{Float: pp.drainFloats(), Value: wt})
	pp.end = start + term.Length()
}

func (p *parser) handleParenOpen(wt green.WithTrivia, start int) {
	p.mt.stack = append(p.mt.stack, &plyFrame{open: wt, openStart: start, hasOpen: true})
}

func (p *parser) handleParenClose(wt green.WithTrivia, term *green.Terminal, start int) {
	if len(p.mt.stack) <= 1 {
		orphan := &green.Terminal{Kind: green.OrphanParenthesisClose, Length_: term.Length()}
		p.addDiag(diagnostic.OrphanParenthesisClose, start, term.Length())
		root := p.top()
		root.pending.floatBuffer = append(root.pending.floatBuffer, green.NewWithTrivia(wt.Leading, orphan))
		return
	}

	child := p.mt.stack[len(p.mt.stack)-1]
	p.mt.stack = p.mt.stack[:len(p.mt.stack)-1]
	p.closePendingPly(child)
	if len(child.plies) == 0 {
		p.addDiag(diagnostic.EmptyVariation, start, term.Length())
	}

	closeWT := wt
	variation := &green.Variation{
		Open:  child.open,
		Plies: &green.PlyList{Plies: child.plies, Trailing: child.pending.floatBuffer},
		Close: &closeWT,
	}
	p.attachVariation(child.openStart, variation, start+term.Length())
}

func (p *parser) attachVariation(contentStart int, variation *green.Variation, end int) {
	parent := p.top()
	pp := &parent.pending
	pp.active = true
	pp.noteContent(contentStart)
	parent.noteFrameStart(contentStart)
	pp.variations = append(pp.variations, green.PlySlot{Float: pp.drainFloats(), Value: variation})
	pp.end = end
}

// flushVariations pops every open variation frame, attaching each as an
// unclosed Variation (Close == nil) to its parent, reporting
// MissingParenthesisClose once on the innermost one.
func (p *parser) flushVariations() {
	if len(p.mt.stack) <= 1 {
		return
	}
	reportedMissingClose := false
	for len(p.mt.stack) > 1 {
		child := p.mt.stack[len(p.mt.stack)-1]
		p.mt.stack = p.mt.stack[:len(p.mt.stack)-1]
		p.closePendingPly(child)

		if !reportedMissingClose {
			p.addDiag(diagnostic.MissingParenthesisClose, child.openStart, child.open.Content.Length())
			reportedMissingClose = true
		}
		if len(child.plies) == 0 {
			p.addDiag(diagnostic.EmptyVariation, child.openStart, child.open.Content.Length())
		}

		variation := &green.Variation{
			Open:  child.open,
			Plies: &green.PlyList{Plies: child.plies, Trailing: child.pending.floatBuffer},
			Close: nil,
		}
		p.attachVariation(child.openStart, variation, child.openStart+child.open.Content.Length())
	}
}

// closeGame finalizes the root frame's ply list and the queued tag pairs
// into a *green.Game.
func (p *parser) closeGame(result *green.WithTrivia) {
	root := p.mt.stack[0]
	p.closePendingPly(root)
	plyList := &green.PlyList{Plies: root.plies, Trailing: root.pending.floatBuffer}

	if len(p.pendingTags) == 0 {
		start := p.offset
		if root.hasFirstContent {
			start = root.firstContentStart
		}
		p.addDiag(diagnostic.MissingTagSection, start, 0)
	}

	p.games = append(p.games, &green.Game{Tags: p.pendingTags, Plies: plyList, Result: result})
	p.pendingTags = nil
	p.mt = newMoveTreeState()
}

func (p *parser) handleResultMarker(wt green.WithTrivia, _ *green.Terminal, start int) {
	p.flushVariations()
	result := wt
	p.closeGame(&result)
	p.mode = modeTagSection
}

// switchToTagSection flushes any open variations, publishes the current
// game, and re-dispatches term in tag-section mode.
func (p *parser) switchToTagSection(wt green.WithTrivia, term *green.Terminal, start int) {
	p.flushVariations()
	p.closeGame(nil)
	p.mode = modeTagSection
	p.handleTagSection(wt, term, start)
}

func (p *parser) closeGameAtEOF() {
	p.flushVariations()
	root := p.mt.stack[0]
	hasContent := len(p.pendingTags) > 0 || len(root.plies) > 0 || root.pending.active || len(root.pending.floatBuffer) > 0
	if !hasContent {
		return
	}
	p.addDiag(diagnostic.MissingGameTerminationMarker, p.offset, 0)
	p.closeGame(nil)
}
