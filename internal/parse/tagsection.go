package parse

import (
	"github.com/lgbarn/pgnsyntax/diagnostic"
	"github.com/lgbarn/pgnsyntax/green"
)

// tagSectionState is the running tag-pair builder.
type tagSectionState struct {
	elems               []green.WithTrivia
	hasOpen, hasName, hasValue, hasClose bool
	started             bool
	contentStart, end   int
}

func newTagSectionState() tagSectionState { return tagSectionState{} }

func (p *parser) noteTagContent(start int) {
	if !p.ts.started {
		p.ts.started = true
		p.ts.contentStart = start
	}
}

func (p *parser) appendTagElem(wt green.WithTrivia, start int, term *green.Terminal) {
	p.noteTagContent(start)
	p.ts.elems = append(p.ts.elems, wt)
	p.ts.end = start + term.Length()
}

// handleTagSection processes one foreground terminal while in
// InTagSection mode.
func (p *parser) handleTagSection(wt green.WithTrivia, term *green.Terminal, start int) {
	switch term.Kind {
	case green.BracketOpen:
		if p.ts.started {
			p.closeTagSection()
		}
		p.appendTagElem(wt, start, term)
		p.ts.hasOpen = true

	case green.BracketClose:
		p.appendTagElem(wt, start, term)
		p.ts.hasClose = true
		p.closeTagSection()

	case green.TagValue, green.ErrorTagValue:
		if p.ts.hasValue {
			p.addDiag(diagnostic.MultipleTagValues, start, term.Length())
		}
		p.appendTagElem(wt, start, term)
		p.ts.hasValue = true

	case green.Move:
		if term.IsValidTagName {
			// This symbol is also shaped like a legal tag name: the
			// parser, not the lexer, resolves the ambiguity. Re-emit the
			// same length under the TagName variant and handle it as one.
			reinterpreted := &green.Terminal{Kind: green.TagName, Length_: term.Length()}
			p.handleTagNameElement(green.NewWithTrivia(wt.Leading, reinterpreted), start, reinterpreted)
			return
		}
		p.switchToMoveTree(wt, term, start)

	case green.TagName:
		// Never produced directly by the lexer; reached only via the
		// reinterpretation above.
		p.handleTagNameElement(wt, start, term)

	default:
		// Every other foreground kind (MoveNumber, Period,
		// UnrecognizedMove, any NAG, ParenthesisOpen/Close, any
		// game-result marker) is move-tree-native.
		p.switchToMoveTree(wt, term, start)
	}
}

func (p *parser) handleTagNameElement(wt green.WithTrivia, start int, term *green.Terminal) {
	if p.ts.hasName || p.ts.hasValue {
		p.closeTagSection()
	}
	p.appendTagElem(wt, start, term)
	p.ts.hasName = true
}

// closeTagSection finalizes the running tag pair, reporting its recovery
// diagnostics in priority order, and queues it for attachment to the game
// currently being assembled.
func (p *parser) closeTagSection() {
	if !p.ts.started {
		return
	}
	spanStart, spanLength := p.ts.contentStart, p.ts.end-p.ts.contentStart

	if !p.ts.hasOpen {
		p.addDiag(diagnostic.MissingTagBracketOpen, spanStart, spanLength)
	}
	switch {
	case !p.ts.hasName && !p.ts.hasValue:
		p.addDiag(diagnostic.EmptyTag, spanStart, spanLength)
	case !p.ts.hasName:
		p.addDiag(diagnostic.MissingTagName, spanStart, spanLength)
	case !p.ts.hasValue:
		p.addDiag(diagnostic.MissingTagValue, spanStart, spanLength)
	}
	if !p.ts.hasClose {
		p.addDiag(diagnostic.MissingTagBracketClose, spanStart, spanLength)
	}

	p.pendingTags = append(p.pendingTags, &green.TagPair{Elements: p.ts.elems})
	p.ts = newTagSectionState()
}

// switchToMoveTree closes any in-progress tag pair, publishes the
// accumulated tag section's pairs for the game under construction, and
// re-dispatches term in InMoveTree mode. A ParenthesisClose arriving here
// becomes an orphan, since no variation can possibly be open yet for a
// game whose move tree has not started.
func (p *parser) switchToMoveTree(wt green.WithTrivia, term *green.Terminal, start int) {
	if p.ts.started {
		p.closeTagSection()
	}
	p.mode = modeMoveTree

	if term.Kind == green.ParenthesisClose {
		orphan := &green.Terminal{Kind: green.OrphanParenthesisClose, Length_: term.Length()}
		p.addDiag(diagnostic.OrphanParenthesisClose, start, term.Length())
		root := p.top()
		root.pending.floatBuffer = append(root.pending.floatBuffer, green.NewWithTrivia(wt.Leading, orphan))
		return
	}
	p.handleMoveTree(wt, term, start)
}
