// Package lex implements the PGN lexer: a single pass over the source
// that drives internal/classify and internal/automaton, routes runs to
// the matching sub-lexer (string literal, comments, escape line, NAG),
// and hands the parser a stream of foreground green terminals, each
// paired with the trivia that preceded it.
package lex

import (
	"github.com/lgbarn/pgnsyntax/diagnostic"
	"github.com/lgbarn/pgnsyntax/green"
	"github.com/lgbarn/pgnsyntax/internal/automaton"
	"github.com/lgbarn/pgnsyntax/internal/classify"
)

// Lexer scans one source string once. It is not safe for concurrent use
// and not reusable after it reaches EOF.
type Lexer struct {
	src string
	pos int

	interner *green.Interner
	diags    []diagnostic.Diagnostic

	// background accumulates background-only terminals since the last
	// comment or foreground token.
	background []*green.Terminal
	// elements accumulates comment-with-preceding-background elements
	// since the last foreground token.
	elements []green.TriviaElement
}

// New returns a Lexer over source, ready to scan from offset 0.
func New(source string) *Lexer {
	return &Lexer{src: source, interner: green.NewInterner()}
}

// Diagnostics returns every diagnostic accumulated so far. The slice is
// owned by the Lexer; callers must not mutate it.
func (l *Lexer) Diagnostics() []diagnostic.Diagnostic { return l.diags }

// Pos is the current absolute scan offset.
func (l *Lexer) Pos() int { return l.pos }

func (l *Lexer) atEOF() bool { return l.pos >= len(l.src) }

func (l *Lexer) atLineStart() bool {
	return l.pos == 0 || l.src[l.pos-1] == '\n'
}

func (l *Lexer) addDiag(code diagnostic.Code, start, length int, params ...string) {
	l.diags = append(l.diags, diagnostic.New(code, start, length, params...))
}

// flushBackgroundWithComment drains the accumulated background run into a trivia
// element whose comment is c, and appends that element; called once a
// comment terminal has just been scanned.
func (l *Lexer) flushBackgroundWithComment(c *green.Terminal) {
	l.elements = append(l.elements, green.TriviaElement{Background: l.background, Comment: c})
	l.background = nil
}

// takeTrivia builds a Trivia value from everything accumulated since the
// last foreground token (or since scanning began), and resets the
// accumulators.
func (l *Lexer) takeTrivia() green.Trivia {
	if len(l.elements) == 0 && len(l.background) == 0 {
		return green.Empty
	}
	t := green.Trivia{Elements: l.elements, Tail: l.background}
	l.elements = nil
	l.background = nil
	return t
}

// Next scans forward and returns the next foreground terminal, bundled
// with whatever trivia preceded it. ok is false once the source is
// exhausted; any trailing background/comments at that point are
// available from TrailingTrivia.
func (l *Lexer) Next() (trivia green.Trivia, term *green.Terminal, ok bool) {
	for {
		if l.atEOF() {
			return green.Empty, nil, false
		}
		b := l.src[l.pos]
		class := classify.Of(b)

		switch {
		case class == classify.Whitespace:
			l.scanWhitespace()

		case classify.IsSymbol(class):
			return l.takeTrivia(), l.scanSymbol(), true

		case class == classify.Special:
			if t := l.scanSpecial(b); t != nil {
				return l.takeTrivia(), t, true
			}
			// else: consumed as trivia (comment/escape), keep scanning

		default: // classify.Illegal
			l.scanIllegalChar()
		}
	}
}

// TrailingTrivia returns the trivia accumulated after the last foreground
// token (or for the whole source, if it contains none). Call this only
// after Next has returned ok=false.
func (l *Lexer) TrailingTrivia() green.Trivia {
	return l.takeTrivia()
}

// scanSpecial dispatches one of the Special-class bytes, returning the
// foreground terminal it produced, or nil if the byte was consumed into
// background/trivia instead (comment, escape line).
func (l *Lexer) scanSpecial(b byte) *green.Terminal {
	switch b {
	case '*':
		l.pos++
		return l.interner.Intern(green.Asterisk, 1)
	case '[':
		l.pos++
		return l.interner.Intern(green.BracketOpen, 1)
	case ']':
		l.pos++
		return l.interner.Intern(green.BracketClose, 1)
	case '(':
		l.pos++
		return l.interner.Intern(green.ParenthesisOpen, 1)
	case ')':
		l.pos++
		return l.interner.Intern(green.ParenthesisClose, 1)
	case '.':
		l.pos++
		return l.interner.Intern(green.Period, 1)
	case '"':
		return l.scanStringLiteral()
	case ';':
		l.scanEOLComment()
		return nil
	case '{':
		l.scanMultiLineComment()
		return nil
	case '$':
		return l.scanNag()
	case '%':
		l.scanPercent()
		return nil
	default:
		panic("lex: unreachable Special byte")
	}
}

// scanWhitespace consumes a maximal run of whitespace-class bytes and
// appends it as a background terminal.
func (l *Lexer) scanWhitespace() {
	start := l.pos
	for !l.atEOF() && classify.Of(l.src[l.pos]) == classify.Whitespace {
		l.pos++
	}
	l.background = append(l.background, l.interner.Intern(green.Whitespace, l.pos-start))
}

// scanIllegalChar consumes one illegal-class byte, reporting it both as a
// background terminal (so it round-trips) and as an IllegalCharacter
// diagnostic.
func (l *Lexer) scanIllegalChar() {
	start := l.pos
	b := l.src[l.pos]
	l.pos++
	l.addDiag(diagnostic.IllegalCharacter, start, 1, escapeForm(b))
	l.background = append(l.background, green.NewTerminal(green.IllegalCharacter, 1))
}

// scanSymbol consumes a maximal symbol run, classifies it via the shared
// automaton, and returns the resulting foreground terminal.
func (l *Lexer) scanSymbol() *green.Terminal {
	start := l.pos
	b0 := l.src[l.pos]
	state := automaton.Start(classify.Of(b0))
	l.pos++
	for !l.atEOF() {
		b := l.src[l.pos]
		c := classify.Of(b)
		if !classify.IsSymbol(c) {
			break
		}
		state = automaton.Feed(state, c, b)
		l.pos++
	}
	length := l.pos - start

	switch automaton.AcceptKind(state) {
	case automaton.MoveNumber:
		return l.interner.Intern(green.MoveNumber, length)
	case automaton.Move:
		return &green.Terminal{Kind: green.Move, Length_: length, IsValidTagName: false}
	case automaton.TagName:
		// The lexer never emits a bare TagName terminal; isValidTagName
		// lives on the Move variant instead. Whether this run is used as
		// a tag name or a move is decided by the parser from context; see
		// internal/parse's tag-section reinterpretation.
		return &green.Terminal{Kind: green.Move, Length_: length, IsValidTagName: true}
	case automaton.DrawMarker:
		return green.NewTerminal(green.DrawMarker, length)
	case automaton.WhiteWinMarker:
		return green.NewTerminal(green.WhiteWinMarker, length)
	case automaton.BlackWinMarker:
		return green.NewTerminal(green.BlackWinMarker, length)
	default:
		literal := l.src[start:l.pos]
		return &green.Terminal{Kind: green.UnrecognizedMove, Length_: length, LiteralText: literal}
	}
}

// scanPercent handles '%': an escape line if at the start of a line,
// otherwise a plain illegal character.
func (l *Lexer) scanPercent() {
	if !l.atLineStart() {
		l.scanIllegalChar()
		return
	}
	start := l.pos
	for !l.atEOF() && l.src[l.pos] != '\n' {
		l.pos++
	}
	l.background = append(l.background, green.NewTerminal(green.Escape, l.pos-start))
}
