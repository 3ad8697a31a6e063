// Package automaton implements a finite-state machine that classifies a
// maximal run of "symbol characters" as a move-number, a move (castling or
// a SAN-suffixed run), a game-termination marker, or a tag name — all in a
// single pass over the run, sharing one transition table.
//
// A run that doesn't land in one of this package's accepting states (e.g.
// "O-O-O-O", "--", "1-") is reported Unclassified; the Lexer emits such a
// run as UnrecognizedMove.
package automaton

import "github.com/lgbarn/pgnsyntax/internal/classify"

// Kind is what an accepting state emits.
type Kind int

const (
	// Unclassified means the run's final state carries no dedicated
	// output kind; the caller (the Lexer) reports the run as
	// UnrecognizedMove.
	Unclassified Kind = iota
	MoveNumber
	Move // castling ("O-O", "O-O-O") or a run in stateMoveSuffix
	DrawMarker
	WhiteWinMarker
	BlackWinMarker
	TagName
)

// State indexes the transition table. Dead is the automaton's
// unrecoverable sink: once entered, the run is reported Unclassified
// regardless of further input.
type State uint8

const Dead State = 0

const (
	_ State = iota // 0 is Dead, declared above
	stateDigit1
	stateDigit0
	stateMoveNumber // plain digit run of length >= 1, still growing
	stateWhiteWinDash
	stateWhiteWin // accept: "1-0"
	stateBlackWinDash
	stateBlackWin // accept: "0-1"
	stateDrawSlash
	stateDrawSlash2
	stateDrawDash
	stateDrawHalf
	stateDrawSlash3
	stateDraw // accept: "1/2-1/2"

	stateO // seen a single "O"/"o" — precursor, also a 1-char tag name
	stateP // seen a single "P"/"p" — precursor, also a 1-char tag name
	stateCastlingDash1
	stateCastling2 // accept: "O-O"
	stateCastlingDash2
	stateCastling3 // accept: "O-O-O"

	stateTagName // run of letters/digits/underscore only, still valid

	// stateMoveSuffix is reached once a run that looked like a tag name
	// or a completed castling picks up a SAN suffix character
	// ('=','+','#','!','?', or a non-castling '-'): the run is no longer
	// tag-name-shaped, but it is still a single symbol run and still
	// move-shaped, so it keeps accepting further letters/digits/SAN
	// punctuation as Move (e.g. "e8=Q+", "Qxd5+", "O-O+").
	stateMoveSuffix

	numStates
)

const numClasses = 30 // highest classify.Class value (SANPunct) + 1

// transition[state][class] is the next state for every class except
// SANPunct, whose continuation depends on which byte it actually is (see
// sanNext below); unlisted cells default to Dead, the zero value.
var transition [numStates][numClasses]State

// sanContinuation records, for a state that can continue on a specific
// SAN-punctuation byte, which byte is expected and where it leads. Any
// other SANPunct byte at that state dead-ends the run. A state may have
// more than one continuation (stateDigit1 forks on '-' toward a White-win
// marker and on '/' toward a draw marker).
type sanContinuation struct {
	b    byte
	next State
}

var sanNext [numStates][]sanContinuation

func addSanContinuation(from State, b byte, next State) {
	sanNext[from] = append(sanNext[from], sanContinuation{b, next})
}

// acceptKind[state] is the Kind a run ending in that state emits.
var acceptKind [numStates]Kind

func init() {
	// --- digit path ---------------------------------------------------
	setDigitRun := func(from State) {
		transition[from][classify.Digit0] = stateMoveNumber
		transition[from][classify.Digit1] = stateMoveNumber
		transition[from][classify.Digit2] = stateMoveNumber
		transition[from][classify.Digit3To8] = stateMoveNumber
		transition[from][classify.Digit9] = stateMoveNumber
	}
	setDigitRun(stateDigit1)
	setDigitRun(stateDigit0)
	setDigitRun(stateMoveNumber)

	addSanContinuation(stateDigit1, '-', stateWhiteWinDash)
	addSanContinuation(stateDigit0, '-', stateBlackWinDash)
	transition[stateWhiteWinDash][classify.Digit0] = stateWhiteWin
	transition[stateBlackWinDash][classify.Digit1] = stateBlackWin

	// "1/2-1/2": stateDigit1 --'/'--> stateDrawSlash --'2'--> stateDrawSlash2
	// --'-'--> stateDrawDash --'1'--> stateDrawHalf --'/'--> stateDrawSlash3
	// --'2'--> stateDraw (accept). stateDigit1 forks on the SAN byte
	// itself: '-' toward White-win (above), '/' here toward the draw
	// marker.
	addSanContinuation(stateDigit1, '/', stateDrawSlash)
	transition[stateDrawSlash][classify.Digit2] = stateDrawSlash2
	addSanContinuation(stateDrawSlash2, '-', stateDrawDash)
	transition[stateDrawDash][classify.Digit1] = stateDrawHalf
	addSanContinuation(stateDrawHalf, '/', stateDrawSlash3)
	transition[stateDrawSlash3][classify.Digit2] = stateDraw

	acceptKind[stateMoveNumber] = MoveNumber
	acceptKind[stateDigit1] = MoveNumber
	acceptKind[stateDigit0] = MoveNumber
	acceptKind[stateWhiteWin] = WhiteWinMarker
	acceptKind[stateBlackWin] = BlackWinMarker
	acceptKind[stateDraw] = DrawMarker

	// --- letter / tag-name / castling path -----------------------------
	identifierClasses := []classify.Class{
		classify.LetterO, classify.LetterP, classify.LetterPiece,
		classify.LetterUpperOther, classify.LetterLowerAtoH,
		classify.LetterX, classify.LetterLowerOther, classify.Underscore,
		classify.Digit0, classify.Digit1, classify.Digit2,
		classify.Digit3To8, classify.Digit9,
	}
	setIdentifierRun := func(from State) {
		for _, c := range identifierClasses {
			transition[from][c] = stateTagName
		}
	}
	setIdentifierRun(stateO)
	setIdentifierRun(stateP)
	setIdentifierRun(stateTagName)

	addSanContinuation(stateO, '-', stateCastlingDash1)
	transition[stateCastlingDash1][classify.LetterO] = stateCastling2
	addSanContinuation(stateCastling2, '-', stateCastlingDash2)
	transition[stateCastlingDash2][classify.LetterO] = stateCastling3
	// stateCastling3 has no outgoing transitions at all for '-': any
	// further attempt to extend the castling chain (the third '-' of an
	// attempted "O-O-O-O") dead-ends the run, so it falls back to
	// UnrecognizedMove. Check/checkmate suffixes are still accepted below.

	acceptKind[stateO] = TagName
	acceptKind[stateP] = TagName
	acceptKind[stateTagName] = TagName
	acceptKind[stateCastling2] = Move
	acceptKind[stateCastling3] = Move

	// --- move-suffix path -----------------------------------------------
	// A tag-name-shaped run that picks up a SAN suffix character is no
	// longer tag-name-shaped but is still one move-shaped symbol run.
	for _, b := range []byte{'-', '/', '=', '+', '#', '!', '?'} {
		addSanContinuation(stateTagName, b, stateMoveSuffix)
	}
	// A completed castling move can still take a check/checkmate suffix
	// ("O-O+", "O-O-O#"); '-' is deliberately excluded here so the
	// dead-end above is preserved.
	for _, b := range []byte{'=', '+', '#', '!', '?'} {
		addSanContinuation(stateCastling2, b, stateMoveSuffix)
		addSanContinuation(stateCastling3, b, stateMoveSuffix)
	}
	for _, c := range identifierClasses {
		transition[stateMoveSuffix][c] = stateMoveSuffix
	}
	for _, b := range []byte{'-', '/', '=', '+', '#', '!', '?'} {
		addSanContinuation(stateMoveSuffix, b, stateMoveSuffix)
	}
	acceptKind[stateMoveSuffix] = Move
}

// Start seeds the automaton with the first character class of a run and
// returns the resulting state.
func Start(c classify.Class) State {
	switch c {
	case classify.Digit1:
		return stateDigit1
	case classify.Digit0:
		return stateDigit0
	case classify.Digit2, classify.Digit3To8, classify.Digit9:
		return stateMoveNumber
	case classify.LetterO:
		return stateO
	case classify.LetterP:
		return stateP
	case classify.LetterPiece, classify.LetterUpperOther, classify.LetterLowerAtoH,
		classify.LetterX, classify.LetterLowerOther, classify.Underscore:
		return stateTagName
	default:
		return Dead
	}
}

// Feed advances the automaton from s on class c, where b is the raw byte
// c was computed from. b only matters when c is SANPunct, since that one
// class covers several distinct continuation bytes ('-', '/', '=', '+',
// '#', '!', '?') that lead to different places (or nowhere) depending on
// which byte it actually is.
func Feed(s State, c classify.Class, b byte) State {
	if c == classify.SANPunct {
		for _, sc := range sanNext[s] {
			if sc.b == b {
				return sc.next
			}
		}
		return Dead
	}
	return transition[s][c]
}

// AcceptKind reports the Kind a run ending in state s emits (Dead and
// other non-accepting states report Unclassified).
func AcceptKind(s State) Kind {
	return acceptKind[s]
}
