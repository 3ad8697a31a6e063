// Package green implements the immutable, position-free "green" syntax
// tree: terminals, trivia, with-trivia wrappers, and the
// ply/variation/tag/game/game-list aggregates. Green nodes carry only
// lengths; absolute positions are computed by the red overlay (package
// red) on demand.
package green

// Kind is the closed set of symbol kinds a PGN source text can lex into.
// The first five are background/trivia; the rest are foreground. Whitespace,
// Escape, and IllegalCharacter are background-only; Comment and
// UnterminatedComment are trivia; Nag, EmptyNag, and OverflowNag share the
// NAG super-type.
type Kind int

const (
	Whitespace Kind = iota
	Escape
	IllegalCharacter
	Comment
	UnterminatedComment

	BracketOpen
	BracketClose
	TagName
	TagValue
	ErrorTagValue
	MoveNumber
	Period
	Move
	UnrecognizedMove
	Nag
	EmptyNag
	OverflowNag
	ParenthesisOpen
	ParenthesisClose
	OrphanParenthesisClose
	Asterisk
	DrawMarker
	WhiteWinMarker
	BlackWinMarker
)

var kindNames = [...]string{
	"Whitespace", "Escape", "IllegalCharacter", "Comment", "UnterminatedComment",
	"BracketOpen", "BracketClose", "TagName", "TagValue", "ErrorTagValue",
	"MoveNumber", "Period", "Move", "UnrecognizedMove", "Nag", "EmptyNag",
	"OverflowNag", "ParenthesisOpen", "ParenthesisClose", "OrphanParenthesisClose",
	"Asterisk", "DrawMarker", "WhiteWinMarker", "BlackWinMarker",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// IsBackground reports whether k is one of the three background-only kinds
// (Whitespace, Escape, IllegalCharacter). Comment and UnterminatedComment
// are trivia but not background: they are the comment terminal a
// TriviaElement pairs with its preceding background run, never part of
// that run itself.
func (k Kind) IsBackground() bool {
	return k <= IllegalCharacter
}

// IsTrivia reports whether k can appear inside a Trivia block: background
// kinds plus the two comment kinds.
func (k Kind) IsTrivia() bool {
	return k <= UnterminatedComment
}

// IsNag reports whether k is one of the three NAG-family kinds.
func (k Kind) IsNag() bool {
	return k == Nag || k == EmptyNag || k == OverflowNag
}

// IsGameResult reports whether k is a game-termination marker.
func (k Kind) IsGameResult() bool {
	switch k {
	case Asterisk, DrawMarker, WhiteWinMarker, BlackWinMarker:
		return true
	default:
		return false
	}
}
