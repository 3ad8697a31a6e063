package green

// Node is implemented by every green-tree element, terminal or composite.
// Green nodes carry no absolute position — only Length, and for composites,
// their ordered children — so they can be freely shared across multiple
// trees and cached between parses. Package red builds the position-bearing
// overlay on top of this interface.
type Node interface {
	// Length is the number of source code units this node (and,
	// transitively, all its children) spans.
	Length() int
	// IsTerminal reports whether this node is a leaf (Terminal).
	IsTerminal() bool
	// ChildCount is the number of children, 0 for terminals.
	ChildCount() int
	// Child returns the i'th child in source order. Panics if i is out of
	// range or the node is a terminal.
	Child(i int) Node
}

// Terminal is a leaf: a single lexical token together with its
// kind-specific payload.
type Terminal struct {
	Kind   Kind
	Length_ int // exported via Length(); named to avoid colliding with the method

	// TagValueText holds the decoded string for TagValue (clean values
	// only; ErrorTagValue stores its best-effort decode here too so a
	// caller can still inspect what text was present).
	TagValueText string
	// NagValue holds the annotation value (0..255) for Nag.
	NagValue int
	// LiteralText holds the literal source text for UnrecognizedMove and
	// OverflowNag, so diagnostics and callers can quote it without
	// re-slicing the source.
	LiteralText string
	// IsValidTagName is set on Move terminals whose text also parses as a
	// legal tag name, so the parser can retrospectively reinterpret a
	// Move-shaped symbol as a TagName if it turns out to open a tag pair.
	IsValidTagName bool
}

// NewTerminal builds a plain terminal with no kind-specific payload.
func NewTerminal(kind Kind, length int) *Terminal {
	return &Terminal{Kind: kind, Length_: length}
}

func (t *Terminal) Length() int        { return t.Length_ }
func (t *Terminal) IsTerminal() bool    { return true }
func (t *Terminal) ChildCount() int     { return 0 }
func (t *Terminal) Child(int) Node      { panic("green: Terminal has no children") }
