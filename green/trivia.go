package green

// TriviaElement is a run of background terminals (Whitespace, Escape,
// IllegalCharacter) immediately followed by a single comment terminal
// (Comment or UnterminatedComment). Comment is never nil here: a
// background run with no following comment is the Trivia's Tail instead.
type TriviaElement struct {
	Background []*Terminal
	Comment    *Terminal
}

func (e TriviaElement) length() int {
	n := e.Comment.Length()
	for _, b := range e.Background {
		n += b.Length()
	}
	return n
}

func (e TriviaElement) childCount() int { return len(e.Background) + 1 }

func (e TriviaElement) child(i int) Node {
	if i < len(e.Background) {
		return e.Background[i]
	}
	return e.Comment
}

// Trivia is a leading-trivia block: zero or more comment-with-preceding-
// background elements, followed by a final background-only tail. Trivia
// content nodes (each Comment, each background terminal) are never nil; an
// empty Trivia (no elements, empty tail) is valid and common.
type Trivia struct {
	Elements []TriviaElement
	Tail     []*Terminal
}

// Empty is the zero-length Trivia singleton used where no trivia preceded
// a foreground token.
var Empty = Trivia{}

func (t Trivia) Length() int {
	n := 0
	for _, e := range t.Elements {
		n += e.length()
	}
	for _, b := range t.Tail {
		n += b.Length()
	}
	return n
}

func (t Trivia) IsEmpty() bool {
	return len(t.Elements) == 0 && len(t.Tail) == 0
}

func (t Trivia) IsTerminal() bool { return false }

func (t Trivia) ChildCount() int {
	n := len(t.Tail)
	for _, e := range t.Elements {
		n += e.childCount()
	}
	return n
}

func (t Trivia) Child(i int) Node {
	for _, e := range t.Elements {
		if i < e.childCount() {
			return e.child(i)
		}
		i -= e.childCount()
	}
	return t.Tail[i]
}

// WithTrivia pairs a leading Trivia block with a single foreground (or, for
// a Variation entry, composite) content node. Content is never nil for a
// constructed WithTrivia value; the zero value is only used as a sentinel
// for "this optional slot is empty" by callers that check a separate
// bool/pointer, not by inspecting Content.
type WithTrivia struct {
	Leading Trivia
	Content Node
}

func NewWithTrivia(leading Trivia, content Node) WithTrivia {
	return WithTrivia{Leading: leading, Content: content}
}

func (w WithTrivia) Length() int {
	return w.Leading.Length() + w.Content.Length()
}

func (w WithTrivia) IsTerminal() bool { return false }

func (w WithTrivia) ChildCount() int {
	return w.Leading.ChildCount() + 1
}

func (w WithTrivia) Child(i int) Node {
	if i < w.Leading.ChildCount() {
		return w.Leading.Child(i)
	}
	return w.Content
}
