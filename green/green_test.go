package green

import "testing"

func TestTerminalBasics(t *testing.T) {
	term := NewTerminal(Period, 1)
	if term.Length() != 1 {
		t.Errorf("Length() = %d, want 1", term.Length())
	}
	if !term.IsTerminal() {
		t.Error("IsTerminal() = false, want true")
	}
	if term.ChildCount() != 0 {
		t.Errorf("ChildCount() = %d, want 0", term.ChildCount())
	}
}

func TestTerminalChildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Child did not panic on a terminal")
		}
	}()
	NewTerminal(Whitespace, 1).Child(0)
}

func TestKindString(t *testing.T) {
	if got := Move.String(); got != "Move" {
		t.Errorf("Move.String() = %q", got)
	}
	if got := Kind(999).String(); got != "Unknown" {
		t.Errorf("out-of-range Kind.String() = %q, want Unknown", got)
	}
}

func TestKindPredicates(t *testing.T) {
	for _, k := range []Kind{Whitespace, Escape, IllegalCharacter} {
		if !k.IsBackground() {
			t.Errorf("%v.IsBackground() = false, want true", k)
		}
		if !k.IsTrivia() {
			t.Errorf("%v.IsTrivia() = false, want true", k)
		}
	}
	for _, k := range []Kind{Comment, UnterminatedComment} {
		if k.IsBackground() {
			t.Errorf("%v.IsBackground() = true, want false (trivia, not background)", k)
		}
		if !k.IsTrivia() {
			t.Errorf("%v.IsTrivia() = false, want true", k)
		}
	}
	if Move.IsBackground() {
		t.Error("Move.IsBackground() = true, want false")
	}
	for _, k := range []Kind{Nag, EmptyNag, OverflowNag} {
		if !k.IsNag() {
			t.Errorf("%v.IsNag() = false, want true", k)
		}
	}
	if Move.IsNag() {
		t.Error("Move.IsNag() = true, want false")
	}
	for _, k := range []Kind{Asterisk, DrawMarker, WhiteWinMarker, BlackWinMarker} {
		if !k.IsGameResult() {
			t.Errorf("%v.IsGameResult() = false, want true", k)
		}
	}
	if Move.IsGameResult() {
		t.Error("Move.IsGameResult() = true, want false")
	}
}

func TestTriviaLength(t *testing.T) {
	tr := Trivia{
		Elements: []TriviaElement{
			{Background: []*Terminal{NewTerminal(Whitespace, 2)}, Comment: NewTerminal(Comment, 5)},
		},
		Tail: []*Terminal{NewTerminal(Whitespace, 1)},
	}
	if got := tr.Length(); got != 8 {
		t.Errorf("Length() = %d, want 8", got)
	}
	if tr.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if Empty.Length() != 0 || !Empty.IsEmpty() {
		t.Error("Empty Trivia should have zero length and IsEmpty() true")
	}
}

func TestTriviaChildOrder(t *testing.T) {
	ws := NewTerminal(Whitespace, 1)
	cm := NewTerminal(Comment, 3)
	tail := NewTerminal(Whitespace, 2)
	tr := Trivia{Elements: []TriviaElement{{Background: []*Terminal{ws}, Comment: cm}}, Tail: []*Terminal{tail}}

	if got := tr.ChildCount(); got != 3 {
		t.Fatalf("ChildCount() = %d, want 3", got)
	}
	if tr.Child(0) != Node(ws) || tr.Child(1) != Node(cm) || tr.Child(2) != Node(tail) {
		t.Error("Child order does not match background, comment, tail")
	}
}

func TestWithTriviaLength(t *testing.T) {
	wt := NewWithTrivia(Trivia{Tail: []*Terminal{NewTerminal(Whitespace, 2)}}, NewTerminal(Move, 3))
	if got := wt.Length(); got != 5 {
		t.Errorf("Length() = %d, want 5", got)
	}
	if got := wt.ChildCount(); got != 2 {
		t.Errorf("ChildCount() = %d, want 2 (1 trivia + content)", got)
	}
}

func TestPlySlotLength(t *testing.T) {
	float := NewWithTrivia(Empty, NewTerminal(Period, 1))
	slot := PlySlot{Float: []WithTrivia{float}, Value: NewWithTrivia(Empty, NewTerminal(Move, 3))}
	if got := slot.Length(); got != 4 {
		t.Errorf("Length() = %d, want 4", got)
	}
	if got := slot.ChildCount(); got != 2 {
		t.Errorf("ChildCount() = %d, want 2", got)
	}

	empty := PlySlot{}
	if empty.present() {
		t.Error("empty PlySlot.present() = true, want false")
	}
	if got := empty.ChildCount(); got != 0 {
		t.Errorf("empty PlySlot.ChildCount() = %d, want 0", got)
	}
}

func TestPlyHasMoveNumberAndMove(t *testing.T) {
	ply := &Ply{
		MoveNumber: PlySlot{Value: NewWithTrivia(Empty, NewTerminal(MoveNumber, 2))},
		Move:       PlySlot{Value: NewWithTrivia(Empty, NewTerminal(Move, 2))},
	}
	if !ply.HasMoveNumber() || !ply.HasMove() {
		t.Error("HasMoveNumber()/HasMove() = false, want true")
	}

	bare := &Ply{}
	if bare.HasMoveNumber() || bare.HasMove() {
		t.Error("bare Ply HasMoveNumber()/HasMove() = true, want false")
	}
}

func TestPlyChildTraversal(t *testing.T) {
	moveNum := NewWithTrivia(Empty, NewTerminal(MoveNumber, 2))
	move := NewWithTrivia(Empty, NewTerminal(Move, 2))
	nag := NewWithTrivia(Empty, NewTerminal(Nag, 3))
	ply := &Ply{
		MoveNumber: PlySlot{Value: moveNum},
		Move:       PlySlot{Value: move},
		Nags:       []PlySlot{{Value: nag}},
	}
	if got := ply.ChildCount(); got != 3 {
		t.Fatalf("ChildCount() = %d, want 3", got)
	}
	// WithTrivia holds slice fields, so its Node values aren't comparable
	// with ==; check each position round-trips through its Content kind
	// instead of comparing the wrapper itself.
	wantKinds := []Kind{MoveNumber, Move, Nag}
	for i, want := range wantKinds {
		wt, ok := ply.Child(i).(WithTrivia)
		if !ok {
			t.Fatalf("Child(%d) is not a WithTrivia", i)
		}
		term, ok := wt.Content.(*Terminal)
		if !ok || term.Kind != want {
			t.Errorf("Child(%d) content kind = %v, want %v", i, term, want)
		}
	}
}

func TestPlyListLength(t *testing.T) {
	ply := &Ply{Move: PlySlot{Value: NewWithTrivia(Empty, NewTerminal(Move, 3))}}
	trailing := NewWithTrivia(Empty, NewTerminal(Period, 1))
	pl := &PlyList{Plies: []*Ply{ply}, Trailing: []WithTrivia{trailing}}
	if got := pl.Length(); got != 4 {
		t.Errorf("Length() = %d, want 4", got)
	}
	if got := pl.ChildCount(); got != 2 {
		t.Errorf("ChildCount() = %d, want 2", got)
	}
}

func TestVariationWithAndWithoutClose(t *testing.T) {
	open := NewWithTrivia(Empty, NewTerminal(ParenthesisOpen, 1))
	plies := &PlyList{}
	closeTok := NewWithTrivia(Empty, NewTerminal(ParenthesisClose, 1))

	closed := &Variation{Open: open, Plies: plies, Close: &closeTok}
	if got := closed.Length(); got != 2 {
		t.Errorf("closed Length() = %d, want 2", got)
	}
	if got := closed.ChildCount(); got != 3 {
		t.Errorf("closed ChildCount() = %d, want 3", got)
	}

	unclosed := &Variation{Open: open, Plies: plies}
	if got := unclosed.Length(); got != 1 {
		t.Errorf("unclosed Length() = %d, want 1", got)
	}
	if got := unclosed.ChildCount(); got != 2 {
		t.Errorf("unclosed ChildCount() = %d, want 2", got)
	}
}

func TestTagPairLength(t *testing.T) {
	name := NewWithTrivia(Empty, NewTerminal(TagName, 4))
	value := NewWithTrivia(Empty, &Terminal{Kind: TagValue, Length_: 8, TagValueText: "Site"})
	tp := &TagPair{Elements: []WithTrivia{name, value}}
	if got := tp.Length(); got != 12 {
		t.Errorf("Length() = %d, want 12", got)
	}
	if got := tp.ChildCount(); got != 2 {
		t.Errorf("ChildCount() = %d, want 2", got)
	}
}

func TestGameLengthAndChildrenWithAndWithoutResult(t *testing.T) {
	tag := &TagPair{Elements: []WithTrivia{NewWithTrivia(Empty, NewTerminal(TagName, 4))}}
	plies := &PlyList{}
	result := NewWithTrivia(Empty, NewTerminal(Asterisk, 1))

	withResult := &Game{Tags: []*TagPair{tag}, Plies: plies, Result: &result}
	if got := withResult.Length(); got != 5 {
		t.Errorf("Length() = %d, want 5", got)
	}
	if got := withResult.ChildCount(); got != 3 {
		t.Errorf("ChildCount() = %d, want 3", got)
	}
	resultChild, ok := withResult.Child(2).(WithTrivia)
	if !ok || resultChild.Content.(*Terminal).Kind != Asterisk {
		t.Error("Child(2) should be the result, carrying an Asterisk terminal")
	}

	noResult := &Game{Tags: []*TagPair{tag}, Plies: plies}
	if got := noResult.ChildCount(); got != 2 {
		t.Errorf("ChildCount() = %d, want 2", got)
	}
}

func TestGameListLengthAndChildren(t *testing.T) {
	g := &Game{Plies: &PlyList{}}
	trailing := Trivia{Tail: []*Terminal{NewTerminal(Whitespace, 3)}}
	gl := &GameList{Games: []*Game{g}, Trailing: trailing}
	if got := gl.Length(); got != 3 {
		t.Errorf("Length() = %d, want 3", got)
	}
	if got := gl.ChildCount(); got != 2 {
		t.Errorf("ChildCount() = %d, want 2", got)
	}
	if gl.Child(0) != Node(g) {
		t.Error("Child(0) should be the game")
	}
}
