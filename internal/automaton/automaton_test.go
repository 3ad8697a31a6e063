package automaton

import (
	"testing"

	"github.com/lgbarn/pgnsyntax/internal/classify"
)

func run(s string) Kind {
	state := Start(classify.Of(s[0]))
	for i := 1; i < len(s); i++ {
		b := s[i]
		state = Feed(state, classify.Of(b), b)
	}
	return AcceptKind(state)
}

func TestMoveNumbers(t *testing.T) {
	for _, s := range []string{"1", "12", "0", "42", "100"} {
		if got := run(s); got != MoveNumber {
			t.Errorf("run(%q) = %v, want MoveNumber", s, got)
		}
	}
}

func TestGameResultMarkers(t *testing.T) {
	tests := []struct {
		s    string
		want Kind
	}{
		{"1-0", WhiteWinMarker},
		{"0-1", BlackWinMarker},
		{"1/2-1/2", DrawMarker},
	}
	for _, tt := range tests {
		if got := run(tt.s); got != tt.want {
			t.Errorf("run(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestCastling(t *testing.T) {
	for _, s := range []string{"O-O", "O-O-O", "o-o", "o-o-o"} {
		if got := run(s); got != Move {
			t.Errorf("run(%q) = %v, want Move", s, got)
		}
	}
}

func TestCastlingWithCheckSuffix(t *testing.T) {
	for _, s := range []string{"O-O+", "O-O#", "O-O-O+", "O-O-O#"} {
		if got := run(s); got != Move {
			t.Errorf("run(%q) = %v, want Move", s, got)
		}
	}
}

func TestFourthCastlingDeadEnds(t *testing.T) {
	// Open question (resolved): "O-O-O-O" has no accepting state of its
	// own, so the automaton alone reports Unclassified here.
	if got := run("O-O-O-O"); got != Unclassified {
		t.Errorf("run(%q) = %v, want Unclassified", "O-O-O-O", got)
	}
}

func TestTagNameShapedRuns(t *testing.T) {
	for _, s := range []string{"Nf3", "e4", "Site", "White_Elo", "a", "Rxd5"} {
		if got := run(s); got != TagName {
			t.Errorf("run(%q) = %v, want TagName", s, got)
		}
	}
}

func TestMoveSuffixRuns(t *testing.T) {
	for _, s := range []string{"Qxd5+", "e8=Q+", "Nf3!", "Rxd5?", "e4!!"} {
		if got := run(s); got != Move {
			t.Errorf("run(%q) = %v, want Move", s, got)
		}
	}
}

func TestUnclassifiedOddShapes(t *testing.T) {
	for _, s := range []string{"--", "+", "1-"} {
		if got := run(s); got != Unclassified {
			t.Errorf("run(%q) = %v, want Unclassified", s, got)
		}
	}
}
