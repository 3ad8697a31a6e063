package green

import (
	"testing"

	"github.com/lgbarn/pgnsyntax/internal/testutil"
)

func TestInternReturnsSameInstanceForEligibleKinds(t *testing.T) {
	in := NewInterner()
	a := in.Intern(Whitespace, 1)
	b := in.Intern(Whitespace, 1)
	if a != b {
		t.Error("Intern(Whitespace, 1) returned distinct instances")
	}

	c := in.Intern(MoveNumber, 2)
	d := in.Intern(MoveNumber, 2)
	if c != d {
		t.Error("Intern(MoveNumber, 2) returned distinct instances")
	}
}

func TestInternDistinguishesLength(t *testing.T) {
	in := NewInterner()
	a := in.Intern(Whitespace, 1)
	b := in.Intern(Whitespace, 2)
	if a == b {
		t.Error("Intern should not share instances across different lengths")
	}
	if a.Length() != 1 || b.Length() != 2 {
		t.Error("interned terminals carry the wrong length")
	}
}

func TestInternDistinguishesKind(t *testing.T) {
	in := NewInterner()
	a := in.Intern(BracketOpen, 1)
	b := in.Intern(BracketClose, 1)
	if a == b {
		t.Error("Intern should not share instances across different kinds")
	}
}

func TestInternAlwaysAllocatesIneligibleKinds(t *testing.T) {
	in := NewInterner()
	a := in.Intern(TagValue, 1)
	b := in.Intern(TagValue, 1)
	if a == b {
		t.Error("TagValue carries payload and must never be shared by Intern")
	}
}

func TestInternAlwaysAllocatesLongRuns(t *testing.T) {
	in := NewInterner()
	a := in.Intern(Whitespace, maxInternedLength+1)
	b := in.Intern(Whitespace, maxInternedLength+1)
	if a == b {
		t.Error("runs longer than maxInternedLength must not be shared")
	}
}

func TestInternedTerminalsAreIndependentOfInstance(t *testing.T) {
	in1 := NewInterner()
	in2 := NewInterner()
	a := in1.Intern(Period, 1)
	b := in2.Intern(Period, 1)
	if a == b {
		t.Error("two distinct Interners should never share instances")
	}
	testutil.AssertEqual(t, a.Kind, b.Kind, "Kind")
	testutil.AssertEqual(t, a.Length(), b.Length(), "Length")
}
