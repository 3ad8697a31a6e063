package green

// PlySlot wraps one ply-internal element (a move number, a move, a NAG, or
// a variation) together with the "leading float items" that preceded it —
// stray periods and orphan closing parens. Value is nil only for the optional move-number/move
// slots when that slot is genuinely absent from the ply; NAG and Variation
// entries always have a non-nil Value.
type PlySlot struct {
	Float []WithTrivia
	Value Node
}

func (s PlySlot) Length() int {
	n := 0
	for _, f := range s.Float {
		n += f.Length()
	}
	if s.Value != nil {
		n += s.Value.Length()
	}
	return n
}

func (s PlySlot) IsTerminal() bool { return false }

func (s PlySlot) ChildCount() int {
	n := len(s.Float)
	if s.Value != nil {
		n++
	}
	return n
}

func (s PlySlot) Child(i int) Node {
	if i < len(s.Float) {
		return s.Float[i]
	}
	return s.Value
}

func (s PlySlot) present() bool { return s.Value != nil }

// Ply is a half-move: an optional move-number slot, an optional move slot,
// an ordered NAG list, and an ordered variation list, each individually
// float-wrapped. Source order is always move-number, move, NAGs,
// variations.
type Ply struct {
	MoveNumber PlySlot
	Move       PlySlot
	Nags       []PlySlot
	Variations []PlySlot
}

func (p *Ply) Length() int {
	n := p.MoveNumber.Length() + p.Move.Length()
	for _, s := range p.Nags {
		n += s.Length()
	}
	for _, s := range p.Variations {
		n += s.Length()
	}
	return n
}

func (p *Ply) IsTerminal() bool { return false }

func (p *Ply) ChildCount() int {
	n := p.MoveNumber.ChildCount() + p.Move.ChildCount()
	for _, s := range p.Nags {
		n += s.ChildCount()
	}
	for _, s := range p.Variations {
		n += s.ChildCount()
	}
	return n
}

func (p *Ply) Child(i int) Node {
	for _, slot := range p.slots() {
		c := slot.ChildCount()
		if i < c {
			return slot.Child(i)
		}
		i -= c
	}
	panic("green: Ply child index out of range")
}

// slots returns the ply's four element groups in tree order, flattening
// the NAG and variation lists alongside the two optional singleton slots.
func (p *Ply) slots() []PlySlot {
	out := make([]PlySlot, 0, 2+len(p.Nags)+len(p.Variations))
	out = append(out, p.MoveNumber, p.Move)
	out = append(out, p.Nags...)
	out = append(out, p.Variations...)
	return out
}

// HasMoveNumber reports whether the move-number slot is present.
func (p *Ply) HasMoveNumber() bool { return p.MoveNumber.present() }

// HasMove reports whether the move slot is present.
func (p *Ply) HasMove() bool { return p.Move.present() }

// PlyList is an ordered sequence of plies followed by a trailing list of
// float items not absorbed by any ply.
type PlyList struct {
	Plies    []*Ply
	Trailing []WithTrivia
}

func (pl *PlyList) Length() int {
	n := 0
	for _, p := range pl.Plies {
		n += p.Length()
	}
	for _, f := range pl.Trailing {
		n += f.Length()
	}
	return n
}

func (pl *PlyList) IsTerminal() bool { return false }

func (pl *PlyList) ChildCount() int { return len(pl.Plies) + len(pl.Trailing) }

func (pl *PlyList) Child(i int) Node {
	if i < len(pl.Plies) {
		return pl.Plies[i]
	}
	return pl.Trailing[i-len(pl.Plies)]
}

// Variation is a parenthesized side-line: an opening parenthesis (with
// trivia), a nested ply list, and an optional closing parenthesis (with
// trivia) — nil if the variation was never closed.
type Variation struct {
	Open  WithTrivia
	Plies *PlyList
	Close *WithTrivia
}

func (v *Variation) Length() int {
	n := v.Open.Length() + v.Plies.Length()
	if v.Close != nil {
		n += v.Close.Length()
	}
	return n
}

func (v *Variation) IsTerminal() bool { return false }

func (v *Variation) ChildCount() int {
	n := 2
	if v.Close != nil {
		n++
	}
	return n
}

func (v *Variation) Child(i int) Node {
	switch {
	case i == 0:
		return v.Open
	case i == 1:
		return v.Plies
	case i == 2 && v.Close != nil:
		return *v.Close
	default:
		panic("green: Variation child index out of range")
	}
}
