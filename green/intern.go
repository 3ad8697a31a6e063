package green

// Interner deduplicates the small, high-frequency terminals that recur
// constantly across a PGN document: single-character punctuation
// (including the '*' result marker), short whitespace runs, and short move
// numbers. The longer game-result markers ("1-0", "0-1", "1/2-1/2") exceed
// maxInternedLength and are not interned; each occurrence is a fresh
// terminal. A
// MoveNumber terminal carries no text of its own (the actual digits are
// recovered by re-slicing the source at the red node's absolute offset),
// so two same-length move numbers are genuinely interchangeable. It works
// as a map from a cheap hash to a short bucket of candidates, linearly
// scanned to confirm an exact match before reuse.
//
// A single Interner is only ever used within one Lexer/Parser pass; it is
// not safe for concurrent use.
type Interner struct {
	table map[uint64][]*Terminal
}

// NewInterner creates an empty Interner; each shared terminal is created
// the first time Intern is asked for it.
func NewInterner() *Interner {
	in := &Interner{table: make(map[uint64][]*Terminal)}
	return in
}

// maxInternedLength bounds which terminals are worth interning: short
// runs recur constantly (single spaces, single newlines, the punctuation
// terminals), while long ones (a 200-byte comment) are unlikely to repeat
// byte-for-byte and aren't worth hashing.
const maxInternedLength = 2

func internKey(kind Kind, length int, text string) uint64 {
	var h uint64 = 1469598103934665603 // FNV-1a offset basis
	const prime uint64 = 1099511628211
	mix := func(b byte) {
		h ^= uint64(b)
		h *= prime
	}
	mix(byte(kind))
	mix(byte(length))
	for i := 0; i < len(text); i++ {
		mix(text[i])
	}
	return h
}

// eligible reports whether a terminal of this kind and length is interned:
// only kinds with no payload beyond Kind/Length (punctuation, whitespace
// runs, result markers, move numbers), and only up to maxInternedLength.
// Kinds carrying payload (TagValue, Nag, ...) are never interned.
func eligible(kind Kind, length int) bool {
	if length > maxInternedLength {
		return false
	}
	switch kind {
	case Whitespace, BracketOpen, BracketClose, Period, ParenthesisOpen,
		ParenthesisClose, OrphanParenthesisClose, Asterisk, DrawMarker,
		WhiteWinMarker, BlackWinMarker, MoveNumber:
		return true
	default:
		return false
	}
}

// Intern returns a shared *Terminal equal to the given fields, allocating
// a new one only the first time a (kind, length) pair is seen. Terminals
// outside the eligible set (anything long, or carrying payload) are always
// allocated fresh.
func (in *Interner) Intern(kind Kind, length int) *Terminal {
	if !eligible(kind, length) {
		return &Terminal{Kind: kind, Length_: length}
	}
	key := internKey(kind, length, "")
	for _, cand := range in.table[key] {
		if cand.Kind == kind && cand.Length_ == length {
			return cand
		}
	}
	t := &Terminal{Kind: kind, Length_: length}
	in.table[key] = append(in.table[key], t)
	return t
}
