package classify

import "testing"

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want Class
	}{
		{"space", ' ', Whitespace},
		{"tab", '\t', Whitespace},
		{"newline", '\n', Whitespace},
		{"nbsp", 0xA0, Whitespace},
		{"asterisk", '*', Special},
		{"bracket open", '[', Special},
		{"quote", '"', Special},
		{"semicolon", ';', Special},
		{"brace", '{', Special},
		{"dollar", '$', Special},
		{"percent", '%', Special},
		{"digit 0", '0', Digit0},
		{"digit 1", '1', Digit1},
		{"digit 2", '2', Digit2},
		{"digit 5", '5', Digit3To8},
		{"digit 9", '9', Digit9},
		{"letter O upper", 'O', LetterO},
		{"letter o lower", 'o', LetterO},
		{"letter P upper", 'P', LetterP},
		{"piece N", 'N', LetterPiece},
		{"piece lower b", 'b', LetterLowerAtoH},
		{"letter x", 'x', LetterX},
		{"file letter e", 'e', LetterLowerAtoH},
		{"upper other letter Z", 'Z', LetterUpperOther},
		{"lower other letter z", 'z', LetterLowerOther},
		{"underscore", '_', Underscore},
		{"dash", '-', SANPunct},
		{"slash", '/', SANPunct},
		{"equals", '=', SANPunct},
		{"plus", '+', SANPunct},
		{"hash", '#', SANPunct},
		{"bang", '!', SANPunct},
		{"question", '?', SANPunct},
		{"illegal control", 0x01, Illegal},
		{"illegal tilde", '~', Illegal},
		{"latin1 upper A-grave", 0xC0, LetterUpperOther},
		{"latin1 lower a-grave", 0xE0, LetterLowerOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.b); got != tt.want {
				t.Errorf("Of(%q) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestIsSymbol(t *testing.T) {
	for _, c := range []Class{Digit0, Digit1, LetterO, LetterPiece, SANPunct, Underscore} {
		if !IsSymbol(c) {
			t.Errorf("IsSymbol(%v) = false, want true", c)
		}
	}
	for _, c := range []Class{Illegal, Whitespace, Special} {
		if IsSymbol(c) {
			t.Errorf("IsSymbol(%v) = true, want false", c)
		}
	}
}

func TestOfAboveASCII(t *testing.T) {
	// Bytes with no assigned Latin-1 letter mapping (e.g. control range
	// 0x80-0x9F) fall back to Illegal.
	if got := Of(0x90); got != Illegal {
		t.Errorf("Of(0x90) = %v, want Illegal", got)
	}
}
