package lex

import (
	"fmt"

	"github.com/lgbarn/pgnsyntax/diagnostic"
	"github.com/lgbarn/pgnsyntax/green"
)

// scanStringLiteral scans a tag value starting at the opening '"'. Only
// \" and \\ are recognized escapes; any other backslash sequence, and any
// unescaped control byte, is flagged but still decoded best-effort so the
// value survives.
func (l *Lexer) scanStringLiteral() *green.Terminal {
	start := l.pos
	l.pos++ // opening quote

	var decoded []byte
	hasError := false

	for {
		if l.atEOF() {
			l.addDiag(diagnostic.UnterminatedTagValue, start, l.pos-start)
			hasError = true
			break
		}
		b := l.src[l.pos]
		if b == '"' {
			l.pos++
			break
		}
		if b == '\\' {
			escPos := l.pos
			l.pos++
			if l.atEOF() {
				l.addDiag(diagnostic.UnterminatedTagValue, start, l.pos-start)
				hasError = true
				break
			}
			esc := l.src[l.pos]
			l.pos++
			switch esc {
			case '"', '\\':
				decoded = append(decoded, esc)
			default:
				l.addDiag(diagnostic.UnrecognizedEscapeSequence, escPos, l.pos-escPos, escapeForm(esc))
				hasError = true
				decoded = append(decoded, '\\', esc)
			}
			continue
		}
		if isControlByte(b) {
			l.addDiag(diagnostic.IllegalControlCharacterInTagValue, l.pos, 1, escapeForm(b))
			hasError = true
			decoded = append(decoded, b)
			l.pos++
			continue
		}
		decoded = append(decoded, b)
		l.pos++
	}

	length := l.pos - start
	kind := green.TagValue
	if hasError {
		kind = green.ErrorTagValue
	}
	return &green.Terminal{Kind: kind, Length_: length, TagValueText: string(decoded)}
}

func isControlByte(b byte) bool { return b < 0x20 || b == 0x7f }

// escapeForm renders b as a human-readable escape for a diagnostic
// parameter: \uXXXX for control/unassigned bytes, \\ or \" for those two,
// the character itself otherwise.
func escapeForm(b byte) string {
	switch b {
	case '\\':
		return `\\`
	case '"':
		return `\"`
	default:
		if isControlByte(b) || (b >= 0x80 && b <= 0x9F) {
			return fmt.Sprintf(`\u%04X`, b)
		}
		return string(rune(b))
	}
}
