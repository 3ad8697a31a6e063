package lex

import (
	"strconv"

	"github.com/lgbarn/pgnsyntax/diagnostic"
	"github.com/lgbarn/pgnsyntax/green"
)

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// scanNag scans a '$' NAG: a maximal run of ASCII digits, valid only in
// [0, 255].
func (l *Lexer) scanNag() *green.Terminal {
	start := l.pos
	l.pos++ // '$'
	digitsStart := l.pos
	for !l.atEOF() && isASCIIDigit(l.src[l.pos]) {
		l.pos++
	}
	digits := l.src[digitsStart:l.pos]
	length := l.pos - start

	if len(digits) == 0 {
		l.addDiag(diagnostic.EmptyNag, start, length)
		return green.NewTerminal(green.EmptyNag, length)
	}

	value, err := strconv.Atoi(digits)
	if err != nil || value >= 256 {
		literal := l.src[start:l.pos]
		l.addDiag(diagnostic.OverflowNag, start, length, literal)
		return &green.Terminal{Kind: green.OverflowNag, Length_: length, LiteralText: literal}
	}
	return &green.Terminal{Kind: green.Nag, Length_: length, NagValue: value}
}
