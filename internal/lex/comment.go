package lex

import (
	"github.com/lgbarn/pgnsyntax/diagnostic"
	"github.com/lgbarn/pgnsyntax/green"
)

// scanEOLComment scans a ';' comment. It stops just before the line
// terminator, leaving any \r\n for the ordinary whitespace scan that
// follows — those bytes are already classify.Whitespace, so they
// round-trip as background without this sub-lexer needing to
// special-case them.
func (l *Lexer) scanEOLComment() {
	start := l.pos
	l.pos++ // ';'
	for !l.atEOF() && l.src[l.pos] != '\n' && l.src[l.pos] != '\r' {
		l.pos++
	}
	comment := green.NewTerminal(green.Comment, l.pos-start)
	l.flushBackgroundWithComment(comment)
}

// scanMultiLineComment scans a '{' ... '}' comment, flagging
// UnterminatedMultiLineComment if EOF is reached first.
func (l *Lexer) scanMultiLineComment() {
	start := l.pos
	l.pos++ // '{'
	for !l.atEOF() && l.src[l.pos] != '}' {
		l.pos++
	}
	if l.atEOF() {
		length := l.pos - start
		l.addDiag(diagnostic.UnterminatedMultiLineComment, start, length)
		l.flushBackgroundWithComment(green.NewTerminal(green.UnterminatedComment, length))
		return
	}
	l.pos++ // '}'
	l.flushBackgroundWithComment(green.NewTerminal(green.Comment, l.pos-start))
}
