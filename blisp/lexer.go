/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package blisp

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// everything outside ASCII is dropped before scanning
var asciiOnly = runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII }))

type lexer struct {
	input  string
	pos    int
	tokens []Token
}

// Tokenize converts a program into tokens. The result always ends with TokEOF.
func Tokenize(input string) ([]Token, error) {
	clean, _, err := transform.String(asciiOnly, input)
	if err != nil {
		return nil, &LexError{0, err.Error()}
	}
	l := &lexer{input: clean}
	for l.pos < len(l.input) {
		if err := l.next(); err != nil {
			return nil, err
		}
	}
	l.emit(Token{Kind: TokEOF})
	return l.tokens, nil
}

func (l *lexer) emit(tok Token) {
	l.tokens = append(l.tokens, tok)
}

func (l *lexer) emitOp(op Reserved) {
	l.emit(Token{Kind: TokReserved, Op: op})
}

func (l *lexer) errorf(format string, args ...any) error {
	return &LexError{l.pos, fmt.Sprintf(format, args...)}
}

// peekAt returns the byte off positions after the cursor, 0 past the end.
func (l *lexer) peekAt(off int) byte {
	if l.pos+off < len(l.input) {
		return l.input[l.pos+off]
	}
	return 0
}

func isDigit(ch byte) bool  { return ch >= '0' && ch <= '9' }
func isLetter(ch byte) bool { return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' }
func isSpace(ch byte) bool  { return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' }

// isDelimiter reports whether ch may directly follow a literal.
func isDelimiter(ch byte) bool {
	return isSpace(ch) || ch == '(' || ch == ')' || ch == '[' || ch == ']'
}

func (l *lexer) next() error {
	ch := l.input[l.pos]
	switch {
	case ch == '(':
		// "()" without a gap is the unit literal, "( )" is not
		if l.peekAt(1) == ')' {
			l.pos += 2
			l.emit(Token{Kind: TokUnit})
			return nil
		}
		l.emit(Token{Kind: TokLParen})
	case ch == ')':
		l.emit(Token{Kind: TokRParen})
	case ch == '[':
		l.emit(Token{Kind: TokLBrack})
	case ch == ']':
		l.emit(Token{Kind: TokRBrack})
	case ch == '+':
		l.emitOp(OpAdd)
	case ch == '*':
		l.emitOp(OpMul)
	case ch == '/':
		l.emitOp(OpDiv)
	case ch == '-':
		next := l.peekAt(1)
		if isDigit(next) {
			return l.number()
		}
		if next == 0 || isSpace(next) || next == ')' || next == ']' {
			l.emitOp(OpSub)
			break
		}
		return l.errorf("unexpected char while parsing number: %q", next)
	case isDigit(ch):
		return l.number()
	case ch == '\'':
		return l.char()
	case ch == '"':
		return l.text()
	case isLetter(ch):
		return l.word()
	case isSpace(ch):
	default:
		return l.errorf("unexpected character %q", ch)
	}
	l.pos++
	return nil
}

func (l *lexer) number() error {
	start := l.pos
	var lit NumLiteral
	if l.input[l.pos] == '-' {
		lit.Negative = true
		l.pos++
	}
scan:
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch {
		case isDigit(ch):
			d := uint64(ch - '0')
			if lit.Float {
				if lit.DecPart > (math.MaxUint64-d)/10 {
					return l.errorf("fraction of numeric literal too long: %s", l.input[start:l.pos+1])
				}
				lit.DecPart = lit.DecPart*10 + d
				lit.DecDigits++
			} else {
				if lit.IntPart > (math.MaxUint64-d)/10 {
					return l.errorf("numeric literal overflows: %s", l.input[start:l.pos+1])
				}
				lit.IntPart = lit.IntPart*10 + d
			}
		case ch == '.':
			if lit.Float {
				return l.errorf("unexpected second '.' in numeric literal %s", l.input[start:l.pos+1])
			}
			lit.Float = true
		case ch == 'u':
			lit.Suffix = SuffixUnsigned
			l.pos++
			break scan
		case ch == 'f':
			lit.Suffix = SuffixFloat
			l.pos++
			break scan
		case ch == 'c':
			lit.Suffix = SuffixChar
			l.pos++
			break scan
		default:
			break scan
		}
		l.pos++
	}
	if l.pos < len(l.input) && !isDelimiter(l.input[l.pos]) {
		return l.errorf("unexpected char while parsing number: %q", l.input[l.pos])
	}
	if lit.Suffix == SuffixChar && (lit.Negative || lit.Float || lit.IntPart > 255) {
		return l.errorf("invalid char literal %s", l.input[start:l.pos])
	}
	l.emit(Token{Kind: TokNum, Num: lit})
	return nil
}

// char reads 'x'. There are no escapes, so ''' is the apostrophe.
func (l *lexer) char() error {
	if l.pos+2 >= len(l.input) || l.input[l.pos+2] != '\'' {
		return l.errorf("unterminated char literal")
	}
	l.emit(Token{Kind: TokChar, Char: l.input[l.pos+1]})
	l.pos += 3
	return nil
}

// text reads a string literal verbatim up to the next double quote.
func (l *lexer) text() error {
	end := strings.IndexByte(l.input[l.pos+1:], '"')
	if end < 0 {
		return l.errorf("unterminated string literal")
	}
	l.emit(Token{Kind: TokString, Text: l.input[l.pos+1 : l.pos+1+end]})
	l.pos += end + 2
	return nil
}

// word reads an identifier, keyword or type name. Angle brackets make it a
// type name; commas are allowed between them for tuple<T,T>.
func (l *lexer) word() error {
	start := l.pos
	depth := 0
scan:
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch {
		case isLetter(ch) || isDigit(ch):
		case ch == '<':
			depth++
		case ch == '>':
			depth--
		case ch == ',' && depth > 0:
		default:
			break scan
		}
		l.pos++
	}
	word := l.input[start:l.pos]
	if t, ok := ParseType(word); ok {
		l.emit(Token{Kind: TokType, Type: t})
		return nil
	}
	if strings.ContainsAny(word, "<>,") {
		l.pos = start
		return l.errorf("invalid type name %q", word)
	}
	if op, ok := LookupReserved(word); ok {
		l.emitOp(op)
		return nil
	}
	switch word {
	case "true", "false":
		l.emit(Token{Kind: TokBool, Bool: word == "true"})
	default:
		l.emit(Token{Kind: TokIdent, Text: word})
	}
	return nil
}
