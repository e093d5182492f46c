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

import "fmt"
import "strconv"

type TokenKind uint8

const (
	TokNum TokenKind = iota
	TokChar
	TokUnit
	TokString
	TokBool
	TokIdent
	TokType
	TokReserved
	TokLParen
	TokRParen
	TokLBrack
	TokRBrack
	TokEOF
)

// Token is one lexical unit. Only the field matching Kind is set.
type Token struct {
	Kind TokenKind
	Num  NumLiteral
	Char byte
	Bool bool
	Text string // string literal or identifier
	Type Type
	Op   Reserved
}

func (t Token) String() string {
	switch t.Kind {
	case TokNum:
		return "number " + t.Num.String()
	case TokChar:
		return fmt.Sprintf("char %q", t.Char)
	case TokUnit:
		return "unit ()"
	case TokString:
		return "string " + strconv.Quote(t.Text)
	case TokBool:
		return "bool " + strconv.FormatBool(t.Bool)
	case TokIdent:
		return "identifier " + t.Text
	case TokType:
		return "type " + t.Type.Syntax()
	case TokReserved:
		return "reserved operator " + t.Op.String()
	case TokLParen:
		return "'('"
	case TokRParen:
		return "')'"
	case TokLBrack:
		return "'['"
	case TokRBrack:
		return "']'"
	}
	return "end of input"
}

type Suffix uint8

const (
	SuffixNone Suffix = iota
	SuffixUnsigned
	SuffixFloat
	SuffixChar
)

// NumLiteral is a numeric literal as written. DecPart holds the fraction
// digits as an integer, DecDigits how many of them there were, so 1.05 is
// {IntPart: 1, DecPart: 5, DecDigits: 2}.
type NumLiteral struct {
	Negative  bool
	IntPart   uint64
	Float     bool
	DecPart   uint64
	DecDigits int
	Suffix    Suffix
}

func (n NumLiteral) String() string {
	s := strconv.FormatUint(n.IntPart, 10)
	if n.Negative {
		s = "-" + s
	}
	if n.Float {
		s += "."
		if n.DecDigits > 0 {
			s += fmt.Sprintf("%0*d", n.DecDigits, n.DecPart)
		}
	}
	switch n.Suffix {
	case SuffixUnsigned:
		s += "u"
	case SuffixFloat:
		s += "f"
	case SuffixChar:
		s += "c"
	}
	return s
}

// float64 scales the fraction by its digit count.
func (n NumLiteral) float64() float64 {
	s := strconv.FormatUint(n.IntPart, 10)
	if n.DecDigits > 0 {
		s += fmt.Sprintf(".%0*d", n.DecDigits, n.DecPart)
	}
	f, _ := strconv.ParseFloat(s, 64)
	if n.Negative {
		return -f
	}
	return f
}

// Reserved is a builtin operator keyword.
type Reserved uint8

const (
	OpAdd Reserved = iota
	OpSub
	OpDiv
	OpMul
	OpWrite
	OpRead
	OpIf
	OpWhile
	OpEq
	OpNeq
	OpLeq
	OpGeq
	OpLt
	OpGt
	OpAnd
	OpOr
	OpSet
	OpInit
	OpDef
	OpConcat
	OpPrepend
	OpTake
	OpSplit
	OpEval
	OpToString
	numReserved
)

var reservedNames = [numReserved]string{
	"add", "sub", "div", "mul",
	"write", "read",
	"if", "while",
	"eq", "neq", "leq", "geq", "lt", "gt", "and", "or",
	"set", "init", "def",
	"concat", "prepend", "take", "split",
	"eval", "tostring",
}

var reservedByName = func() map[string]Reserved {
	m := make(map[string]Reserved, numReserved)
	for i, name := range reservedNames {
		m[name] = Reserved(i)
	}
	return m
}()

func (r Reserved) String() string {
	if r < numReserved {
		return reservedNames[r]
	}
	return "Reserved(?)"
}

// LookupReserved finds the operator for a keyword. Keywords are lowercase and
// case-sensitive.
func LookupReserved(word string) (Reserved, bool) {
	op, ok := reservedByName[word]
	return op, ok
}
