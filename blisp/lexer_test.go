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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(lit NumLiteral) Token   { return Token{Kind: TokNum, Num: lit} }
func op(r Reserved) Token        { return Token{Kind: TokReserved, Op: r} }
func ident(name string) Token    { return Token{Kind: TokIdent, Text: name} }
func typeTok(t Type) Token       { return Token{Kind: TokType, Type: t} }
func punct(kind TokenKind) Token { return Token{Kind: kind} }

func kinds(tokens []Token) []TokenKind {
	result := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		result[i] = tok.Kind
	}
	return result
}

func TestTokenizeCall(t *testing.T) {
	tokens, err := Tokenize("(+ 1.5 1)")
	require.NoError(t, err)
	assert.Equal(t, []Token{
		punct(TokLParen),
		op(OpAdd),
		num(NumLiteral{IntPart: 1, Float: true, DecPart: 5, DecDigits: 1}),
		num(NumLiteral{IntPart: 1}),
		punct(TokRParen),
		punct(TokEOF),
	}, tokens)
}

func TestTokenizeOperatorSpellings(t *testing.T) {
	pairs := [][2]string{
		{"(+ 2 (add 1.5 1))", "(add 2 (add 1.5 1))"},
		{"(- 5 3)", "(sub 5 3)"},
		{"(* 2 3)", "(mul 2 3)"},
		{"(/ 6 3)", "(div 6 3)"},
	}
	for _, p := range pairs {
		a, err := Tokenize(p[0])
		require.NoError(t, err)
		b, err := Tokenize(p[1])
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s vs %s", p[0], p[1])
	}
}

func TestTokenizeNumbers(t *testing.T) {
	cases := []struct {
		src string
		lit NumLiteral
	}{
		{"0", NumLiteral{}},
		{"42", NumLiteral{IntPart: 42}},
		{"-7", NumLiteral{Negative: true, IntPart: 7}},
		{"3u", NumLiteral{IntPart: 3, Suffix: SuffixUnsigned}},
		{"3f", NumLiteral{IntPart: 3, Suffix: SuffixFloat}},
		{"65c", NumLiteral{IntPart: 65, Suffix: SuffixChar}},
		{"1.04", NumLiteral{IntPart: 1, Float: true, DecPart: 4, DecDigits: 2}},
		{"1.4", NumLiteral{IntPart: 1, Float: true, DecPart: 4, DecDigits: 1}},
		{"2.", NumLiteral{IntPart: 2, Float: true}},
		{"-0.5f", NumLiteral{Negative: true, Float: true, DecPart: 5, DecDigits: 1, Suffix: SuffixFloat}},
		{"18446744073709551615", NumLiteral{IntPart: 18446744073709551615}},
	}
	for _, c := range cases {
		tokens, err := Tokenize(c.src)
		require.NoError(t, err, c.src)
		assert.Equal(t, []Token{num(c.lit), punct(TokEOF)}, tokens, c.src)
	}
}

func TestTokenizeNumberErrors(t *testing.T) {
	for _, src := range []string{
		"1.2.3",
		"12a",
		"1u2",
		"256c",
		"-1c",
		"1.5c",
		"18446744073709551616",
		"-x",
	} {
		_, err := Tokenize(src)
		var le *LexError
		assert.ErrorAs(t, err, &le, src)
	}
}

func TestTokenizeSubtraction(t *testing.T) {
	tokens, err := Tokenize("(- -1 2)")
	require.NoError(t, err)
	assert.Equal(t, []Token{
		punct(TokLParen),
		op(OpSub),
		num(NumLiteral{Negative: true, IntPart: 1}),
		num(NumLiteral{IntPart: 2}),
		punct(TokRParen),
		punct(TokEOF),
	}, tokens)
}

func TestTokenizeLiterals(t *testing.T) {
	tokens, err := Tokenize(`('a' ''' "hi there" () true false)`)
	require.NoError(t, err)
	assert.Equal(t, []Token{
		punct(TokLParen),
		{Kind: TokChar, Char: 'a'},
		{Kind: TokChar, Char: '\''},
		{Kind: TokString, Text: "hi there"},
		punct(TokUnit),
		{Kind: TokBool, Bool: true},
		{Kind: TokBool, Bool: false},
		punct(TokRParen),
		punct(TokEOF),
	}, tokens)

	_, err = Tokenize("'ab'")
	assert.Error(t, err)
	_, err = Tokenize(`"open`)
	assert.Error(t, err)
}

func TestTokenizeUnitNeedsNoGap(t *testing.T) {
	tokens, err := Tokenize("( )")
	require.NoError(t, err)
	assert.Equal(t, []TokenKind{TokLParen, TokRParen, TokEOF}, kinds(tokens))
}

func TestTokenizeWords(t *testing.T) {
	tokens, err := Tokenize("(init xs list<tuple<int,list<char>>>)")
	require.NoError(t, err)
	assert.Equal(t, []Token{
		punct(TokLParen),
		op(OpInit),
		ident("xs"),
		typeTok(ListOf(TupleOf(IntType, StringType))),
		punct(TokRParen),
		punct(TokEOF),
	}, tokens)

	tokens, err = Tokenize("uint float2 tostring Add")
	require.NoError(t, err)
	assert.Equal(t, []Token{typeTok(UIntType), ident("float2"), op(OpToString), ident("Add"), punct(TokEOF)}, tokens)

	_, err = Tokenize("list<foo>")
	assert.Error(t, err)
}

func TestTokenizeFiltersNonASCII(t *testing.T) {
	tokens, err := Tokenize("(+ 1 ü2)")
	require.NoError(t, err)
	assert.Equal(t, []TokenKind{TokLParen, TokReserved, TokNum, TokNum, TokRParen, TokEOF}, kinds(tokens))
	assert.Equal(t, uint64(2), tokens[3].Num.IntPart)
}

func TestTokenizeUnknownCharacter(t *testing.T) {
	_, err := Tokenize("(+ 1 #)")
	var le *LexError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 5, le.Pos)
}
