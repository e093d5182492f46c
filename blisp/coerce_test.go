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

var lattice = []AbstractType{
	NumberAbstract,
	NegNumberAbstract,
	ListAbstract,
	ConcreteOf(IntType),
	ConcreteOf(UIntType),
	ConcreteOf(FloatType),
	ConcreteOf(UnitType),
	ConcreteOf(CharType),
	ConcreteOf(BoolType),
	ConcreteOf(StringType),
	ConcreteOf(ListOf(IntType)),
	ConcreteOf(ListOf(ListOf(UIntType))),
	ConcreteOf(TupleOf(IntType, CharType)),
	ConcreteOf(TupleOf(CharType, IntType)),
}

func TestCoerceSymmetric(t *testing.T) {
	for _, a := range lattice {
		for _, b := range lattice {
			ab, errAB := CoerceTypes(a, b)
			ba, errBA := CoerceTypes(b, a)
			if errAB != nil || errBA != nil {
				assert.Error(t, errAB, "%s, %s", a, b)
				assert.Error(t, errBA, "%s, %s", b, a)
				continue
			}
			assert.True(t, ab.Equal(ba), "%s, %s gives %s and %s", a, b, ab, ba)
		}
	}
}

func TestCoerceReflexive(t *testing.T) {
	for _, a := range lattice {
		got, err := CoerceTypes(a, a)
		require.NoError(t, err, a.String())
		assert.True(t, got.Equal(a), a.String())
	}
}

func TestCoerceTable(t *testing.T) {
	cases := []struct {
		a, b AbstractType
		want AbstractType
	}{
		{NumberAbstract, NegNumberAbstract, NegNumberAbstract},
		{NumberAbstract, ConcreteOf(UIntType), ConcreteOf(UIntType)},
		{NumberAbstract, ConcreteOf(FloatType), ConcreteOf(FloatType)},
		{NegNumberAbstract, ConcreteOf(IntType), ConcreteOf(IntType)},
		{NegNumberAbstract, ConcreteOf(FloatType), ConcreteOf(FloatType)},
		{ListAbstract, ConcreteOf(StringType), ConcreteOf(StringType)},
	}
	for _, c := range cases {
		got, err := CoerceTypes(c.a, c.b)
		require.NoError(t, err)
		assert.True(t, got.Equal(c.want), "%s, %s gives %s", c.a, c.b, got)
	}
}

func TestCoerceFailures(t *testing.T) {
	cases := [][2]AbstractType{
		{NegNumberAbstract, ConcreteOf(UIntType)},
		{NumberAbstract, ConcreteOf(CharType)},
		{ConcreteOf(IntType), ConcreteOf(FloatType)},
		{ConcreteOf(ListOf(IntType)), ConcreteOf(ListOf(UIntType))},
		{ListAbstract, ConcreteOf(IntType)},
		{NumberAbstract, ListAbstract},
	}
	for _, c := range cases {
		_, err := CoerceTypes(c[0], c[1])
		assert.True(t, IsKind(err, ErrCoercion), "%s, %s", c[0], c[1])
	}
}

func TestCoerceErrorNamesBothTypes(t *testing.T) {
	_, err := CoerceTypes(ConcreteOf(UIntType), ConcreteOf(FloatType))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UInt")
	assert.Contains(t, err.Error(), "Float")
}

func TestUnify(t *testing.T) {
	got, err := unify([]AbstractType{NumberAbstract, NegNumberAbstract, NumberAbstract})
	require.NoError(t, err)
	assert.Equal(t, NegNumber, got.Kind)
	assert.True(t, got.Default().Is(KindInt))

	_, err = unify([]AbstractType{NumberAbstract, ConcreteOf(UIntType), NegNumberAbstract})
	assert.Error(t, err)
}
