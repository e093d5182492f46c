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

func TestStateLifecycle(t *testing.T) {
	s := NewState()

	_, err := s.GetVar("a")
	assert.True(t, IsKind(err, ErrUnbound))

	require.NoError(t, s.CreateVar("a", nil))
	_, err = s.GetVar("a")
	assert.True(t, IsKind(err, ErrUnset))

	err = s.CreateVar("a", nil)
	assert.True(t, IsKind(err, ErrRedeclared))

	v, err := s.SetVar("a", CharValue('x'))
	require.NoError(t, err)
	assert.Equal(t, byte('x'), v.Char)
	got, err := s.GetVar("a")
	require.NoError(t, err)
	assert.True(t, got.Equal(CharValue('x')))

	_, err = s.SetVar("b", UnitValue())
	assert.True(t, IsKind(err, ErrUndeclared))
}

func TestStateTypedVar(t *testing.T) {
	s := NewState()
	require.NoError(t, s.CreateTypedVar("n", UIntType))

	v, err := s.SetVar("n", NumberValue(7))
	require.NoError(t, err)
	assert.True(t, v.Type.Is(KindUInt))
	assert.Equal(t, uint64(7), v.UInt)

	_, err = s.SetVar("n", NegNumberValue(-1))
	assert.True(t, IsKind(err, ErrCoercion))

	require.NoError(t, s.CreateTypedVar("xs", ListOf(FloatType)))
	list, err := listOf([]Value{NumberValue(1), FloatValue(0.5)})
	require.NoError(t, err)
	v, err = s.SetVar("xs", list)
	require.NoError(t, err)
	assert.Equal(t, "[1.0 0.5]", v.String())
}

func TestStateVarsOrdered(t *testing.T) {
	s := NewState()
	one := NumberValue(1)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, s.CreateVar(name, &one))
	}
	require.NoError(t, s.CreateVar("unset", nil))

	var names []string
	unset := 0
	s.Vars(func(ident string, value *Value) bool {
		names = append(names, ident)
		if value == nil {
			unset++
		}
		return true
	})
	assert.Equal(t, []string{"alpha", "mid", "unset", "zeta"}, names)
	assert.Equal(t, 1, unset)
	assert.Equal(t, 4, s.Len())
}
