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

import "github.com/google/btree"

type variable struct {
	name  string
	value *Value
	typ   *AbstractType // set by init, assignments are converted to it
}

// State is the variable environment of one program evaluation. Variables
// are kept ordered by name so they can be listed.
type State struct {
	vars *btree.BTreeG[*variable]
}

func NewState() *State {
	return &State{btree.NewG[*variable](8, func(a, b *variable) bool {
		return a.name < b.name
	})}
}

func (s *State) lookup(ident string) (*variable, bool) {
	return s.vars.Get(&variable{name: ident})
}

// CreateVar declares ident, optionally with a value. Redeclaration fails.
func (s *State) CreateVar(ident string, value *Value) error {
	if s.vars.Has(&variable{name: ident}) {
		return evalErrorf(ErrRedeclared, "variable %s is already declared", ident)
	}
	s.vars.ReplaceOrInsert(&variable{name: ident, value: value})
	return nil
}

// CreateTypedVar declares ident without a value; later assignments are
// coerced to t.
func (s *State) CreateTypedVar(ident string, t Type) error {
	if err := s.CreateVar(ident, nil); err != nil {
		return err
	}
	v, _ := s.lookup(ident)
	at := ConcreteOf(t)
	v.typ = &at
	return nil
}

// SetVar assigns a declared variable and returns the stored value.
func (s *State) SetVar(ident string, value Value) (Value, error) {
	v, ok := s.lookup(ident)
	if !ok {
		return Value{}, evalErrorf(ErrUndeclared, "cannot set undeclared variable %s", ident)
	}
	if v.typ != nil {
		t, err := CoerceTypes(*v.typ, value.Type)
		if err != nil {
			return Value{}, err
		}
		if value, err = value.Convert(t); err != nil {
			return Value{}, err
		}
	}
	v.value = &value
	return value, nil
}

// GetVar fails differently for unknown and for declared but unset variables.
func (s *State) GetVar(ident string) (Value, error) {
	v, ok := s.lookup(ident)
	if !ok {
		return Value{}, evalErrorf(ErrUnbound, "unknown identifier %s", ident)
	}
	if v.value == nil {
		return Value{}, evalErrorf(ErrUnset, "variable %s is declared but not set", ident)
	}
	return *v.value, nil
}

// Vars visits all variables in name order; value is nil for unset ones.
func (s *State) Vars(fn func(ident string, value *Value) bool) {
	s.vars.Ascend(func(v *variable) bool {
		return fn(v.name, v.value)
	})
}

func (s *State) Len() int {
	return s.vars.Len()
}

func init_vars() {
	DeclareTitle("Variables")
	Declare(&Declaration{
		"set", "", "assigns a value to a declared variable",
		[]DeclarationParameter{
			{"variable", ArgIdent, "variable declared with def or init"},
			{"value", ArgValue, "new value; converted to the declared type of init"},
		}, "the assigned value",
		func(ev *Evaluator, a []Argument) (Value, error) {
			return ev.State.SetVar(a[0].Ident, a[1].Value)
		},
	})
	Declare(&Declaration{
		"init", "", "declares a variable of a type without a value",
		[]DeclarationParameter{
			{"variable", ArgIdent, "name of the new variable"},
			{"type", ArgType, "type later assignments are converted to"},
		}, "()",
		func(ev *Evaluator, a []Argument) (Value, error) {
			if err := ev.State.CreateTypedVar(a[0].Ident, a[1].Type); err != nil {
				return Value{}, err
			}
			return UnitValue(), nil
		},
	})
	Declare(&Declaration{
		"def", "", "declares a variable and assigns its value",
		[]DeclarationParameter{
			{"variable", ArgIdent, "name of the new variable"},
			{"value", ArgValue, "initial value"},
		}, "the assigned value",
		func(ev *Evaluator, a []Argument) (Value, error) {
			v := a[1].Value
			if err := ev.State.CreateVar(a[0].Ident, &v); err != nil {
				return Value{}, err
			}
			return v, nil
		},
	})
}
