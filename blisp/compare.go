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

import "cmp"

// order compares two operands after coercion. Numbers and chars are ordered.
func order(name string, x, y Value) (int, error) {
	t, a, b, err := coerceArgs(x, y)
	if err != nil {
		return 0, err
	}
	switch {
	case t.Kind == Number, t.Is(KindUInt):
		return cmp.Compare(a.UInt, b.UInt), nil
	case t.Kind == NegNumber, t.Is(KindInt):
		return cmp.Compare(a.Int, b.Int), nil
	case t.Is(KindFloat):
		return cmp.Compare(a.Float, b.Float), nil
	case t.Is(KindChar):
		return cmp.Compare(a.Char, b.Char), nil
	}
	return 0, evalErrorf(ErrType, "%s cannot order values of type %s", name, t)
}

func comparison(name string, accept func(c int) bool) func(*Evaluator, []Argument) (Value, error) {
	return func(ev *Evaluator, a []Argument) (Value, error) {
		c, err := order(name, a[0].Value, a[1].Value)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(accept(c)), nil
	}
}

func equality(negate bool) func(*Evaluator, []Argument) (Value, error) {
	return func(ev *Evaluator, a []Argument) (Value, error) {
		_, x, y, err := coerceArgs(a[0].Value, a[1].Value)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(x.Equal(y) != negate), nil
	}
}

func init_compare() {
	DeclareTitle("Comparison")
	Declare(&Declaration{
		"eq", "", "compares two values structurally; lists and tuples element by element",
		twoValues("a", "b"), "bool", equality(false),
	})
	Declare(&Declaration{
		"neq", "", "negation of eq",
		twoValues("a", "b"), "bool", equality(true),
	})
	Declare(&Declaration{
		"lt", "", "a < b for numbers and chars",
		twoValues("a", "b"), "bool", comparison("lt", func(c int) bool { return c < 0 }),
	})
	Declare(&Declaration{
		"gt", "", "a > b for numbers and chars",
		twoValues("a", "b"), "bool", comparison("gt", func(c int) bool { return c > 0 }),
	})
	Declare(&Declaration{
		"leq", "", "a <= b for numbers and chars",
		twoValues("a", "b"), "bool", comparison("leq", func(c int) bool { return c <= 0 }),
	})
	Declare(&Declaration{
		"geq", "", "a >= b for numbers and chars",
		twoValues("a", "b"), "bool", comparison("geq", func(c int) bool { return c >= 0 }),
	})
}
