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

import "slices"

// concatLists joins two lists of the same type into a fresh one.
func concatLists(a, b Value) Value {
	items := make([]Value, 0, len(a.List)+len(b.List))
	items = append(items, a.List...)
	items = append(items, b.List...)
	return Value{Type: a.Type, List: items}
}

func requireList(name string, v Value) error {
	if !v.Type.Is(KindList) {
		return evalErrorf(ErrType, "%s expects a list, found %s", name, v.Type)
	}
	return nil
}

// count reads a non-negative element count that must not exceed limit.
func count(name string, n Value, limit int) (int, error) {
	var c uint64
	switch {
	case n.Type.Kind == Number, n.Type.Is(KindUInt):
		c = n.UInt
	case n.Type.Kind == NegNumber, n.Type.Is(KindInt):
		if n.Int < 0 {
			return 0, evalErrorf(ErrBounds, "%s count %d is negative", name, n.Int)
		}
		c = uint64(n.Int)
	default:
		return 0, evalErrorf(ErrType, "%s count must be an integer, found %s", name, n.Type)
	}
	if c > uint64(limit) {
		return 0, evalErrorf(ErrBounds, "%s count %d exceeds list length %d", name, c, limit)
	}
	return int(c), nil
}

func init_list() {
	DeclareTitle("Lists")
	Declare(&Declaration{
		"concat", "", "concatenates two lists of the same element type",
		twoValues("a", "b"), "list of the common element type",
		func(ev *Evaluator, a []Argument) (Value, error) {
			t, x, y, err := coerceArgs(a[0].Value, a[1].Value)
			if err != nil {
				return Value{}, err
			}
			if !t.Is(KindList) {
				return Value{}, evalErrorf(ErrType, "concat expects lists, found %s", t)
			}
			return concatLists(x, y), nil
		},
	})
	Declare(&Declaration{
		"prepend", "", "puts an element in front of a list",
		[]DeclarationParameter{
			{"item", ArgValue, "new head, converted to the element type of list"},
			{"list", ArgValue, "list to extend"},
		}, "list",
		func(ev *Evaluator, a []Argument) (Value, error) {
			item, list := a[0].Value, a[1].Value
			if err := requireList("prepend", list); err != nil {
				return Value{}, err
			}
			elem := ConcreteOf(*list.Type.Type.Elem)
			t, err := CoerceTypes(elem, item.Type)
			if err != nil {
				return Value{}, err
			}
			if item, err = item.Convert(t); err != nil {
				return Value{}, err
			}
			return Value{Type: list.Type, List: append([]Value{item}, list.List...)}, nil
		},
	})
	Declare(&Declaration{
		"take", "", "returns the first n elements of a list",
		[]DeclarationParameter{
			{"n", ArgValue, "number of elements, at most the length of list"},
			{"list", ArgValue, "source list"},
		}, "list",
		func(ev *Evaluator, a []Argument) (Value, error) {
			list := a[1].Value
			if err := requireList("take", list); err != nil {
				return Value{}, err
			}
			n, err := count("take", a[0].Value, len(list.List))
			if err != nil {
				return Value{}, err
			}
			return Value{Type: list.Type, List: slices.Clone(list.List[:n])}, nil
		},
	})
	Declare(&Declaration{
		"split", "", "splits a list after n elements",
		[]DeclarationParameter{
			{"n", ArgValue, "length of the first part, at most the length of list"},
			{"list", ArgValue, "source list"},
		}, "tuple of the first n elements and the rest",
		func(ev *Evaluator, a []Argument) (Value, error) {
			list := a[1].Value
			if err := requireList("split", list); err != nil {
				return Value{}, err
			}
			n, err := count("split", a[0].Value, len(list.List))
			if err != nil {
				return Value{}, err
			}
			head := Value{Type: list.Type, List: slices.Clone(list.List[:n])}
			tail := Value{Type: list.Type, List: slices.Clone(list.List[n:])}
			return TupleValue(head, tail), nil
		},
	})
}
