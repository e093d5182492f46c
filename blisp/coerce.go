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

// CoerceTypes unifies two runtime types. Number gives way to any numeric
// type, NegNumber to int and float (never uint); two concrete types only
// unify when identical. The result does not depend on argument order.
func CoerceTypes(a, b AbstractType) (AbstractType, error) {
	if t, ok := coerce(a, b); ok {
		return t, nil
	}
	return AbstractType{}, evalErrorf(ErrCoercion, "unable to coerce %s into %s", b, a)
}

func coerce(a, b AbstractType) (AbstractType, bool) {
	switch a.Kind {
	case AbstractList:
		switch {
		case b.Kind == AbstractList:
			return a, true
		case b.Is(KindList):
			return b, true
		}
	case Number:
		switch b.Kind {
		case Number, NegNumber:
			return b, true
		case Concrete:
			switch b.Type.Kind {
			case KindInt, KindUInt, KindFloat:
				return b, true
			}
		}
	case NegNumber:
		switch b.Kind {
		case Number, NegNumber:
			return a, true
		case Concrete:
			switch b.Type.Kind {
			case KindInt, KindFloat:
				return b, true
			}
		}
	case Concrete:
		if b.Kind != Concrete {
			return coerce(b, a)
		}
		if a.Type.Equal(b.Type) {
			return a, true
		}
	}
	return AbstractType{}, false
}

// unify folds CoerceTypes over a non-empty sequence of types.
func unify(types []AbstractType) (AbstractType, error) {
	result := types[0]
	for _, t := range types[1:] {
		var err error
		if result, err = CoerceTypes(result, t); err != nil {
			return AbstractType{}, err
		}
	}
	return result, nil
}
