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

import "math"

// Value is an evaluated datum. The payload field used depends on Type:
// Int for Int and NegNumber, UInt for UInt and Number, List for lists and
// (two element) tuples. Elements of a List<T> are all converted to T.
type Value struct {
	Type  AbstractType
	Int   int64
	UInt  uint64
	Float float64
	Char  byte
	Bool  bool
	List  []Value
}

func IntValue(i int64) Value       { return Value{Type: ConcreteOf(IntType), Int: i} }
func UIntValue(u uint64) Value     { return Value{Type: ConcreteOf(UIntType), UInt: u} }
func FloatValue(f float64) Value   { return Value{Type: ConcreteOf(FloatType), Float: f} }
func CharValue(c byte) Value       { return Value{Type: ConcreteOf(CharType), Char: c} }
func BoolValue(b bool) Value       { return Value{Type: ConcreteOf(BoolType), Bool: b} }
func UnitValue() Value             { return Value{Type: ConcreteOf(UnitType)} }
func NumberValue(u uint64) Value   { return Value{Type: NumberAbstract, UInt: u} }
func NegNumberValue(i int64) Value { return Value{Type: NegNumberAbstract, Int: i} }
func ListValue(elem Type, items []Value) Value {
	return Value{Type: ConcreteOf(ListOf(elem)), List: items}
}

func TupleValue(a, b Value) Value {
	return Value{Type: ConcreteOf(TupleOf(a.Type.Type, b.Type.Type)), List: []Value{a, b}}
}

// StringValue turns s into a List<Char>.
func StringValue(s string) Value {
	items := make([]Value, len(s))
	for i := 0; i < len(s); i++ {
		items[i] = CharValue(s[i])
	}
	return ListValue(CharType, items)
}

// IsString reports whether v is a List<Char>.
func (v Value) IsString() bool {
	return v.Type.Kind == Concrete && v.Type.Type.Equal(StringType)
}

// Chars extracts the bytes of a List<Char>.
func (v Value) Chars() string {
	b := make([]byte, len(v.List))
	for i, c := range v.List {
		b[i] = c.Char
	}
	return string(b)
}

// ValueFromLiteral resolves a numeric literal. Unsuffixed integers stay
// polymorphic (Number or NegNumber) until an operation pins them down.
func ValueFromLiteral(n NumLiteral) (Value, error) {
	switch n.Suffix {
	case SuffixNone:
		if n.Float {
			return FloatValue(n.float64()), nil
		}
		if n.Negative {
			if n.IntPart > 1<<63 {
				return Value{}, evalErrorf(ErrLiteral, "literal %s does not fit a signed integer", n)
			}
			return NegNumberValue(int64(-n.IntPart)), nil
		}
		return NumberValue(n.IntPart), nil
	case SuffixFloat:
		return FloatValue(n.float64()), nil
	case SuffixUnsigned:
		if !n.Negative && !n.Float {
			return UIntValue(n.IntPart), nil
		}
	case SuffixChar:
		if !n.Negative && !n.Float && n.IntPart <= math.MaxUint8 {
			return CharValue(byte(n.IntPart)), nil
		}
	}
	return Value{}, evalErrorf(ErrLiteral, "invalid literal %s", n)
}

// Convert moves v to the type to, which must be what CoerceTypes settled on
// for v's type. Polymorphic payloads are rewritten, lists element-wise.
func (v Value) Convert(to AbstractType) (Value, error) {
	if v.Type.Equal(to) {
		return v, nil
	}
	switch v.Type.Kind {
	case Number:
		switch {
		case to.Kind == NegNumber:
			if v.UInt > math.MaxInt64 {
				return Value{}, evalErrorf(ErrBounds, "%d does not fit a signed integer", v.UInt)
			}
			return NegNumberValue(int64(v.UInt)), nil
		case to.Is(KindInt):
			if v.UInt > math.MaxInt64 {
				return Value{}, evalErrorf(ErrBounds, "%d does not fit an Int", v.UInt)
			}
			return IntValue(int64(v.UInt)), nil
		case to.Is(KindUInt):
			return UIntValue(v.UInt), nil
		case to.Is(KindFloat):
			return FloatValue(float64(v.UInt)), nil
		}
	case NegNumber:
		switch {
		case to.Is(KindInt):
			return IntValue(v.Int), nil
		case to.Is(KindFloat):
			return FloatValue(float64(v.Int)), nil
		}
	case Concrete:
		if v.Type.Type.Kind == KindList && to.Is(KindList) {
			elem := ConcreteOf(*to.Type.Elem)
			items := make([]Value, len(v.List))
			for i, item := range v.List {
				var err error
				if items[i], err = item.Convert(elem); err != nil {
					return Value{}, err
				}
			}
			return Value{Type: to, List: items}, nil
		}
	}
	return Value{}, evalErrorf(ErrCoercion, "unable to coerce %s into %s", v.Type, to)
}

// Resolve settles polymorphic numbers on their default concrete type.
func (v Value) Resolve() (Value, error) {
	return v.Convert(v.Type.Default())
}

// listOf types a sequence of elements: their types are folded with
// CoerceTypes and every element is converted to the unified type.
func listOf(items []Value) (Value, error) {
	if len(items) == 0 {
		return Value{}, evalErrorf(ErrHeterogeneous, "a list needs at least one element")
	}
	types := make([]AbstractType, len(items))
	for i, item := range items {
		types[i] = item.Type
	}
	t, err := unify(types)
	if err != nil {
		return Value{}, evalErrorf(ErrHeterogeneous, "list elements do not share a type: %s", err.(*EvalError).Msg)
	}
	t = t.Default()
	if t.Kind != Concrete {
		return Value{}, evalErrorf(ErrHeterogeneous, "list element type %s is not concrete", t)
	}
	converted := make([]Value, len(items))
	for i, item := range items {
		if converted[i], err = item.Convert(t); err != nil {
			return Value{}, err
		}
	}
	return ListValue(t.Type, converted), nil
}

// Equal compares two values of the same (already coerced) type structurally.
func (v Value) Equal(o Value) bool {
	if !v.Type.Equal(o.Type) {
		return false
	}
	switch v.Type.Kind {
	case Number:
		return v.UInt == o.UInt
	case NegNumber:
		return v.Int == o.Int
	}
	switch v.Type.Type.Kind {
	case KindInt:
		return v.Int == o.Int
	case KindUInt:
		return v.UInt == o.UInt
	case KindFloat:
		return v.Float == o.Float
	case KindChar:
		return v.Char == o.Char
	case KindBool:
		return v.Bool == o.Bool
	case KindList, KindTuple:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(o.List[i]) {
				return false
			}
		}
	}
	return true
}
