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

import "strings"

// Kind enumerates the concrete type universe.
type Kind uint8

const (
	KindInt Kind = iota
	KindUInt
	KindFloat
	KindList
	KindTuple
	KindUnit
	KindChar
	KindBool
)

var kindNames = [...]string{"Int", "UInt", "Float", "List", "Tuple", "Unit", "Char", "Bool"}
var kindSyntax = [...]string{"int", "uint", "float", "list", "tuple", "unit", "char", "bool"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Type is a fully resolved type. Elem is the list element or the first tuple
// member, Second the second tuple member.
type Type struct {
	Kind   Kind
	Elem   *Type
	Second *Type
}

var (
	IntType   = Type{Kind: KindInt}
	UIntType  = Type{Kind: KindUInt}
	FloatType = Type{Kind: KindFloat}
	UnitType  = Type{Kind: KindUnit}
	CharType  = Type{Kind: KindChar}
	BoolType  = Type{Kind: KindBool}
)

func ListOf(elem Type) Type {
	return Type{Kind: KindList, Elem: &elem}
}

func TupleOf(first, second Type) Type {
	return Type{Kind: KindTuple, Elem: &first, Second: &second}
}

// StringType is how string literals are typed: a list of chars.
var StringType = ListOf(CharType)

func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case KindList:
		return t.Elem.Equal(*o.Elem)
	case KindTuple:
		return t.Elem.Equal(*o.Elem) && t.Second.Equal(*o.Second)
	}
	return true
}

// String renders the type for diagnostics, e.g. List<Int>.
func (t Type) String() string {
	switch t.Kind {
	case KindList:
		return "List<" + t.Elem.String() + ">"
	case KindTuple:
		return "Tuple<" + t.Elem.String() + "," + t.Second.String() + ">"
	}
	return t.Kind.String()
}

// Syntax renders the type the way it is written in programs, e.g. list<int>.
func (t Type) Syntax() string {
	switch t.Kind {
	case KindList:
		return "list<" + t.Elem.Syntax() + ">"
	case KindTuple:
		return "tuple<" + t.Elem.Syntax() + "," + t.Second.Syntax() + ">"
	}
	return kindSyntax[t.Kind]
}

// ParseType reads a type name: int | uint | float | unit | char | bool |
// list<T> | tuple<T,T>, nested arbitrarily.
func ParseType(s string) (Type, bool) {
	switch s {
	case "int":
		return IntType, true
	case "uint":
		return UIntType, true
	case "float":
		return FloatType, true
	case "unit":
		return UnitType, true
	case "char":
		return CharType, true
	case "bool":
		return BoolType, true
	}
	if !strings.HasSuffix(s, ">") {
		return Type{}, false
	}
	if inner, ok := strings.CutPrefix(s, "list<"); ok {
		elem, ok := ParseType(inner[:len(inner)-1])
		if !ok {
			return Type{}, false
		}
		return ListOf(elem), true
	}
	if inner, ok := strings.CutPrefix(s, "tuple<"); ok {
		inner = inner[:len(inner)-1]
		depth := 0
		for i := 0; i < len(inner); i++ {
			switch inner[i] {
			case '<':
				depth++
			case '>':
				depth--
			case ',':
				if depth != 0 {
					continue
				}
				first, ok1 := ParseType(inner[:i])
				second, ok2 := ParseType(inner[i+1:])
				if !ok1 || !ok2 {
					return Type{}, false
				}
				return TupleOf(first, second), true
			}
		}
	}
	return Type{}, false
}

// AbstractKind tells whether an AbstractType is resolved or still polymorphic.
type AbstractKind uint8

const (
	// Concrete carries a resolved Type.
	Concrete AbstractKind = iota
	// Number is an unsuffixed non-negative integer literal: uint, int or float.
	Number
	// NegNumber is an unsuffixed negative integer literal: int or float.
	NegNumber
	// AbstractList is a list whose element type is not known yet.
	AbstractList
)

// AbstractType is the runtime type tag of a Value.
type AbstractType struct {
	Kind AbstractKind
	Type Type // only for Concrete
}

var (
	NumberAbstract    = AbstractType{Kind: Number}
	NegNumberAbstract = AbstractType{Kind: NegNumber}
	ListAbstract      = AbstractType{Kind: AbstractList}
)

func ConcreteOf(t Type) AbstractType {
	return AbstractType{Kind: Concrete, Type: t}
}

func (a AbstractType) Equal(b AbstractType) bool {
	if a.Kind != b.Kind {
		return false
	}
	return a.Kind != Concrete || a.Type.Equal(b.Type)
}

// Is reports whether a is the concrete type of kind k.
func (a AbstractType) Is(k Kind) bool {
	return a.Kind == Concrete && a.Type.Kind == k
}

func (a AbstractType) String() string {
	switch a.Kind {
	case Number:
		return "Number"
	case NegNumber:
		return "NegNumber"
	case AbstractList:
		return "List"
	}
	return a.Type.String()
}

// Default picks the concrete type a polymorphic number settles on when
// nothing else forces it: Int for both Number and NegNumber.
func (a AbstractType) Default() AbstractType {
	switch a.Kind {
	case Number, NegNumber:
		return ConcreteOf(IntType)
	}
	return a
}
