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
	"math"
	"math/bits"
)

// coerceArgs unifies the operands of a binary operator and converts both
// payloads to the common type.
func coerceArgs(x, y Value) (AbstractType, Value, Value, error) {
	t, err := CoerceTypes(x.Type, y.Type)
	if err != nil {
		return AbstractType{}, Value{}, Value{}, err
	}
	if x, err = x.Convert(t); err != nil {
		return AbstractType{}, Value{}, Value{}, err
	}
	if y, err = y.Convert(t); err != nil {
		return AbstractType{}, Value{}, Value{}, err
	}
	return t, x, y, nil
}

// arithmetic is one numeric operator implemented per native representation.
// number handles two polymorphic non-negative literals (u64 payloads) and
// may leave the Number domain, e.g. 1 - 2.
type arithmetic struct {
	name     string
	number   func(a, b uint64) (Value, error)
	signed   func(a, b int64) (int64, error)
	unsigned func(a, b uint64) (uint64, error)
	float    func(a, b float64) float64
}

func (op *arithmetic) apply(x, y Value) (Value, error) {
	t, a, b, err := coerceArgs(x, y)
	if err != nil {
		return Value{}, err
	}
	switch {
	case t.Kind == Number:
		return op.number(a.UInt, b.UInt)
	case t.Kind == NegNumber:
		r, err := op.signed(a.Int, b.Int)
		if err != nil {
			return Value{}, err
		}
		return NegNumberValue(r), nil
	case t.Is(KindInt):
		r, err := op.signed(a.Int, b.Int)
		if err != nil {
			return Value{}, err
		}
		return IntValue(r), nil
	case t.Is(KindUInt):
		r, err := op.unsigned(a.UInt, b.UInt)
		if err != nil {
			return Value{}, err
		}
		return UIntValue(r), nil
	case t.Is(KindFloat):
		return FloatValue(op.float(a.Float, b.Float)), nil
	case t.Is(KindUnit) && op.name == "add":
		return UnitValue(), nil
	case t.Is(KindList) && op.name == "add":
		return concatLists(a, b), nil
	}
	return Value{}, evalErrorf(ErrType, "unable to %s values of type %s", op.name, t)
}

func overflow(name string, a, b any) error {
	return evalErrorf(ErrBounds, "%s of %v and %v overflows", name, a, b)
}

func divisionByZero() error {
	return evalErrorf(ErrBounds, "division by zero")
}

var opAdd = &arithmetic{
	name: "add",
	number: func(a, b uint64) (Value, error) {
		r, carry := bits.Add64(a, b, 0)
		if carry != 0 {
			return Value{}, overflow("add", a, b)
		}
		return NumberValue(r), nil
	},
	signed: func(a, b int64) (int64, error) {
		if b > 0 && a > math.MaxInt64-b || b < 0 && a < math.MinInt64-b {
			return 0, overflow("add", a, b)
		}
		return a + b, nil
	},
	unsigned: func(a, b uint64) (uint64, error) {
		r, carry := bits.Add64(a, b, 0)
		if carry != 0 {
			return 0, overflow("add", a, b)
		}
		return r, nil
	},
	float: func(a, b float64) float64 { return a + b },
}

var opSub = &arithmetic{
	name: "sub",
	number: func(a, b uint64) (Value, error) {
		if a >= b {
			return NumberValue(a - b), nil
		}
		if b-a > 1<<63 {
			return Value{}, overflow("sub", a, b)
		}
		return NegNumberValue(int64(-(b - a))), nil
	},
	signed: func(a, b int64) (int64, error) {
		if b < 0 && a > math.MaxInt64+b || b > 0 && a < math.MinInt64+b {
			return 0, overflow("sub", a, b)
		}
		return a - b, nil
	},
	unsigned: func(a, b uint64) (uint64, error) {
		if a < b {
			return 0, overflow("sub", a, b)
		}
		return a - b, nil
	},
	float: func(a, b float64) float64 { return a - b },
}

var opMul = &arithmetic{
	name: "mul",
	number: func(a, b uint64) (Value, error) {
		hi, lo := bits.Mul64(a, b)
		if hi != 0 {
			return Value{}, overflow("mul", a, b)
		}
		return NumberValue(lo), nil
	},
	signed: func(a, b int64) (int64, error) {
		if a == 0 || b == 0 {
			return 0, nil
		}
		r := a * b
		if r/b != a || a == -1 && b == math.MinInt64 || b == -1 && a == math.MinInt64 {
			return 0, overflow("mul", a, b)
		}
		return r, nil
	},
	unsigned: func(a, b uint64) (uint64, error) {
		hi, lo := bits.Mul64(a, b)
		if hi != 0 {
			return 0, overflow("mul", a, b)
		}
		return lo, nil
	},
	float: func(a, b float64) float64 { return a * b },
}

var opDiv = &arithmetic{
	name: "div",
	number: func(a, b uint64) (Value, error) {
		if b == 0 {
			return Value{}, divisionByZero()
		}
		return NumberValue(a / b), nil
	},
	signed: func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, divisionByZero()
		}
		if a == math.MinInt64 && b == -1 {
			return 0, overflow("div", a, b)
		}
		return a / b, nil
	},
	unsigned: func(a, b uint64) (uint64, error) {
		if b == 0 {
			return 0, divisionByZero()
		}
		return a / b, nil
	},
	// floats follow IEEE 754, x/0 is an infinity
	float: func(a, b float64) float64 { return a / b },
}

func logic(name string, fn func(a, b bool) bool) func(*Evaluator, []Argument) (Value, error) {
	return func(ev *Evaluator, a []Argument) (Value, error) {
		t, x, y, err := coerceArgs(a[0].Value, a[1].Value)
		if err != nil {
			return Value{}, err
		}
		if !t.Is(KindBool) {
			return Value{}, evalErrorf(ErrType, "%s expects Bool operands, found %s", name, t)
		}
		return BoolValue(fn(x.Bool, y.Bool)), nil
	}
}

func binary(op *arithmetic) func(*Evaluator, []Argument) (Value, error) {
	return func(ev *Evaluator, a []Argument) (Value, error) {
		return op.apply(a[0].Value, a[1].Value)
	}
}

func twoValues(first, second string) []DeclarationParameter {
	return []DeclarationParameter{
		{first, ArgValue, "left operand"},
		{second, ArgValue, "right operand, coerced to the type of the left one or vice versa"},
	}
}

func init_alu() {
	DeclareTitle("Arithmetic / Logic")
	Declare(&Declaration{
		"add", "+", "adds two numbers; () + () is (), two lists are concatenated",
		twoValues("a", "b"), "common type of a and b", binary(opAdd),
	})
	Declare(&Declaration{
		"sub", "-", "subtracts b from a",
		twoValues("a", "b"), "common type of a and b", binary(opSub),
	})
	Declare(&Declaration{
		"div", "/", "divides a by b; integer division truncates, division by zero fails for integers",
		twoValues("a", "b"), "common type of a and b", binary(opDiv),
	})
	Declare(&Declaration{
		"mul", "*", "multiplies a and b",
		twoValues("a", "b"), "common type of a and b", binary(opMul),
	})
	Declare(&Declaration{
		"and", "", "logical and of two Bools",
		twoValues("a", "b"), "bool", logic("and", func(a, b bool) bool { return a && b }),
	})
	Declare(&Declaration{
		"or", "", "logical or of two Bools",
		twoValues("a", "b"), "bool", logic("or", func(a, b bool) bool { return a || b }),
	})
}
