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
	"bufio"
	"io"
	"os"
)

var stdin = bufio.NewReader(os.Stdin)

// Evaluator walks syntax trees against one State. In and Out serve the
// write and read operators.
type Evaluator struct {
	State             *State
	In                *bufio.Reader
	Out               io.Writer
	MaxLoopIterations int // 0 = unlimited
}

func NewEvaluator(state *State) *Evaluator {
	return &Evaluator{
		State:             state,
		In:                stdin,
		Out:               os.Stdout,
		MaxLoopIterations: Settings.MaxLoopIterations,
	}
}

// Eval evaluates a parsed program with a fresh State.
func Eval(tree Node) (Value, error) {
	return NewEvaluator(NewState()).Eval(tree)
}

func (ev *Evaluator) Eval(tree Node) (Value, error) {
	return ev.eval(tree)
}

/*
 Eval / Apply
*/

func (ev *Evaluator) eval(n Node) (Value, error) {
	switch n := n.(type) {
	case *Leaf:
		return ev.evalLeaf(n.Token)
	case *RuleNode:
		switch n.Rule {
		case RuleProg, RuleExpr, RuleExprBody, RuleVal:
			return ev.eval(n.Children[0])
		case RuleList:
			return ev.evalList(n.Children[0].(*RuleNode))
		case RuleFuncCall:
			return ev.evalCall(n)
		case RuleArgs, RuleListBody:
			return Value{}, evalErrorf(ErrType, "%s can only be evaluated through its parent", n.Rule)
		}
	}
	return Value{}, evalErrorf(ErrType, "cannot evaluate %v", n)
}

func (ev *Evaluator) evalLeaf(tok Token) (Value, error) {
	switch tok.Kind {
	case TokNum:
		return ValueFromLiteral(tok.Num)
	case TokChar:
		return CharValue(tok.Char), nil
	case TokUnit:
		return UnitValue(), nil
	case TokString:
		return StringValue(tok.Text), nil
	case TokBool:
		return BoolValue(tok.Bool), nil
	case TokIdent:
		return ev.State.GetVar(tok.Text)
	}
	return Value{}, evalErrorf(ErrArgKind, "%s cannot be used as a value", tok)
}

func (ev *Evaluator) evalList(body *RuleNode) (Value, error) {
	nodes := spine(body)
	items := make([]Value, len(nodes))
	for i, n := range nodes {
		var err error
		if items[i], err = ev.eval(n); err != nil {
			return Value{}, err
		}
	}
	return listOf(items)
}

// leafOf returns the token of a Val that is a bare token.
func leafOf(val Node) (Token, bool) {
	if r, ok := val.(*RuleNode); ok && len(r.Children) == 1 {
		if leaf, ok := r.Children[0].(*Leaf); ok {
			return leaf.Token, true
		}
	}
	return Token{}, false
}

// argKinds classifies call arguments syntactically.
func argKinds(vals []Node) []ArgKind {
	kinds := make([]ArgKind, len(vals))
	for i, val := range vals {
		if tok, ok := leafOf(val); ok {
			switch tok.Kind {
			case TokIdent:
				kinds[i] = ArgIdent
			case TokType:
				kinds[i] = ArgType
			}
		}
	}
	return kinds
}

func (ev *Evaluator) evalCall(call *RuleNode) (Value, error) {
	op := call.Children[0].(*Leaf).Token.Op
	vals := spine(call.Children[1].(*RuleNode))
	if err := CheckArgs(op, argKinds(vals)); err != nil {
		return Value{}, err
	}
	def := declarations[op]
	if def.Fn == nil {
		return ev.special(op, vals)
	}
	args := make([]Argument, len(vals))
	for i, p := range def.Params {
		var err error
		if args[i], err = ev.resolve(vals[i], p.Kind); err != nil {
			return Value{}, err
		}
	}
	return def.Fn(ev, args)
}

// resolve turns a Val into the argument kind the operator asked for;
// CheckArgs already made sure the kinds fit.
func (ev *Evaluator) resolve(val Node, kind ArgKind) (Argument, error) {
	switch kind {
	case ArgIdent:
		tok, _ := leafOf(val)
		return Argument{Kind: ArgIdent, Ident: tok.Text}, nil
	case ArgType:
		tok, _ := leafOf(val)
		return Argument{Kind: ArgType, Type: tok.Type}, nil
	}
	v, err := ev.eval(val)
	if err != nil {
		return Argument{}, err
	}
	return Argument{Kind: ArgValue, Value: v}, nil
}

// condition evaluates val and requires a Bool.
func (ev *Evaluator) condition(val Node) (bool, error) {
	v, err := ev.eval(val)
	if err != nil {
		return false, err
	}
	if !v.Type.Is(KindBool) {
		return false, evalErrorf(ErrType, "condition must be Bool, found %s", v.Type)
	}
	return v.Bool, nil
}

// special evaluates the operators that must not evaluate all their arguments up front.
func (ev *Evaluator) special(op Reserved, vals []Node) (Value, error) {
	switch op {
	case OpIf:
		cond, err := ev.condition(vals[0])
		if err != nil {
			return Value{}, err
		}
		if cond {
			return ev.eval(vals[1])
		}
		return ev.eval(vals[2])
	case OpWhile:
		result := UnitValue()
		for i := 0; ; i++ {
			if ev.MaxLoopIterations > 0 && i >= ev.MaxLoopIterations {
				return Value{}, evalErrorf(ErrBounds, "while exceeded %d iterations", ev.MaxLoopIterations)
			}
			cond, err := ev.condition(vals[0])
			if err != nil {
				return Value{}, err
			}
			if !cond {
				return result, nil
			}
			if result, err = ev.eval(vals[1]); err != nil {
				return Value{}, err
			}
		}
	}
	return Value{}, evalErrorf(ErrType, "operator %s has no implementation", op)
}

func init_control() {
	DeclareTitle("Control flow")
	Declare(&Declaration{
		"if", "", "evaluates the condition and then only the chosen branch",
		[]DeclarationParameter{
			{"condition", ArgValue, "Bool deciding the branch"},
			{"then", ArgValue, "evaluated if the condition is true"},
			{"else", ArgValue, "evaluated if the condition is false"},
		}, "any", nil,
	})
	Declare(&Declaration{
		"while", "", "evaluates body as long as condition is true",
		[]DeclarationParameter{
			{"condition", ArgValue, "Bool, evaluated before every iteration"},
			{"body", ArgValue, "evaluated once per iteration"},
		}, "value of the last iteration, () if there was none", nil,
	})
}
