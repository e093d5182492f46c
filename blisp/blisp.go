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

// Package blisp implements BLisp, a small typed S-expression language.
//
// A program passes through three stages: Tokenize turns the source into
// tokens, ParseProg builds a syntax tree following the grammar in parser.go
// and an Evaluator walks the tree. Unsuffixed integer literals are
// polymorphic (Number, NegNumber) until an operator or a list pins them to a
// concrete type, see CoerceTypes.
package blisp

import "github.com/docker/go-units"
import "github.com/pkg/errors"

// Parse tokenizes and parses a program without evaluating it.
func Parse(src string) (Node, error) {
	if err := checkSize(src); err != nil {
		return nil, err
	}
	var tokens []Token
	err := traced("tokenize", func() (err error) {
		tokens, err = Tokenize(src)
		return
	})
	if err != nil {
		return nil, errors.Wrap(err, "tokenize")
	}
	var tree Node
	err = traced("parse", func() (err error) {
		tree, _, err = ParseProg(tokens)
		return
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	return tree, nil
}

// Run evaluates a program with a fresh State.
func Run(src string) (Value, error) {
	return NewEvaluator(NewState()).Run(src)
}

// Run evaluates a program against the evaluator's State, so variables
// defined by earlier programs stay visible.
func (ev *Evaluator) Run(src string) (Value, error) {
	tree, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	var result Value
	err = traced("eval", func() (err error) {
		result, err = ev.Eval(tree)
		return
	})
	if err != nil {
		return Value{}, errors.Wrap(err, "eval")
	}
	return result, nil
}

func checkSize(src string) error {
	limit, err := maxProgramSize()
	if err != nil {
		return err
	}
	if limit > 0 && int64(len(src)) > limit {
		return errors.Errorf("program of %s exceeds the maximum size of %s",
			units.BytesSize(float64(len(src))), units.BytesSize(float64(limit)))
	}
	return nil
}
