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

import "fmt"
import "github.com/pkg/errors"

// LexError reports malformed input at a byte offset of the (ASCII filtered) program.
type LexError struct {
	Pos int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d: %s", e.Pos, e.Msg)
}

// ParseError names the grammar rule that was active and the token it could not accept.
type ParseError struct {
	Rule  Rule
	Token Token
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: unexpected %s: %s", e.Rule, e.Token, e.Msg)
}

type ErrorKind uint8

const (
	ErrUnbound       ErrorKind = iota // identifier never declared
	ErrUnset                          // declared but never assigned
	ErrArity                          // wrong number of arguments
	ErrArgKind                        // value/type/identifier mismatch
	ErrCoercion                       // two types do not unify
	ErrHeterogeneous                  // list elements do not unify
	ErrRedeclared                     // variable declared twice
	ErrUndeclared                     // assignment to unknown variable
	ErrBounds                         // division by zero, out of range, loop limit
	ErrLiteral                        // literal with an invalid suffix combination
	ErrType                           // operator not defined for the operand type
	ErrIO
)

var errorKindNames = [...]string{"unbound", "unset", "arity", "argument kind", "coercion", "heterogeneous list", "redeclared", "undeclared", "bounds", "literal", "type", "io"}

func (k ErrorKind) String() string {
	return errorKindNames[k]
}

type EvalError struct {
	Kind ErrorKind
	Msg  string
}

func (e *EvalError) Error() string {
	return "eval error (" + e.Kind.String() + "): " + e.Msg
}

func evalErrorf(kind ErrorKind, format string, args ...any) *EvalError {
	return &EvalError{kind, fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is (or wraps) an EvalError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ev *EvalError
	return errors.As(err, &ev) && ev.Kind == kind
}

// IsIncomplete reports whether err is a parse error caused by running out of
// input, i.e. more lines could still complete the program.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Token.Kind == TokEOF
}
