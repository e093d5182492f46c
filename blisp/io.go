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
	"fmt"
	"io"
	"strings"
)

func init_io() {
	DeclareTitle("IO / Strings")
	Declare(&Declaration{
		"write", "", "writes a value followed by a newline; strings are written without quotes",
		[]DeclarationParameter{
			{"value", ArgValue, "value to write"},
		}, "()",
		func(ev *Evaluator, a []Argument) (Value, error) {
			if _, err := fmt.Fprintln(ev.Out, a[0].Value.Text()); err != nil {
				return Value{}, evalErrorf(ErrIO, "write: %v", err)
			}
			return UnitValue(), nil
		},
	})
	Declare(&Declaration{
		"read", "", "writes a prompt and reads one line of input",
		[]DeclarationParameter{
			{"prompt", ArgValue, "written before reading, () for none"},
		}, "string without the line break",
		func(ev *Evaluator, a []Argument) (Value, error) {
			if prompt := a[0].Value; !prompt.Type.Is(KindUnit) {
				if _, err := io.WriteString(ev.Out, prompt.Text()); err != nil {
					return Value{}, evalErrorf(ErrIO, "read: %v", err)
				}
			}
			line, err := ev.In.ReadString('\n')
			if err != nil && (err != io.EOF || line == "") {
				return Value{}, evalErrorf(ErrIO, "read: %v", err)
			}
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			return StringValue(line), nil
		},
	})
	Declare(&Declaration{
		"eval", "", "runs a program given as string in the current variable state",
		[]DeclarationParameter{
			{"program", ArgValue, "program source"},
		}, "result of the program",
		func(ev *Evaluator, a []Argument) (Value, error) {
			if !a[0].Value.IsString() {
				return Value{}, evalErrorf(ErrType, "eval expects a string, found %s", a[0].Value.Type)
			}
			return ev.Run(a[0].Value.Chars())
		},
	})
	Declare(&Declaration{
		"tostring", "", "prints a value the way it would be written in a program",
		[]DeclarationParameter{
			{"value", ArgValue, "value to print"},
		}, "string",
		func(ev *Evaluator, a []Argument) (Value, error) {
			return StringValue(a[0].Value.String()), nil
		},
	})
}
