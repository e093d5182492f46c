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
	"strconv"
	"strings"
)

// String prints v in program syntax where one exists: 1u, 2.5, 'a', "text",
// [1 2], (). Tuples print as (a, b).
func (v Value) String() string {
	var b strings.Builder
	v.print(&b)
	return b.String()
}

func (v Value) print(b *strings.Builder) {
	switch v.Type.Kind {
	case Number:
		b.WriteString(strconv.FormatUint(v.UInt, 10))
		return
	case NegNumber:
		b.WriteString(strconv.FormatInt(v.Int, 10))
		return
	case AbstractList:
		b.WriteString("[]")
		return
	}
	switch v.Type.Type.Kind {
	case KindInt:
		b.WriteString(strconv.FormatInt(v.Int, 10))
	case KindUInt:
		b.WriteString(strconv.FormatUint(v.UInt, 10))
		b.WriteByte('u')
	case KindFloat:
		b.WriteString(formatFloat(v.Float))
	case KindChar:
		b.WriteByte('\'')
		b.WriteByte(v.Char)
		b.WriteByte('\'')
	case KindBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case KindUnit:
		b.WriteString("()")
	case KindList:
		if v.IsString() {
			b.WriteByte('"')
			b.WriteString(v.Chars())
			b.WriteByte('"')
			return
		}
		b.WriteByte('[')
		for i, item := range v.List {
			if i > 0 {
				b.WriteByte(' ')
			}
			item.print(b)
		}
		b.WriteByte(']')
	case KindTuple:
		b.WriteByte('(')
		v.List[0].print(b)
		b.WriteString(", ")
		v.List[1].print(b)
		b.WriteByte(')')
	}
}

// floats always carry a decimal point so they read back as Float
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.ContainsAny(s, ".IN") {
		return s
	}
	return s + ".0"
}

// Text is what write emits: strings without quotes, everything else as String.
func (v Value) Text() string {
	if v.IsString() {
		return v.Chars()
	}
	return v.String()
}
