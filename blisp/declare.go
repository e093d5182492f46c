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

import "io"
import "os"
import "fmt"
import "strings"
import "path/filepath"

// ArgKind is what a call argument has to be.
type ArgKind uint8

const (
	ArgValue ArgKind = iota
	ArgType
	ArgIdent
)

func (k ArgKind) String() string {
	switch k {
	case ArgType:
		return "type"
	case ArgIdent:
		return "identifier"
	}
	return "value"
}

// Argument is a resolved call argument; only the field matching Kind is set.
type Argument struct {
	Kind  ArgKind
	Value Value
	Type  Type
	Ident string
}

type Declaration struct {
	Name    string
	Alias   string // symbolic spelling, e.g. + for add
	Desc    string
	Params  []DeclarationParameter
	Returns string
	Fn      func(ev *Evaluator, args []Argument) (Value, error) // nil for special forms
}

type DeclarationParameter struct {
	Name string
	Kind ArgKind
	Desc string
}

var declaration_titles []string
var declarations [numReserved]*Declaration

func DeclareTitle(title string) {
	declaration_titles = append(declaration_titles, "#"+title)
}

func Declare(def *Declaration) {
	op, ok := LookupReserved(def.Name)
	if !ok {
		panic("declaration for unknown operator " + def.Name)
	}
	declaration_titles = append(declaration_titles, def.Name)
	declarations[op] = def
}

func init() {
	init_alu()
	init_compare()
	init_list()
	init_vars()
	init_control()
	init_io()
	for op, def := range declarations {
		if def == nil {
			panic("operator without declaration: " + Reserved(op).String())
		}
	}
}

// Lookup returns the dispatch table entry of an operator.
func Lookup(op Reserved) *Declaration {
	return declarations[op]
}

// Signature lists the argument kinds op requires, in order.
func Signature(op Reserved) []ArgKind {
	params := declarations[op].Params
	kinds := make([]ArgKind, len(params))
	for i, p := range params {
		kinds[i] = p.Kind
	}
	return kinds
}

// an identifier written where a value is expected is a variable reference
func kindsMatch(given, required ArgKind) bool {
	return given == required || given == ArgIdent && required == ArgValue
}

// CheckArgs validates arity and argument kinds of a call without evaluating anything.
func CheckArgs(op Reserved, given []ArgKind) error {
	required := Signature(op)
	if len(given) != len(required) {
		return evalErrorf(ErrArity, "operator %s expects %d arguments, got %d", op, len(required), len(given))
	}
	for i := range required {
		if !kindsMatch(given[i], required[i]) {
			return evalErrorf(ErrArgKind, "operator %s expects argument %d to be a %s, found %s", op, i+1, required[i], given[i])
		}
	}
	return nil
}

// Help prints all operators or the documentation of one of them.
func Help(w io.Writer, name string) error {
	if name == "" {
		fmt.Fprintln(w, "Available operators:")
		for _, title := range declaration_titles {
			if title[0] == '#' {
				fmt.Fprintln(w, "")
				fmt.Fprintln(w, "-- "+title[1:]+" --")
				continue
			}
			def := declarations[reservedByName[title]]
			fmt.Fprintln(w, "  "+signatureLine(def)+": "+strings.Split(def.Desc, "\n")[0])
		}
		return nil
	}
	op, ok := LookupReserved(name)
	if !ok {
		for i, def := range declarations {
			if def.Alias == name {
				op, ok = Reserved(i), true
			}
		}
	}
	if !ok {
		return fmt.Errorf("operator not found: %s", name)
	}
	def := declarations[op]
	fmt.Fprintln(w, "Help for: "+signatureLine(def))
	fmt.Fprintln(w, "===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, def.Desc)
	fmt.Fprintln(w, "")
	for _, p := range def.Params {
		fmt.Fprintln(w, " - "+p.Name+" ("+p.Kind.String()+"): "+p.Desc)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "returns "+def.Returns)
	return nil
}

func signatureLine(def *Declaration) string {
	s := "(" + def.Name
	for _, p := range def.Params {
		s += " " + p.Name
	}
	s += ")"
	if def.Alias != "" {
		s += " alias " + def.Alias
	}
	return s
}

// slugify makes a filesystem-safe, lowercase slug from a chapter title.
func slugify(s string) string {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "chapter"
	}
	return b.String()
}

// WriteDocumentation generates Markdown docs: index.md linking one file per chapter.
func WriteDocumentation(folder string) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", folder, err)
	}

	type chapter struct {
		title string
		fns   []*Declaration
	}
	var chapters []*chapter
	for _, t := range declaration_titles {
		if t[0] == '#' {
			chapters = append(chapters, &chapter{title: t[1:]})
			continue
		}
		if len(chapters) == 0 {
			chapters = append(chapters, &chapter{title: "General"})
		}
		current := chapters[len(chapters)-1]
		current.fns = append(current.fns, declarations[reservedByName[t]])
	}

	var index strings.Builder
	index.WriteString("# BLisp operators\n\n")
	for _, ch := range chapters {
		if len(ch.fns) == 0 {
			continue
		}
		fmt.Fprintf(&index, "- [%s](%s.md)\n", ch.title, slugify(ch.title))

		var b strings.Builder
		fmt.Fprintf(&b, "# %s\n\n", ch.title)
		for _, def := range ch.fns {
			fmt.Fprintf(&b, "## %s\n\n", def.Name)
			if def.Alias != "" {
				fmt.Fprintf(&b, "Alias: `%s`\n\n", def.Alias)
			}
			fmt.Fprintf(&b, "%s\n\n", def.Desc)
			fmt.Fprintf(&b, "`%s`\n\n", signatureLine(def))
			b.WriteString("### Parameters\n\n")
			for _, p := range def.Params {
				fmt.Fprintf(&b, "- **%s** (`%s`): %s\n", p.Name, p.Kind, p.Desc)
			}
			fmt.Fprintf(&b, "\n### Returns\n\n`%s`\n\n", def.Returns)
		}
		fp := filepath.Join(folder, slugify(ch.title)+".md")
		if err := os.WriteFile(fp, []byte(b.String()), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", fp, err)
		}
	}
	fp := filepath.Join(folder, "index.md")
	if err := os.WriteFile(fp, []byte(index.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", fp, err)
	}
	return nil
}
