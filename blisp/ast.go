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

// Rule tags a grammar production.
type Rule uint8

const (
	RuleProg Rule = iota
	RuleExpr
	RuleExprBody
	RuleVal
	RuleList
	RuleListBody
	RuleFuncCall
	RuleArgs
)

var ruleNames = [...]string{"Prog", "Expr", "ExprBody", "Val", "List", "ListBody", "FuncCall", "Args"}

func (r Rule) String() string {
	return ruleNames[r]
}

// Node is either a *Leaf or a *RuleNode. The tree is built once by the
// parser and never mutated afterwards.
type Node interface {
	node()
	String() string
}

type Leaf struct {
	Token Token
}

type RuleNode struct {
	Rule     Rule
	Children []Node
}

func (*Leaf) node()     {}
func (*RuleNode) node() {}

func (l *Leaf) String() string {
	return l.Token.String()
}

// String prints the tree as nested rule names, e.g. Prog(Expr(ExprBody(...))).
func (r *RuleNode) String() string {
	parts := make([]string, len(r.Children))
	for i, c := range r.Children {
		parts[i] = c.String()
	}
	return r.Rule.String() + "(" + strings.Join(parts, ", ") + ")"
}

// spine flattens a right-recursive Args or ListBody chain into its Val nodes.
func spine(n *RuleNode) []Node {
	var result []Node
	for {
		result = append(result, n.Children[0])
		if len(n.Children) < 2 {
			return result
		}
		n = n.Children[1].(*RuleNode)
	}
}
