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

/* grammar, one token of lookahead, no backtracking:

Prog      := Expr EOF
Expr      := '(' ExprBody ')'
ExprBody  := FuncCall | Val
FuncCall  := ReservedOp Args
Args      := Val | Val Args
Val       := List | Expr | literal | identifier | type
List      := '[' ListBody ']'
ListBody  := Val | Val ListBody

every rule returns its node and the number of tokens it consumed
*/

// at returns tokens[i] or EOF when the slice is exhausted.
func at(tokens []Token, i int) Token {
	if i < len(tokens) {
		return tokens[i]
	}
	return Token{Kind: TokEOF}
}

func unexpected(rule Rule, tok Token, msg string) (Node, int, error) {
	return nil, 0, &ParseError{rule, tok, msg}
}

func rule(r Rule, children ...Node) *RuleNode {
	return &RuleNode{r, children}
}

// ParseProg parses one complete program. The count includes the EOF token.
func ParseProg(tokens []Token) (Node, int, error) {
	expr, n, err := parseExpr(tokens)
	if err != nil {
		return nil, 0, err
	}
	if tok := at(tokens, n); tok.Kind != TokEOF {
		return unexpected(RuleProg, tok, "expected end of input after the program")
	}
	return rule(RuleProg, expr), n + 1, nil
}

func parseExpr(tokens []Token) (Node, int, error) {
	if tok := at(tokens, 0); tok.Kind != TokLParen {
		return unexpected(RuleExpr, tok, "expected '('")
	}
	body, n, err := parseExprBody(tokens[1:])
	if err != nil {
		return nil, 0, err
	}
	if tok := at(tokens, n+1); tok.Kind != TokRParen {
		return unexpected(RuleExpr, tok, "expected ')'")
	}
	return rule(RuleExpr, body), n + 2, nil
}

func parseExprBody(tokens []Token) (Node, int, error) {
	var child Node
	var n int
	var err error
	if at(tokens, 0).Kind == TokReserved {
		child, n, err = parseFuncCall(tokens)
	} else {
		child, n, err = parseVal(tokens)
	}
	if err != nil {
		return nil, 0, err
	}
	return rule(RuleExprBody, child), n, nil
}

func parseFuncCall(tokens []Token) (Node, int, error) {
	op := &Leaf{tokens[0]}
	args, n, err := parseArgs(tokens[1:])
	if err != nil {
		return nil, 0, err
	}
	return rule(RuleFuncCall, op, args), n + 1, nil
}

func parseArgs(tokens []Token) (Node, int, error) {
	return parseSequence(RuleArgs, TokRParen, tokens)
}

func parseListBody(tokens []Token) (Node, int, error) {
	return parseSequence(RuleListBody, TokRBrack, tokens)
}

// parseSequence builds the right-leaning Val spine shared by Args and
// ListBody; it stops before the closing token.
func parseSequence(r Rule, closing TokenKind, tokens []Token) (Node, int, error) {
	val, n, err := parseVal(tokens)
	if err != nil {
		return nil, 0, err
	}
	if at(tokens, n).Kind == closing {
		return rule(r, val), n, nil
	}
	rest, m, err := parseSequence(r, closing, tokens[n:])
	if err != nil {
		return nil, 0, err
	}
	return rule(r, val, rest), n + m, nil
}

func parseVal(tokens []Token) (Node, int, error) {
	tok := at(tokens, 0)
	switch tok.Kind {
	case TokLBrack:
		list, n, err := parseList(tokens)
		if err != nil {
			return nil, 0, err
		}
		return rule(RuleVal, list), n, nil
	case TokLParen:
		expr, n, err := parseExpr(tokens)
		if err != nil {
			return nil, 0, err
		}
		return rule(RuleVal, expr), n, nil
	case TokNum, TokChar, TokUnit, TokString, TokBool, TokIdent, TokType:
		return rule(RuleVal, &Leaf{tok}), 1, nil
	}
	return unexpected(RuleVal, tok, "expected a value")
}

func parseList(tokens []Token) (Node, int, error) {
	body, n, err := parseListBody(tokens[1:])
	if err != nil {
		return nil, 0, err
	}
	if tok := at(tokens, n+1); tok.Kind != TokRBrack {
		return unexpected(RuleList, tok, "expected ']'")
	}
	return rule(RuleList, body), n + 2, nil
}
