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

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var newprompt = color.GreenString(">") + " "
var contprompt = color.GreenString(".") + " "
var resultprompt = color.RedString("=") + " "
var errorColor = color.New(color.FgRed)

// Repl reads programs line by line and evaluates them in ev, so variables
// survive between lines. A program missing its closing parentheses
// continues on the next line. "help" or "help <op>" prints the operators.
func Repl(ev *Evaluator) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       ".blisp-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	l.CaptureExitSignal()
	ev.Out = l.Stdout()

	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				oldline = ""
				l.SetPrompt(newprompt)
				continue
			}
		} else if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if name, ok := strings.CutPrefix(strings.TrimSpace(line), "help"); ok && oldline == "" {
			if err := Help(ev.Out, strings.TrimSpace(name)); err != nil {
				errorColor.Fprintln(ev.Out, err)
			}
			continue
		}

		if _, err := Parse(line); IsIncomplete(err) {
			// keep oldline
			oldline = line + "\n"
			l.SetPrompt(contprompt)
			continue
		}
		result, err := ev.Run(line)
		if err != nil {
			errorColor.Fprintln(ev.Out, err)
		} else {
			fmt.Fprintln(ev.Out, resultprompt+result.String())
		}
		oldline = ""
		l.SetPrompt(newprompt)
	}
	return nil
}
