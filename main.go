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
/*
	blisp runs programs of the BLisp language

	blisp [-config blisp.toml] [-c program]... [file.bl]...

	without programs or files an interactive shell is started
*/
package main

import "os"
import "fmt"
import "flag"
import "time"
import "syscall"
import "os/signal"
import "github.com/davecgh/go-spew/spew"
import "github.com/fsnotify/fsnotify"
import "github.com/launix-de/blisp/blisp"

// workaround for flags package to allow multiple values
type arrayFlags []string

func (i *arrayFlags) String() string {
	return "dummy"
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

var dumpAST bool

// run evaluates one program with a fresh State and prints its result.
func run(name string, src string) bool {
	if dumpAST {
		tree, err := blisp.Parse(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, name+":", err)
			return false
		}
		spew.Config.DisablePointerAddresses = true
		spew.Dump(tree)
	}
	result, err := blisp.Run(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, name+":", err)
		return false
	}
	fmt.Println(result)
	return true
}

func runFile(filename string) bool {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	return run(filename, string(bytes))
}

// watch reruns filename whenever it changes until the process is stopped.
func watch(filename string) error {
	runFile(filename) // run once at the beginning in sync
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	go func() {
		for {
			select {
			case <-watcher.Events:
				// flush all other events
				for {
					time.Sleep(10 * time.Millisecond) // delay a bit, so we don't read empty files
					select {
					case <-watcher.Events:
						// ignore
					default:
						goto to_rerun
					}
				}
			to_rerun:
				runFile(filename)
				watcher.Add(filename) // text editors rename, so we have to rewatch
			case err := <-watcher.Errors:
				fmt.Fprintln(os.Stderr, "watch:", err)
			}
		}
	}()
	return watcher.Add(filename)
}

func exitroutine() {
	blisp.SetTrace(false)
}

func main() {
	var commands arrayFlags
	flag.Var(&commands, "c", "Execute blisp program")

	config := ""
	flag.StringVar(&config, "config", "", "TOML settings file")

	watchfile := ""
	flag.StringVar(&watchfile, "watch", "", "Rerun a program file whenever it changes")

	docfolder := ""
	flag.StringVar(&docfolder, "doc", "", "Write operator documentation as Markdown into a folder and exit")

	flag.BoolVar(&dumpAST, "ast", false, "Print the syntax tree before evaluating")

	flag.Parse()
	files := flag.Args()

	if config != "" {
		if err := blisp.LoadSettings(config); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if err := blisp.InitSettings(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer exitroutine()

	if docfolder != "" {
		if err := blisp.WriteDocumentation(docfolder); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	ok := true
	for _, file := range files {
		ok = runFile(file) && ok
	}
	for _, command := range commands {
		ok = run("command line", command) && ok
	}

	if watchfile != "" {
		if err := watch(watchfile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cancelChan := make(chan os.Signal, 1)
		signal.Notify(cancelChan, syscall.SIGTERM, syscall.SIGINT)
		<-cancelChan
		return
	}

	if len(files) > 0 || len(commands) > 0 {
		if !ok {
			exitroutine()
			os.Exit(1)
		}
		return
	}

	fmt.Print(`blisp Copyright (C) 2026   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

    Type help to show help

`)
	if err := blisp.Repl(blisp.NewEvaluator(blisp.NewState())); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
