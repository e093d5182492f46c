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
import "sync"
import "time"
import "log/slog"
import "path/filepath"
import "encoding/json"
import "github.com/google/uuid"
import "github.com/pierrec/lz4/v4"
import "github.com/ulikunitz/xz"
import "github.com/pkg/errors"

// Tracefile writes Chrome trace events (chrome://tracing, Perfetto).
type Tracefile struct {
	isFirst bool
	file    io.WriteCloser
	m       sync.Mutex
}

var Trace *Tracefile // default trace: set to not nil if you want to trace
var TracePrint bool  // whether to log stage durations

// Logger receives stage durations when TracePrint is set.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// closes the compressor before the file below it
type stackedCloser struct {
	io.Writer
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func compress(f *os.File, compression string) (io.WriteCloser, error) {
	switch compression {
	case "":
		return f, nil
	case "lz4":
		w := lz4.NewWriter(f)
		return &stackedCloser{w, []io.Closer{w, f}}, nil
	case "xz":
		w, err := xz.NewWriter(f)
		if err != nil {
			return nil, err
		}
		return &stackedCloser{w, []io.Closer{w, f}}, nil
	}
	return nil, errors.Errorf("unknown trace compression %q, use lz4 or xz", compression)
}

// SetTrace closes a running trace and opens a new one in Settings.TraceDir if on.
func SetTrace(on bool) error {
	if Trace != nil {
		Trace.Close()
		Trace = nil
	}
	if !on {
		return nil
	}
	name := "trace_" + uuid.NewString() + ".json"
	if Settings.TraceCompression != "" {
		name += "." + Settings.TraceCompression
	}
	f, err := os.Create(filepath.Join(Settings.TraceDir, name))
	if err != nil {
		return errors.Wrap(err, "trace")
	}
	w, err := compress(f, Settings.TraceCompression)
	if err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	Trace = NewTrace(w)
	return nil
}

func NewTrace(file io.WriteCloser) *Tracefile {
	file.Write([]byte("["))
	result := new(Tracefile)
	result.file = file
	result.isFirst = true
	return result
}

func (t *Tracefile) Close() error {
	t.m.Lock()
	defer t.m.Unlock()
	t.file.Write([]byte("]"))
	return t.file.Close()
}

func (t *Tracefile) Duration(name string, cat string, f func()) {
	t.EventHalf(name, cat, "B")
	defer t.EventHalf(name, cat, "E")
	f()
}

func (t *Tracefile) EventHalf(name string, cat string, typ string) {
	t.EventFull(name, cat, typ, time.Since(start).Microseconds(), 0, 0)
}

type traceEvent struct {
	Name  string `json:"name"`
	Cat   string `json:"cat"`
	Ph    string `json:"ph"`
	Ts    int64  `json:"ts"`
	Pid   int    `json:"pid"`
	Tid   int    `json:"tid"`
	Scope string `json:"s"`
}

/*
	@name string stage
	@cat string comma separated categories (for filtering)
	@typ B/E for begin/end, X for events
	@ts timestamp in microseconds
*/
func (t *Tracefile) EventFull(name string, cat string, typ string, ts int64, tid int, pid int) {
	b, _ := json.Marshal(traceEvent{name, cat, typ, ts, pid, tid, "g"})
	t.m.Lock()
	if t.isFirst {
		t.isFirst = false
	} else {
		t.file.Write([]byte(",\n"))
	}
	t.file.Write(b)
	t.m.Unlock()
}

var start time.Time = time.Now()

// traced runs one pipeline stage, recording it in Trace and the log.
func traced(stage string, f func() error) (err error) {
	begin := time.Now()
	if Trace != nil {
		Trace.Duration(stage, "blisp", func() { err = f() })
	} else {
		err = f()
	}
	if TracePrint {
		Logger.Info("stage", "name", stage, "duration", time.Since(begin), "ok", err == nil)
	}
	return err
}
