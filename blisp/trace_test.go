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
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

type nopCloser struct{ *bytes.Buffer }

func (nopCloser) Close() error { return nil }

func TestTraceFormat(t *testing.T) {
	var b bytes.Buffer
	tr := NewTrace(nopCloser{&b})
	tr.Duration("parse", "blisp", func() {})
	tr.EventFull("mark", "x", "X", 5, 1, 2)
	require.NoError(t, tr.Close())

	var events []map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &events))
	require.Len(t, events, 3)
	assert.Equal(t, "B", events[0]["ph"])
	assert.Equal(t, "E", events[1]["ph"])
	assert.Equal(t, "parse", events[1]["name"])
	assert.Equal(t, float64(5), events[2]["ts"])
	assert.Equal(t, float64(2), events[2]["pid"])
	assert.Equal(t, "g", events[2]["s"])
}

// traceRun runs one program with tracing into dir and returns the trace file.
func traceRun(t *testing.T, compression string) string {
	t.Helper()
	withSettings(t)
	Settings.TraceDir = t.TempDir()
	Settings.TraceCompression = compression
	require.NoError(t, SetTrace(true))
	_, err := Run("(+ 1 2)")
	require.NoError(t, err)
	require.NoError(t, SetTrace(false))
	require.Nil(t, Trace)

	files, err := filepath.Glob(filepath.Join(Settings.TraceDir, "trace_*"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	return files[0]
}

func decodeStages(t *testing.T, r io.Reader) []string {
	t.Helper()
	var events []struct {
		Name string `json:"name"`
		Ph   string `json:"ph"`
	}
	require.NoError(t, json.NewDecoder(r).Decode(&events))
	var stages []string
	for _, e := range events {
		if e.Ph == "B" {
			stages = append(stages, e.Name)
		}
	}
	return stages
}

func TestTraceRunStages(t *testing.T) {
	path := traceRun(t, "")
	assert.True(t, strings.HasSuffix(path, ".json"))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"tokenize", "parse", "eval"}, decodeStages(t, f))
}

func TestTraceCompressed(t *testing.T) {
	path := traceRun(t, "lz4")
	assert.True(t, strings.HasSuffix(path, ".json.lz4"))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"tokenize", "parse", "eval"}, decodeStages(t, lz4.NewReader(f)))

	path = traceRun(t, "xz")
	assert.True(t, strings.HasSuffix(path, ".json.xz"))
	g, err := os.Open(path)
	require.NoError(t, err)
	defer g.Close()
	r, err := xz.NewReader(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"tokenize", "parse", "eval"}, decodeStages(t, r))
}

func TestTraceUnknownCompression(t *testing.T) {
	withSettings(t)
	Settings.TraceDir = t.TempDir()
	Settings.TraceCompression = "zip"
	assert.Error(t, SetTrace(true))
	assert.Nil(t, Trace)
	files, _ := filepath.Glob(filepath.Join(Settings.TraceDir, "*"))
	assert.Empty(t, files)
}
