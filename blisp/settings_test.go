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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSettings(t *testing.T) {
	old := Settings
	t.Cleanup(func() { Settings = old })
}

func TestLoadSettings(t *testing.T) {
	withSettings(t)
	path := filepath.Join(t.TempDir(), "blisp.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
TracePrint = true
MaxProgramSize = "64KiB"
MaxLoopIterations = 1000
`), 0o644))

	require.NoError(t, LoadSettings(path))
	assert.True(t, Settings.TracePrint)
	assert.False(t, Settings.Trace)
	assert.Equal(t, 1000, Settings.MaxLoopIterations)
	size, err := maxProgramSize()
	require.NoError(t, err)
	assert.Equal(t, int64(64*1024), size)
	assert.Equal(t, 1000, NewEvaluator(NewState()).MaxLoopIterations)
}

func TestLoadSettingsErrors(t *testing.T) {
	withSettings(t)
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("Colour = true\n"), 0o644))
	assert.Error(t, LoadSettings(unknown))

	badSize := filepath.Join(dir, "size.toml")
	require.NoError(t, os.WriteFile(badSize, []byte(`MaxProgramSize = "huge"`+"\n"), 0o644))
	assert.Error(t, LoadSettings(badSize))

	assert.Error(t, LoadSettings(filepath.Join(dir, "missing.toml")))
}

func TestUnlimitedProgramSize(t *testing.T) {
	withSettings(t)
	Settings.MaxProgramSize = ""
	size, err := maxProgramSize()
	require.NoError(t, err)
	assert.Zero(t, size)
}
