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

import "os"
import "bufio"
import "reflect"
import "github.com/dc0d/onexit"
import "github.com/docker/go-units"
import "github.com/naoina/toml"
import "github.com/pkg/errors"

type SettingsT struct {
	Trace             bool
	TracePrint        bool
	TraceDir          string
	TraceCompression  string // "", lz4 or xz
	MaxProgramSize    string // e.g. 512KiB, empty for no limit
	MaxLoopIterations int    // 0 = unlimited
}

var Settings SettingsT = SettingsT{false, false, "", "", "1MiB", 0}

// TOML keys are the field names
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return errors.Errorf("unknown setting %s", field)
	},
}

// LoadSettings overlays the settings found in a TOML file.
func LoadSettings(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(&Settings)
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(path + ", " + err.Error())
	}
	if err != nil {
		return err
	}
	_, err = maxProgramSize()
	return err
}

// call this after you filled Settings
func InitSettings() error {
	if err := SetTrace(Settings.Trace); err != nil {
		return err
	}
	TracePrint = Settings.TracePrint
	onexit.Register(func() { SetTrace(false) }) // close trace file on exit
	return nil
}

// maxProgramSize returns the source size limit in bytes, 0 if there is none.
func maxProgramSize() (int64, error) {
	if Settings.MaxProgramSize == "" {
		return 0, nil
	}
	size, err := units.RAMInBytes(Settings.MaxProgramSize)
	if err != nil {
		return 0, errors.Wrap(err, "MaxProgramSize")
	}
	return size, nil
}
