// Copyright 2025 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package settings loads the build settings of an apack invocation from a
// Starlark file. Starlark keeps product configuration declarative but still
// allows computed values and shared helper functions.
package settings

import (
	"fmt"
	"strings"

	"go.starlark.net/starlark"
)

// Settings are the evaluated build settings.
type Settings struct {
	// OutDir is the root of the build output tree, for display in reports.
	OutDir string

	// Manifests are the blueprint manifest files to load when none are
	// given on the command line.
	Manifests []string

	// Vars are free-form build variables exported to reports.
	Vars map[string]string
}

// Default returns the settings used when no settings file is given.
func Default() *Settings {
	return &Settings{
		OutDir: "out",
		Vars:   map[string]string{},
	}
}

// Load evaluates the Starlark file at path and extracts the exported
// settings: out_dir (string), manifests (list of strings) and vars (dict of
// string to string). Underscore-prefixed globals and helper functions are
// private and ignored; any other unknown export is an error naming the
// symbol.
func Load(path string) (*Settings, error) {
	thread := &starlark.Thread{Name: "settings"}
	globals, err := starlark.ExecFile(thread, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("evaluating settings file %s: %w", path, err)
	}

	s := Default()
	for _, name := range globals.Keys() {
		value := globals[name]
		switch name {
		case "out_dir":
			str, ok := starlark.AsString(value)
			if !ok {
				return nil, typeError(path, name, "string", value)
			}
			s.OutDir = str
		case "manifests":
			list, ok := value.(*starlark.List)
			if !ok {
				return nil, typeError(path, name, "list of strings", value)
			}
			for i := 0; i < list.Len(); i++ {
				str, ok := starlark.AsString(list.Index(i))
				if !ok {
					return nil, typeError(path, name, "list of strings", list.Index(i))
				}
				s.Manifests = append(s.Manifests, str)
			}
		case "vars":
			dict, ok := value.(*starlark.Dict)
			if !ok {
				return nil, typeError(path, name, "dict of string to string", value)
			}
			for _, item := range dict.Items() {
				key, ok := starlark.AsString(item[0])
				if !ok {
					return nil, typeError(path, name, "dict of string to string", item[0])
				}
				val, ok := starlark.AsString(item[1])
				if !ok {
					return nil, typeError(path, name, "dict of string to string", item[1])
				}
				s.Vars[key] = val
			}
		default:
			if strings.HasPrefix(name, "_") {
				continue
			}
			if _, ok := value.(starlark.Callable); ok {
				continue
			}
			return nil, fmt.Errorf("%s: unknown setting %q", path, name)
		}
	}

	return s, nil
}

func typeError(path, name, want string, value starlark.Value) error {
	return fmt.Errorf("%s: setting %q must be a %s, got %s", path, name, want, value.Type())
}
