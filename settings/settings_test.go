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

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"apack/core"
)

func writeSettings(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.star")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := writeSettings(t, `
_product = "shiba"

def _manifest(pkg):
    return pkg + "/Assets.bp"

out_dir = "out/" + _product
manifests = [_manifest("app"), _manifest("lib")]
vars = {"product": _product}
`)

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	core.AssertStringEquals(t, "out_dir", "out/shiba", s.OutDir)
	core.AssertDeepEquals(t, "manifests", []string{"app/Assets.bp", "lib/Assets.bp"}, s.Manifests)
	core.AssertDeepEquals(t, "vars", map[string]string{"product": "shiba"}, s.Vars)
}

func TestLoadDefaultsPreserved(t *testing.T) {
	t.Parallel()
	path := writeSettings(t, `vars = {}`)

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	core.AssertStringEquals(t, "default out_dir", "out", s.OutDir)
	core.AssertIntEquals(t, "no manifests", 0, len(s.Manifests))
}

func TestLoadUnknownSetting(t *testing.T) {
	t.Parallel()
	path := writeSettings(t, `outdir = "out"`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected an error for an unknown setting")
	}
	core.AssertStringDoesContain(t, "unknown setting", err.Error(), `unknown setting "outdir"`)
}

func TestLoadWrongType(t *testing.T) {
	t.Parallel()
	path := writeSettings(t, `manifests = "app/Assets.bp"`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected an error for a mistyped setting")
	}
	core.AssertStringDoesContain(t, "type error", err.Error(), `setting "manifests" must be a list of strings`)
}

func TestLoadSyntaxError(t *testing.T) {
	t.Parallel()
	path := writeSettings(t, `out_dir = `)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected an error for invalid starlark")
	}
}
