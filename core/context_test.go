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

package core

import (
	"testing"
)

func TestErrorRecorder(t *testing.T) {
	t.Parallel()
	rec := NewErrorRecorder("icons")
	AssertBoolEquals(t, "new recorder failed", false, rec.Failed())

	rec.ModuleErrorf("bad configuration of %q", "assets")
	rec.PropertyErrorf("assets", "'%s' is not beneath '%s'", "res/a.txt", "assets")

	AssertBoolEquals(t, "recorder failed", true, rec.Failed())
	AssertIntEquals(t, "error count", 2, len(rec.Errors()))

	merr, ok := rec.Errors()[0].(*ModuleError)
	if !ok {
		t.Fatalf("expected *ModuleError, got %T", rec.Errors()[0])
	}
	AssertStringEquals(t, "module error module", "icons", merr.Module)
	AssertStringDoesContain(t, "module error message", merr.Error(), `module "icons": bad configuration`)

	perr, ok := rec.Errors()[1].(*PropertyError)
	if !ok {
		t.Fatalf("expected *PropertyError, got %T", rec.Errors()[1])
	}
	AssertStringEquals(t, "property error property", "assets", perr.Property)
	AssertStringDoesContain(t, "property error message", perr.Error(), `property "assets"`)
}
