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
	"reflect"
	"strings"
	"testing"
)

// AssertStringEquals checks if the expected and actual values are equal and if
// they are not then an error is reported with the supplied message including a
// diff of the strings.
func AssertStringEquals(t *testing.T, message string, expected, actual string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %q, actual %q", message, expected, actual)
	}
}

// AssertBoolEquals checks if the expected and actual values are equal and if
// they are not then an error is reported with the supplied message.
func AssertBoolEquals(t *testing.T, message string, expected, actual bool) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %t, actual %t", message, expected, actual)
	}
}

// AssertIntEquals checks if the expected and actual values are equal and if
// they are not then an error is reported with the supplied message.
func AssertIntEquals(t *testing.T, message string, expected, actual int) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d, actual %d", message, expected, actual)
	}
}

// AssertDeepEquals checks if the expected and actual values are equal using
// reflect.DeepEqual and if they are not then an error is reported with the
// supplied message.
func AssertDeepEquals(t *testing.T, message string, expected, actual interface{}) {
	t.Helper()
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("%s: expected:\n  %#v\nactual:\n  %#v", message, expected, actual)
	}
}

// AssertStringDoesContain checks if the string contains the expected substring.
func AssertStringDoesContain(t *testing.T, message string, s string, expectedSubstring string) {
	t.Helper()
	if !strings.Contains(s, expectedSubstring) {
		t.Errorf("%s: expected %q within %q", message, expectedSubstring, s)
	}
}

// AssertNoErrors reports a fatal error if any diagnostics were recorded.
func AssertNoErrors(t *testing.T, message string, errs []error) {
	t.Helper()
	if len(errs) > 0 {
		t.Fatalf("%s: unexpected errors: %q", message, errs)
	}
}

// AssertErrorsContain checks that exactly one diagnostic was recorded and
// that its message contains the expected substring.
func AssertErrorsContain(t *testing.T, message string, errs []error, expectedSubstring string) {
	t.Helper()
	if len(errs) != 1 {
		t.Fatalf("%s: expected exactly one error, got %q", message, errs)
	}
	AssertStringDoesContain(t, message, errs[0].Error(), expectedSubstring)
}
