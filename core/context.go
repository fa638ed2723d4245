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
	"fmt"
)

// ErrorContext receives the diagnostics produced while analyzing a single
// build unit. Configuration and placement mistakes are deterministic
// authoring errors, so implementations record them for the user instead of
// retrying.
type ErrorContext interface {
	// ModuleErrorf reports an error against the build unit as a whole.
	ModuleErrorf(format string, args ...interface{})

	// PropertyErrorf reports an error against a single property of the
	// build unit.
	PropertyErrorf(property, format string, args ...interface{})
}

// ModuleError is an error reported against a build unit.
type ModuleError struct {
	Module string
	Err    error
}

func (e *ModuleError) Error() string {
	return fmt.Sprintf("module %q: %s", e.Module, e.Err)
}

func (e *ModuleError) Unwrap() error {
	return e.Err
}

// PropertyError is an error reported against a single property of a build
// unit.
type PropertyError struct {
	Module   string
	Property string
	Err      error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("module %q, property %q: %s", e.Module, e.Property, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

// ErrorRecorder is an ErrorContext that accumulates diagnostics for one
// build unit.
type ErrorRecorder struct {
	module string
	errs   []error
}

func NewErrorRecorder(module string) *ErrorRecorder {
	return &ErrorRecorder{module: module}
}

func (r *ErrorRecorder) ModuleErrorf(format string, args ...interface{}) {
	r.errs = append(r.errs, &ModuleError{
		Module: r.module,
		Err:    fmt.Errorf(format, args...),
	})
}

func (r *ErrorRecorder) PropertyErrorf(property, format string, args ...interface{}) {
	r.errs = append(r.errs, &PropertyError{
		Module:   r.module,
		Property: property,
		Err:      fmt.Errorf(format, args...),
	})
}

// Errors returns the diagnostics recorded so far, in the order they were
// reported.
func (r *ErrorRecorder) Errors() []error {
	return r.errs
}

func (r *ErrorRecorder) Failed() bool {
	return len(r.errs) > 0
}

var _ ErrorContext = (*ErrorRecorder)(nil)
