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

// Package assets resolves the asset files declared by a build unit into
// (file, root) pairs for the packaging stage. The root of an asset is the
// output-tree prefix that, once stripped from the asset's output path,
// reproduces the path it had below the declared assets directory.
package assets

import (
	"path"
	"slices"

	"github.com/google/blueprint/proptools"

	"apack/core"
)

// prebuiltAssetsSubdir is the fixed child directory that a prebuilt asset
// directory is contracted to contain.
const prebuiltAssetsSubdir = "assets"

// File is a single asset contributed by a producing build unit. All three
// path facets are slash-separated relative paths computed by the build graph
// and treated as given here; File is never mutated by this package.
type File struct {
	// RootRelPath is the file's path relative to the source tree root.
	RootRelPath string

	// OutPath is the path the file will have in the build output tree once
	// build actions run. Generated files only exist there, so asset roots
	// are always derived from OutPath.
	OutPath string

	// PkgRoot is the source tree path of the package that owns the file.
	PkgRoot string
}

// PackageRelPath returns the file's path relative to its owning package's
// source root, or ok=false if the file does not sit below its package.
func (f File) PackageRelPath() (string, bool) {
	return core.PathRelativeTo(f.RootRelPath, f.PkgRoot)
}

type Files []File

// OutPaths returns the output tree paths of the files, in order.
func (files Files) OutPaths() []string {
	ret := make([]string, len(files))
	for i, f := range files {
		ret[i] = f.OutPath
	}
	return ret
}

// Collection is the immutable result of collecting a build unit's assets:
// an insertion-ordered file sequence, a root per file at the same index, and
// the assets directory as declared, kept only for diagnostics.
type Collection struct {
	files Files
	roots []string
	dir   *string
}

// Files returns the collected assets in insertion order. Callers must not
// mutate the returned slice.
func (c *Collection) Files() Files {
	return c.files
}

// Roots returns one output-tree root per collected asset, index-aligned with
// Files. Roots are not deduplicated; files from the same contributing
// package typically share an identical root.
func (c *Collection) Roots() []string {
	return c.roots
}

// AssetDir returns the assets directory the collection was built with.
// ok is false for the empty collection, which distinguishes "no assets
// declared" from "assets declared but no files contributed".
func (c *Collection) AssetDir() (string, bool) {
	if c.dir == nil {
		return "", false
	}
	return *c.dir, true
}

// Equal reports whether the two collections carry the same files and roots
// in the same order. The assets directory is informational only and is
// excluded from equality.
func (c *Collection) Equal(other *Collection) bool {
	return slices.Equal(c.files, other.files) && slices.Equal(c.roots, other.roots)
}

// EmptyCollection returns the canonical result for a build unit that
// declares no assets. Each call returns a fresh value.
func EmptyCollection() *Collection {
	return &Collection{}
}

// PrebuiltDirCollection treats a build-time-generated directory as a single
// opaque asset. The directory's contents are unknown until build actions
// run, so per-file validation is skipped; the only contract is that the
// directory contains an "assets" subdirectory, which becomes the sole root.
func PrebuiltDirCollection(dir string) *Collection {
	return &Collection{
		files: Files{{RootRelPath: dir, OutPath: dir}},
		roots: []string{path.Join(dir, prebuiltAssetsSubdir)},
		dir:   proptools.StringPtr(dir),
	}
}
