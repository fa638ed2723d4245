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

// Package packaging turns resolved asset collections into the merged input
// of the final packaging step. It never touches the filesystem; archiving
// and hashing belong to the surrounding tool.
package packaging

import (
	"slices"

	"apack/assets"
)

// ParsedAssets is the packaging-side view of one build unit's collection.
type ParsedAssets struct {
	// Label identifies the build unit the collection came from.
	Label string

	Assets *assets.Collection
}

// Parse wraps a resolved collection for merging. The collection is shared,
// not copied; it is immutable by construction.
func Parse(label string, c *assets.Collection) ParsedAssets {
	return ParsedAssets{
		Label:  label,
		Assets: c,
	}
}

// Deps are the parsed collections a build unit merges with: assets of its
// direct dependencies and of everything below them.
type Deps struct {
	Direct     []ParsedAssets
	Transitive []ParsedAssets
}

// MergedAssets is the flattened packaging input of one build unit: its own
// (file, root) pairs first, then its direct dependencies', then the
// transitive ones, with later duplicates dropped.
type MergedAssets struct {
	Label string

	files assets.Files
	roots []string
}

func (m MergedAssets) Files() assets.Files {
	return m.files
}

func (m MergedAssets) Roots() []string {
	return m.roots
}

// Equal reports whether the merged inputs carry the same ordered pairs.
func (m MergedAssets) Equal(other MergedAssets) bool {
	return slices.Equal(m.files, other.files) && slices.Equal(m.roots, other.roots)
}

// Merge flattens the unit's own assets with its dependencies'. Order is
// deterministic given deterministic inputs: insertion order within each
// collection, own before direct before transitive across collections. A
// (file, root) pair contributed twice keeps its first position.
func (p ParsedAssets) Merge(deps Deps) MergedAssets {
	merged := MergedAssets{Label: p.Label}
	seen := make(map[assetPair]bool)

	appendAssets := func(parsed ParsedAssets) {
		files := parsed.Assets.Files()
		roots := parsed.Assets.Roots()
		for i, f := range files {
			pair := assetPair{file: f, root: roots[i]}
			if seen[pair] {
				continue
			}
			seen[pair] = true
			merged.files = append(merged.files, f)
			merged.roots = append(merged.roots, roots[i])
		}
	}

	appendAssets(p)
	for _, dep := range deps.Direct {
		appendAssets(dep)
	}
	for _, dep := range deps.Transitive {
		appendAssets(dep)
	}

	return merged
}

// Process is the convenience entry point for doing all of asset processing,
// parsing and merging, in one call.
func Process(label string, c *assets.Collection, deps Deps) MergedAssets {
	return Parse(label, c).Merge(deps)
}

type assetPair struct {
	file assets.File
	root string
}
