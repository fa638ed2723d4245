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

package assets

import (
	"github.com/google/blueprint/proptools"

	"apack/core"
)

const (
	assetsProperty    = "assets"
	assetsDirProperty = "assets_dir"
)

// FileProducer is a build unit that contributes an ordered set of asset
// files to a bundle.
type FileProducer interface {
	// Label identifies the producing build unit in diagnostics.
	Label() string

	// Files returns the files the unit contributes, in their natural order.
	Files() Files
}

// BundleConfig is the slice of a build unit's configuration that the
// collector reads: two independently optional settings. Each accessor
// returns ok=false when the setting was not declared at all, which is
// distinct from a declared-but-empty value.
type BundleConfig interface {
	AssetTargets() ([]FileProducer, bool)
	AssetsDir() (string, bool)
}

// Collect gathers the assets declared by a build unit and resolves one root
// per file. A build unit that declares neither setting gets the canonical
// empty collection. Any configuration or placement mistake is reported to
// ctx and aborts collection for the whole unit, returning nil; downstream
// packaging assumes every file is placeable, so there is no partial success.
func Collect(ctx core.ErrorContext, config BundleConfig) *Collection {
	targets, haveTargets := config.AssetTargets()
	dir, haveDir := config.AssetsDir()

	if !validateBundleConfig(ctx, haveTargets, haveDir) {
		return nil
	}
	if !haveTargets {
		return EmptyCollection()
	}
	return resolveRoots(ctx, targets, dir)
}

// validateBundleConfig enforces that the asset targets and the assets
// directory are either both declared or both absent. Every constructor path
// goes through this check.
func validateBundleConfig(ctx core.ErrorContext, haveTargets, haveDir bool) bool {
	if haveTargets != haveDir {
		ctx.ModuleErrorf("'%s' and '%s' should be either both empty or both non-empty",
			assetsProperty, assetsDirProperty)
		return false
	}
	return true
}

// resolveRoots validates the placement of every contributed file against the
// assets directory and computes its root.
//
// The root is derived from the output tree path, not from the source
// relative path: only the output tree is guaranteed to exist as a real
// location at packaging time, since assets may be generated by build
// actions. Stripping the trailing below-assets-dir segments from the output
// path leaves the prefix that reproduces the packaged layout.
func resolveRoots(ctx core.ErrorContext, targets []FileProducer, dir string) *Collection {
	var files Files
	var roots []string

	for _, target := range targets {
		for _, f := range target.Files() {
			pkgRelPath, ok := f.PackageRelPath()
			if !ok {
				ctx.PropertyErrorf(assetsProperty, "'%s' (generated by '%s') is not beneath its package '%s'",
					f.RootRelPath, target.Label(), f.PkgRoot)
				return nil
			}

			// Segment-wise prefix check, anchored at the package root. A
			// file at exactly the assets directory is legal and has an
			// empty relative path.
			relPath, ok := core.PathRelativeTo(pkgRelPath, dir)
			if !ok {
				ctx.PropertyErrorf(assetsProperty, "'%s' (generated by '%s') is not beneath '%s'",
					f.RootRelPath, target.Label(), dir)
				return nil
			}

			root, ok := core.TrimTailSegments(f.OutPath, core.SegmentCount(relPath))
			if !ok {
				ctx.PropertyErrorf(assetsProperty, "'%s' (generated by '%s') has fewer output path segments than '%s'",
					f.OutPath, target.Label(), relPath)
				return nil
			}

			files = append(files, f)
			roots = append(roots, root)
		}
	}

	return &Collection{
		files: files,
		roots: roots,
		dir:   proptools.StringPtr(dir),
	}
}
