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

package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/google/blueprint/parser"
	"github.com/google/blueprint/proptools"

	"apack/assets"
	"apack/core"
)

// A manifest holds the asset definitions loaded from blueprint files:
//
//	asset_files {
//	    name: "icon_files",
//	    package: "pkg",
//	    files: ["pkg/assets/icon.png"],
//	    outputs: ["out/pkg/assets/icon.png"],
//	}
//
//	asset_bundle {
//	    name: "icons",
//	    assets: ["icon_files"],
//	    assets_dir: "assets",
//	}
//
//	prebuilt_asset_dir {
//	    name: "imported",
//	    dir: "out/aar/unpacked",
//	}
//
// asset_files stands in for the build graph: files are source tree relative,
// outputs are the parallel output tree paths, and package anchors the
// relative path computation.
type manifest struct {
	bundles   []*bundleDef
	producers map[string]*producerDef
}

func newManifest() *manifest {
	return &manifest{
		producers: make(map[string]*producerDef),
	}
}

type producerDef struct {
	name  string
	files assets.Files
}

func (p *producerDef) Label() string {
	return p.name
}

func (p *producerDef) Files() assets.Files {
	return p.files
}

var _ assets.FileProducer = (*producerDef)(nil)

type bundleDef struct {
	name string

	// assetRefs are the unresolved names of the asset_files definitions
	// this bundle packages, or nil when the property was not declared.
	assetRefs []string
	assetsDir *string

	// prebuilt is set instead of the two properties above for
	// prebuilt_asset_dir definitions, whose collection needs no
	// resolution.
	prebuilt *assets.Collection
}

// collect resolves the bundle's collection, reporting diagnostics to ctx.
func (b *bundleDef) collect(ctx core.ErrorContext, m *manifest) *assets.Collection {
	if b.prebuilt != nil {
		return b.prebuilt
	}

	var producers []assets.FileProducer
	for _, ref := range b.assetRefs {
		p, ok := m.producers[ref]
		if !ok {
			ctx.PropertyErrorf("assets", "unknown asset_files %q", ref)
			return nil
		}
		producers = append(producers, p)
	}

	return assets.Collect(ctx, assets.NewBundle(assets.BundleProperties{
		Assets:     b.assetRefs,
		Assets_dir: b.assetsDir,
	}, producers))
}

// sortedBundles returns the loaded bundles sorted by name for deterministic
// reports.
func (m *manifest) sortedBundles() []*bundleDef {
	bundles := slices.Clone(m.bundles)
	slices.SortFunc(bundles, func(a, b *bundleDef) int {
		return strings.Compare(a.name, b.name)
	})
	return bundles
}

// load parses one blueprint manifest and merges its definitions into m.
func (m *manifest) load(filename string, r io.Reader) []error {
	file, errs := parser.ParseAndEval(filename, r, parser.NewScope(nil))
	if len(errs) > 0 {
		return errs
	}

	for _, def := range file.Defs {
		mod, ok := def.(*parser.Module)
		if !ok {
			// Top level assignments were consumed by the parser scope.
			continue
		}

		var err error
		switch mod.Type {
		case "asset_files":
			err = m.addProducer(filename, mod)
		case "asset_bundle":
			err = m.addBundle(filename, mod)
		case "prebuilt_asset_dir":
			err = m.addPrebuiltDir(filename, mod)
		default:
			err = fmt.Errorf("%s: unknown definition type %q", filename, mod.Type)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func (m *manifest) addProducer(filename string, mod *parser.Module) error {
	name, err := requiredString(filename, mod, "name")
	if err != nil {
		return err
	}
	if _, exists := m.producers[name]; exists {
		return fmt.Errorf("%s: duplicate asset_files %q", filename, name)
	}

	pkg, err := requiredString(filename, mod, "package")
	if err != nil {
		return err
	}
	files, _, err := stringListProperty(filename, mod, "files")
	if err != nil {
		return err
	}
	outputs, _, err := stringListProperty(filename, mod, "outputs")
	if err != nil {
		return err
	}
	if len(files) != len(outputs) {
		return fmt.Errorf("%s: asset_files %q: files (%d) and outputs (%d) must be the same length",
			filename, name, len(files), len(outputs))
	}

	p := &producerDef{name: name}
	for i, f := range files {
		p.files = append(p.files, assets.File{
			RootRelPath: f,
			OutPath:     outputs[i],
			PkgRoot:     pkg,
		})
	}
	m.producers[name] = p
	return nil
}

func (m *manifest) addBundle(filename string, mod *parser.Module) error {
	name, err := requiredString(filename, mod, "name")
	if err != nil {
		return err
	}
	if err := m.checkDuplicateBundle(filename, name); err != nil {
		return err
	}

	refs, declared, err := stringListProperty(filename, mod, "assets")
	if err != nil {
		return err
	}
	if !declared {
		refs = nil
	} else if refs == nil {
		refs = []string{}
	}

	b := &bundleDef{name: name, assetRefs: refs}
	if dir, ok, err := stringProperty(filename, mod, "assets_dir"); err != nil {
		return err
	} else if ok {
		b.assetsDir = proptools.StringPtr(dir)
	}

	m.bundles = append(m.bundles, b)
	return nil
}

func (m *manifest) addPrebuiltDir(filename string, mod *parser.Module) error {
	name, err := requiredString(filename, mod, "name")
	if err != nil {
		return err
	}
	if err := m.checkDuplicateBundle(filename, name); err != nil {
		return err
	}
	dir, err := requiredString(filename, mod, "dir")
	if err != nil {
		return err
	}

	m.bundles = append(m.bundles, &bundleDef{
		name:     name,
		prebuilt: assets.PrebuiltDirCollection(dir),
	})
	return nil
}

func (m *manifest) checkDuplicateBundle(filename, name string) error {
	for _, b := range m.bundles {
		if b.name == name {
			return fmt.Errorf("%s: duplicate bundle %q", filename, name)
		}
	}
	return nil
}

func propValue(mod *parser.Module, name string) (parser.Expression, bool) {
	for _, prop := range mod.Properties {
		if prop.Name == name {
			return prop.Value, true
		}
	}
	return nil, false
}

// resolveExpression unwraps variable references and evaluated operators to
// the literal they produced.
func resolveExpression(expr parser.Expression) parser.Expression {
	for {
		switch e := expr.(type) {
		case *parser.Variable:
			expr = e.Value
		case *parser.Operator:
			expr = e.Value
		default:
			return expr
		}
	}
}

func stringProperty(filename string, mod *parser.Module, name string) (string, bool, error) {
	expr, found := propValue(mod, name)
	if !found {
		return "", false, nil
	}
	s, ok := resolveExpression(expr).(*parser.String)
	if !ok {
		return "", false, fmt.Errorf("%s: %s.%s must be a string", filename, mod.Type, name)
	}
	return s.Value, true, nil
}

func requiredString(filename string, mod *parser.Module, name string) (string, error) {
	s, found, err := stringProperty(filename, mod, name)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%s: %s is missing the %s property", filename, mod.Type, name)
	}
	return s, nil
}

func stringListProperty(filename string, mod *parser.Module, name string) ([]string, bool, error) {
	expr, found := propValue(mod, name)
	if !found {
		return nil, false, nil
	}
	list, ok := resolveExpression(expr).(*parser.List)
	if !ok {
		return nil, false, fmt.Errorf("%s: %s.%s must be a list of strings", filename, mod.Type, name)
	}
	ret := make([]string, 0, len(list.Values))
	for _, value := range list.Values {
		s, ok := resolveExpression(value).(*parser.String)
		if !ok {
			return nil, false, fmt.Errorf("%s: %s.%s must be a list of strings", filename, mod.Type, name)
		}
		ret = append(ret, s.Value)
	}
	return ret, true, nil
}
