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

// apack resolves the asset roots declared by the bundles in one or more
// blueprint manifests and writes a deterministic report of the resulting
// (bundle, root, file) triples for the packaging step.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"apack/core"
	"apack/settings"
)

var (
	settingsFile = flag.String("c", "", "Starlark build settings file")
	outputFile   = flag.String("o", "", "write the report to this file instead of stdout")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: apack [-c settings.star] [-o report.txt] [manifest.bp ...]")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Resolves the asset roots declared by asset_bundle definitions and writes")
		fmt.Fprintln(os.Stderr, "one 'bundle root file' line per collected asset, sorted by bundle name.")
		fmt.Fprintln(os.Stderr, "When no manifests are given, the 'manifests' setting is used.")
	}
	flag.Parse()

	log.SetFlags(log.Lshortfile)

	cfg := settings.Default()
	if *settingsFile != "" {
		var err error
		cfg, err = settings.Load(*settingsFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	manifestFiles := flag.Args()
	if len(manifestFiles) == 0 {
		manifestFiles = cfg.Manifests
	}
	if len(manifestFiles) == 0 {
		log.Println("Error: no manifest files given")
		flag.Usage()
		os.Exit(1)
	}

	m := newManifest()
	for _, path := range manifestFiles {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		errs := m.load(path, f)
		f.Close()
		if reportErrors(errs) {
			os.Exit(1)
		}
	}

	report, errs := buildReport(cfg, m)
	if reportErrors(errs) {
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(report), 0666); err != nil {
			log.Fatal(err)
		}
	} else {
		fmt.Print(report)
	}
}

func reportErrors(errs []error) bool {
	for _, err := range errs {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return len(errs) > 0
}

// buildReport collects every bundle and renders the report. A failing bundle
// does not stop the others from being checked; all diagnostics are returned
// together.
func buildReport(cfg *settings.Settings, m *manifest) (string, []error) {
	var sb strings.Builder
	var errs []error

	fmt.Fprintf(&sb, "# out_dir: %s\n", cfg.OutDir)
	for _, key := range core.SortedUniqueStrings(varNames(cfg.Vars)) {
		fmt.Fprintf(&sb, "# %s=%s\n", key, cfg.Vars[key])
	}

	for _, b := range m.sortedBundles() {
		rec := core.NewErrorRecorder(b.name)
		c := b.collect(rec, m)
		if rec.Failed() {
			errs = append(errs, rec.Errors()...)
			continue
		}
		roots := c.Roots()
		for i, f := range c.Files() {
			fmt.Fprintf(&sb, "%s %s %s\n", b.name, roots[i], f.OutPath)
		}
	}

	return sb.String(), errs
}

func varNames(vars map[string]string) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	return names
}
