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
)

// BundleProperties are the asset_bundle properties as authored in a
// manifest. Both fields are optional; the collector enforces that they are
// declared together.
type BundleProperties struct {
	// Build units that produce the asset files to package. May be declared
	// empty, which yields a collection with no files but a non-empty
	// assets directory.
	Assets []string

	// Directory, relative to each contributing package, that must contain
	// every asset.
	Assets_dir *string
}

// Bundle joins a build unit's declared properties with the producers the
// build graph resolved its asset references to. It is the concrete
// BundleConfig handed to Collect.
type Bundle struct {
	properties BundleProperties
	producers  []FileProducer
}

// NewBundle wraps the declared properties and resolved producers of one
// build unit. producers must be index-aligned with properties.Assets.
func NewBundle(properties BundleProperties, producers []FileProducer) *Bundle {
	return &Bundle{
		properties: properties,
		producers:  producers,
	}
}

func (b *Bundle) AssetTargets() ([]FileProducer, bool) {
	if b.properties.Assets == nil {
		return nil, false
	}
	return b.producers, true
}

func (b *Bundle) AssetsDir() (string, bool) {
	if b.properties.Assets_dir == nil {
		return "", false
	}
	return proptools.String(b.properties.Assets_dir), true
}

var _ BundleConfig = (*Bundle)(nil)
