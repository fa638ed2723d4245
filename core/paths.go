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

// Segment-aware helpers over slash-separated relative paths. Prefix tests
// must respect segment boundaries: "assets" is not a prefix of "assetsx/a".
// All functions clean their inputs, so "assets/" and "./assets" behave like
// "assets".

import (
	"path"
	"strings"
)

// PathSegments returns the cleaned segments of p. The empty path and "."
// have no segments.
func PathSegments(p string) []string {
	p = path.Clean(p)
	if p == "." || p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// SegmentCount returns the number of segments in p.
func SegmentCount(p string) int {
	return len(PathSegments(p))
}

// HasPathPrefix reports whether prefix is a segment-wise prefix of p. Every
// path has the empty path as a prefix.
func HasPathPrefix(p, prefix string) bool {
	_, ok := PathRelativeTo(p, prefix)
	return ok
}

// PathRelativeTo returns p with the leading prefix segments removed. It
// returns ok=false when prefix is not a segment-wise prefix of p. A path is
// a prefix of itself, with an empty remainder.
func PathRelativeTo(p, prefix string) (string, bool) {
	pSegs := PathSegments(p)
	prefixSegs := PathSegments(prefix)
	if len(prefixSegs) > len(pSegs) {
		return "", false
	}
	for i, seg := range prefixSegs {
		if pSegs[i] != seg {
			return "", false
		}
	}
	return strings.Join(pSegs[len(prefixSegs):], "/"), true
}

// TrimTailSegments returns p with its final n segments removed. It returns
// ok=false when p has fewer than n segments.
func TrimTailSegments(p string, n int) (string, bool) {
	segs := PathSegments(p)
	if n > len(segs) {
		return "", false
	}
	return strings.Join(segs[:len(segs)-n], "/"), true
}
