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
	"slices"
)

// InList checks if the string belongs to the list
func InList(s string, list []string) bool {
	return slices.Contains(list, s)
}

// SortedUniqueStrings returns what the name says
func SortedUniqueStrings(list []string) []string {
	ret := slices.Clone(list)
	slices.Sort(ret)
	return slices.Compact(ret)
}

// FirstUniqueStrings returns all unique elements of a slice of strings,
// keeping the first copy of each.
func FirstUniqueStrings(list []string) []string {
	seen := make(map[string]bool, len(list))
	var ret []string
	for _, s := range list {
		if seen[s] {
			continue
		}
		seen[s] = true
		ret = append(ret, s)
	}
	return ret
}
