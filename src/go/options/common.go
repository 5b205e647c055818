// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package options

// PatternOptions describes how a route template is turned into a regular expression.
// The same options are shared by the matcher, the router and the Envoy route generator.
type PatternOptions struct {
	// When false, the generated expression is case-insensitive.
	Sensitive bool
	// When false, a single trailing slash is optional on the matched path.
	Strict bool
	// When true, the expression is anchored to the end of the path.
	// Otherwise it matches any path that starts with the template at a segment boundary.
	End bool
}

// DefaultPatternOptions returns PatternOptions with default values.
//
// The default values are expected to match the default values from the flags.
func DefaultPatternOptions() PatternOptions {
	return PatternOptions{
		Sensitive: false,
		Strict:    false,
		End:       true,
	}
}
