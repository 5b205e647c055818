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

// Supported output formats of the pattern tool.
const (
	OutputRegex = "regex"
	OutputKeys  = "keys"
	OutputEnvoy = "envoy"
)

// PatternToolOptions describes the possible overrides for the pattern tool.
type PatternToolOptions struct {
	PatternOptions

	// Templates to compile. More than one template is compiled as an alternation.
	Templates []string
	// Paths tested against the compiled expression.
	MatchPaths []string
	// Parameter values used to render a path from the first template.
	Params map[string]string
	// One of OutputRegex, OutputKeys or OutputEnvoy.
	Output string
	// Http method used for the `:method` header matcher when Output is OutputEnvoy.
	HttpMethod string
}

// DefaultPatternToolOptions returns PatternToolOptions with default values.
//
// The default values are expected to match the default values from the flags.
func DefaultPatternToolOptions() PatternToolOptions {
	return PatternToolOptions{
		PatternOptions: DefaultPatternOptions(),
		Output:         OutputRegex,
		HttpMethod:     "*",
	}
}
