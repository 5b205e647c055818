// Copyright 2019 Google LLC
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

package pathpattern

// Token is one parsed unit of a route template: a *LiteralToken or a *ParamToken.
type Token interface {
	isToken()
}

// LiteralToken is a run of template text without parameters.
// Escaped characters are stored without their backslash.
type LiteralToken struct {
	Text string
}

// ParamToken is a parameter of the template, e.g. `/:id(\d+)?`.
type ParamToken struct {
	Key
}

func (*LiteralToken) isToken() {}
func (*ParamToken) isToken()   {}

// Key describes one capture group of a compiled expression.
// Keys are ordered like the capture groups they describe.
type Key struct {
	// The parameter name. Unnamed groups get their zero based index, e.g. "0".
	Name    string `json:"name"`
	Unnamed bool   `json:"unnamed,omitempty"`
	// The character preceding the parameter, "/" or "." or empty.
	Prefix string `json:"prefix"`
	// The character a default pattern stops at, and which joins repeated values.
	Delimiter string `json:"delimiter"`
	Optional  bool   `json:"optional"`
	Repeat    bool   `json:"repeat"`
	// A partial parameter is followed by something other than its own prefix, e.g. `/:from-:to`.
	Partial bool `json:"partial"`
	// Set for the bare wildcard `*`.
	Asterisk bool `json:"asterisk"`
	// The pattern a single value must match.
	Pattern string `json:"pattern"`
}
