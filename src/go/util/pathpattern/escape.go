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

import (
	"regexp"
)

var (
	// Characters with a special meaning in a regular expression.
	stringMetaChars = regexp.MustCompile(`([.+*?=^!:${}()\[\]|/\\])`)
	// Characters that can't appear unescaped inside a capture group of the template.
	groupMetaChars = regexp.MustCompile(`([=!:$/()])`)
)

// EscapeString escapes all regular expression metacharacters in s, so the
// literal text can be embedded in a larger expression.
func EscapeString(s string) string {
	return stringMetaChars.ReplaceAllString(s, `\${1}`)
}

// EscapeGroup escapes the characters of a custom parameter pattern that would
// otherwise break out of its capture group. Quantifiers and character classes
// are kept intact.
func EscapeGroup(group string) string {
	return groupMetaChars.ReplaceAllString(group, `\${1}`)
}
