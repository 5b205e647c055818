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
	"strings"
)

const (
	upperhex = "0123456789ABCDEF"

	// Kept as is by a component encoder, in addition to ASCII letters and digits.
	componentUnreserved = "-_.!~*'()"
	// Kept as is inside a wildcard value, slashes included.
	asteriskUnreserved = componentUnreserved + ";,/:@&=+$"
)

// encodeURIComponent percent-encodes every byte except ASCII letters, digits
// and `-_.!~*'()`.
func encodeURIComponent(s string) string {
	return percentEncode(s, componentUnreserved)
}

// encodeAsterisk keeps reserved URI characters such as `/`, but encodes `?` and `#`.
func encodeAsterisk(s string) string {
	return percentEncode(s, asteriskUnreserved)
}

func percentEncode(s, unreserved string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlphaNum(c) || strings.IndexByte(unreserved, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isAlphaNum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
