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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// Template Grammar:
//
// Template  = { LITERAL | Escaped | Parameter } ;
// Escaped   = "\" CHAR ;
// Parameter = [ Prefix ] ( Named | Group ) [ Modifier ] | [ Prefix ] "*" ;
// Named     = ":" IDENT [ Group ] ;
// Group     = "(" PATTERN ")" ;
// Prefix    = "/" | "." ;
// Modifier  = "?" | "*" | "+" ;
//
// Sub matches of pathRegexp, in order:
//
//	"\\."          => escaped char
//	"/:test(\d+)?" => prefix "/", name "test", capture "\d+", modifier "?"
//	"/route(\d+)"  => group "\d+"
//	"/*"           => prefix "/", asterisk "*"
var pathRegexp = regexp.MustCompile(strings.Join([]string{
	`(\\.)`,
	`([\/.])?(?:(?:\:(\w+)(?:\(((?:\\.|[^\\()])+)\))?|\(((?:\\.|[^\\()])+)\))([+*?])?|(\*))`,
}, "|"))

const (
	subEscaped = iota + 1
	subPrefix
	subName
	subCapture
	subGroup
	subModifier
	subAsterisk
)

const defaultDelimiter = "/"

// scanner holds the state of a single Parse call.
// pathRegexp is shared and immutable, the cursor is not.
type scanner struct {
	input  string
	cursor int
	// Index of the next unnamed parameter.
	key int
	// Pending literal text.
	path   strings.Builder
	tokens []Token
}

// Parse splits a route template into literal and parameter tokens.
//
// Custom parameter patterns are compiled eagerly, an invalid one fails with
// ErrInvalidPattern.
func Parse(template string) ([]Token, error) {
	s := &scanner{
		input: template,
	}
	if err := s.scan(); err != nil {
		return nil, err
	}
	return s.tokens, nil
}

func (s *scanner) scan() error {
	for s.cursor < len(s.input) {
		rest := s.input[s.cursor:]
		loc := pathRegexp.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		sub := func(i int) string {
			if loc[2*i] < 0 {
				return ""
			}
			return rest[loc[2*i]:loc[2*i+1]]
		}

		s.path.WriteString(rest[:loc[0]])
		s.cursor += loc[1]

		if escaped := sub(subEscaped); escaped != "" {
			s.path.WriteString(escaped[1:])
			continue
		}

		if err := s.addParam(sub(subPrefix), sub(subName), sub(subCapture)+sub(subGroup), sub(subModifier), sub(subAsterisk) != ""); err != nil {
			return err
		}
	}

	if s.cursor < len(s.input) {
		s.path.WriteString(s.input[s.cursor:])
		s.cursor = len(s.input)
	}
	s.flushLiteral()
	return nil
}

func (s *scanner) addParam(prefix, name, pattern, modifier string, asterisk bool) error {
	s.flushLiteral()

	delimiter := prefix
	if delimiter == "" {
		delimiter = defaultDelimiter
	}

	key := Key{
		Name:      name,
		Prefix:    prefix,
		Delimiter: delimiter,
		Optional:  modifier == "?" || modifier == "*",
		Repeat:    modifier == "+" || modifier == "*",
		Partial:   prefix != "" && s.cursor < len(s.input) && s.input[s.cursor:s.cursor+1] != prefix,
		Asterisk:  asterisk,
	}
	if name == "" {
		key.Name = strconv.Itoa(s.key)
		key.Unnamed = true
		s.key += 1
	}

	switch {
	case pattern != "":
		key.Pattern = EscapeGroup(pattern)
		if _, err := regexp2.Compile("^(?:"+key.Pattern+")$", regexp2.ECMAScript); err != nil {
			return fmt.Errorf("%w: parameter %q in template %q: %v", ErrInvalidPattern, key.Name, s.input, err)
		}
	case asterisk:
		key.Pattern = ".*"
	default:
		key.Pattern = "[^" + EscapeString(delimiter) + "]+?"
	}

	s.tokens = append(s.tokens, &ParamToken{Key: key})
	return nil
}

func (s *scanner) flushLiteral() {
	if s.path.Len() == 0 {
		return
	}
	s.tokens = append(s.tokens, &LiteralToken{Text: s.path.String()})
	s.path.Reset()
}
