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
	"strings"

	"github.com/GoogleCloudPlatform/routepattern/src/go/options"
	"github.com/dlclark/regexp2"
)

// Generator renders concrete paths from a parsed template.
// It is immutable and safe for concurrent use.
type Generator struct {
	tokens []Token
	// One matcher per token, nil for literal tokens.
	matchers []*regexp2.Regexp
}

// Compile parses a template into a Generator using the default options.
func Compile(template string) (*Generator, error) {
	tokens, err := Parse(template)
	if err != nil {
		return nil, err
	}
	return TokensToFunction(tokens, options.DefaultPatternOptions())
}

// TokensToFunction builds a Generator from parsed tokens. Parameter values
// are validated case-insensitively unless opts.Sensitive is set.
func TokensToFunction(tokens []Token, opts options.PatternOptions) (*Generator, error) {
	g := &Generator{
		tokens:   tokens,
		matchers: make([]*regexp2.Regexp, len(tokens)),
	}
	for i, token := range tokens {
		t, ok := token.(*ParamToken)
		if !ok {
			continue
		}
		m, err := regexp2.Compile("^(?:"+t.Pattern+")$", regexpFlags(opts))
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %q: %v", ErrInvalidPattern, t.Name, err)
		}
		g.matchers[i] = m
	}
	return g, nil
}

// GeneratePath renders the template with the given values.
//
// A value is a string, any value formatted with fmt.Sprint, or for repeated
// parameters a []string or []interface{}. Values are percent-encoded and must
// match the parameter pattern. Nothing is returned unless every parameter is
// rendered.
func (g *Generator) GeneratePath(values map[string]interface{}) (string, error) {
	var path strings.Builder
	for i, token := range g.tokens {
		switch t := token.(type) {
		case *LiteralToken:
			path.WriteString(t.Text)
		case *ParamToken:
			segment, err := generateSegment(&t.Key, g.matchers[i], values[t.Name])
			if err != nil {
				return "", err
			}
			path.WriteString(segment)
		}
	}
	return path.String(), nil
}

func generateSegment(k *Key, matcher *regexp2.Regexp, value interface{}) (string, error) {
	if value == nil {
		if !k.Optional {
			return "", fmt.Errorf("%w: expected %q to be defined", ErrMissingParameter, k.Name)
		}
		// Keep the prefix of a partial parameter, e.g. `/:from-:to?`.
		if k.Partial {
			return k.Prefix, nil
		}
		return "", nil
	}

	if list, ok := toList(value); ok {
		return generateRepeatedSegment(k, matcher, list)
	}

	segment := encodeParam(k, fmt.Sprint(value))
	if !matchSegment(matcher, segment) {
		return "", fmt.Errorf("%w: expected %q to match %q, but received %q", ErrPatternMismatch, k.Name, k.Pattern, segment)
	}
	return k.Prefix + segment, nil
}

func generateRepeatedSegment(k *Key, matcher *regexp2.Regexp, list []string) (string, error) {
	if !k.Repeat {
		return "", fmt.Errorf("%w: expected %q to not repeat, but received %q", ErrPatternMismatch, k.Name, list)
	}
	if len(list) == 0 {
		if k.Optional {
			return "", nil
		}
		return "", fmt.Errorf("%w: expected %q to not be empty", ErrMissingParameter, k.Name)
	}

	var path strings.Builder
	for j, v := range list {
		segment := encodeParam(k, v)
		if !matchSegment(matcher, segment) {
			return "", fmt.Errorf("%w: expected all %q to match %q, but received %q", ErrPatternMismatch, k.Name, k.Pattern, segment)
		}
		if j == 0 {
			path.WriteString(k.Prefix)
		} else {
			path.WriteString(k.Delimiter)
		}
		path.WriteString(segment)
	}
	return path.String(), nil
}

func toList(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		list := make([]string, 0, len(v))
		for _, item := range v {
			list = append(list, fmt.Sprint(item))
		}
		return list, true
	}
	return nil, false
}

func matchSegment(matcher *regexp2.Regexp, segment string) bool {
	ok, err := matcher.MatchString(segment)
	return err == nil && ok
}

func encodeParam(k *Key, value string) string {
	if k.Asterisk {
		return encodeAsterisk(value)
	}
	return encodeURIComponent(value)
}
