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
	"strconv"
	"strings"

	"github.com/GoogleCloudPlatform/routepattern/src/go/options"
	"github.com/dlclark/regexp2"
)

// Path is the input of PathToRegexp. It is one of Template, Expression,
// *Regexp or Alternation.
type Path interface {
	toRegexp(opts options.PatternOptions) (*Regexp, error)
}

// Template is a route template string, e.g. `/users/:id`.
type Template string

// Expression is an already compiled expression. It is used as is, every
// capturing group in its source gets an unnamed key.
type Expression struct {
	Regexp *regexp2.Regexp
}

// Alternation matches any of its paths.
type Alternation []Path

// Matches `(` not followed by `?`, i.e. the start of a capturing group.
var capturingGroupRegexp = regexp2.MustCompile(`\((?!\?)`, regexp2.None)

// FromValue converts a string, *regexp2.Regexp, *Regexp, Path, or a slice of
// those into a Path. Any other value fails with ErrInvalidInput.
func FromValue(v interface{}) (Path, error) {
	switch p := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil path", ErrInvalidInput)
	case Path:
		return p, nil
	case string:
		return Template(p), nil
	case *regexp2.Regexp:
		if p == nil {
			return nil, fmt.Errorf("%w: nil expression", ErrInvalidInput)
		}
		return Expression{Regexp: p}, nil
	case []string:
		alt := make(Alternation, 0, len(p))
		for _, s := range p {
			alt = append(alt, Template(s))
		}
		return alt, nil
	case []Path:
		return Alternation(p), nil
	case []interface{}:
		alt := make(Alternation, 0, len(p))
		for i, item := range p {
			path, err := FromValue(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			alt = append(alt, path)
		}
		return alt, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, v)
	}
}

// PathToRegexp compiles a path into an anchored expression and its keys.
func PathToRegexp(path Path, opts options.PatternOptions) (*Regexp, error) {
	if path == nil {
		return nil, fmt.Errorf("%w: nil path", ErrInvalidInput)
	}
	return path.toRegexp(opts)
}

// MustPathToRegexp is like PathToRegexp but panics on error.
func MustPathToRegexp(path Path, opts options.PatternOptions) *Regexp {
	re, err := PathToRegexp(path, opts)
	if err != nil {
		panic(fmt.Sprintf("pathpattern: %v", err))
	}
	return re
}

func (t Template) toRegexp(opts options.PatternOptions) (*Regexp, error) {
	tokens, err := Parse(string(t))
	if err != nil {
		return nil, err
	}
	return TokensToRegexp(tokens, opts)
}

func (e Expression) toRegexp(options.PatternOptions) (*Regexp, error) {
	if e.Regexp == nil {
		return nil, fmt.Errorf("%w: nil expression", ErrInvalidInput)
	}

	var keys []Key
	m, err := capturingGroupRegexp.FindStringMatch(e.Regexp.String())
	for ; m != nil && err == nil; m, err = capturingGroupRegexp.FindNextMatch(m) {
		keys = append(keys, Key{
			Name:    strconv.Itoa(len(keys)),
			Unnamed: true,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	return &Regexp{
		expr: e.Regexp,
		keys: keys,
	}, nil
}

func (r *Regexp) toRegexp(options.PatternOptions) (*Regexp, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil expression", ErrInvalidInput)
	}
	return r, nil
}

func (a Alternation) toRegexp(opts options.PatternOptions) (*Regexp, error) {
	if len(a) == 0 {
		return nil, fmt.Errorf("%w: empty alternation", ErrInvalidInput)
	}

	parts := make([]string, 0, len(a))
	var keys []Key
	for _, path := range a {
		re, err := PathToRegexp(path, opts)
		if err != nil {
			return nil, err
		}
		parts = append(parts, re.String())
		keys = append(keys, re.keys...)
	}

	return newRegexp("(?:"+strings.Join(parts, "|")+")", keys, opts)
}
