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
	"net/url"
	"strings"

	"github.com/GoogleCloudPlatform/routepattern/src/go/options"
	"github.com/dlclark/regexp2"
	"github.com/golang/glog"
)

const (
	escapedDelimiter = `\/`

	// Accepts one trailing slash when not in strict mode.
	optionalTrailingSlashRegex = `(?:\/(?=$))?`
	// Ends a prefix match on a segment boundary.
	segmentBoundaryRegex = `(?=\/|$)`
)

// Regexp is a compiled route template together with the keys of its capture
// groups. It is immutable and safe for concurrent use.
type Regexp struct {
	expr *regexp2.Regexp
	keys []Key
}

// Match is the result of a successful match.
type Match struct {
	// The matched portion of the input.
	Path string
	// Percent-decoded parameter values by key name. Parameters that did not
	// participate in the match are absent.
	Params map[string]string
}

// TokensToRegexp compiles parsed tokens into an anchored expression.
func TokensToRegexp(tokens []Token, opts options.PatternOptions) (*Regexp, error) {
	route, keys := buildRoute(tokens)
	endsWithDelimiter := strings.HasSuffix(route, escapedDelimiter)

	if !opts.Strict {
		route = strings.TrimSuffix(route, escapedDelimiter) + optionalTrailingSlashRegex
	}

	switch {
	case opts.End:
		route += "$"
	case opts.Strict && endsWithDelimiter:
	default:
		route += segmentBoundaryRegex
	}

	return newRegexp("^"+route, keys, opts)
}

// TokensToRE2 renders the tokens with the same semantics as TokensToRegexp,
// but in the RE2 syntax understood by Envoy. Prefix matching (End=false)
// requires a lookahead and is not supported.
func TokensToRE2(tokens []Token, opts options.PatternOptions) (string, error) {
	if !opts.End {
		return "", fmt.Errorf("%w: a match that is not anchored to the end needs a lookahead", ErrUnsupportedDialect)
	}

	route, _ := buildRoute(tokens)
	if !opts.Strict {
		route = strings.TrimSuffix(route, escapedDelimiter) + `\/?`
	}
	route = "^" + route + "$"

	if !opts.Sensitive {
		route = "(?i)" + route
	}
	return route, nil
}

func buildRoute(tokens []Token) (string, []Key) {
	var route strings.Builder
	var keys []Key
	for _, token := range tokens {
		switch t := token.(type) {
		case *LiteralToken:
			route.WriteString(EscapeString(t.Text))
		case *ParamToken:
			keys = append(keys, t.Key)
			route.WriteString(captureGroup(&t.Key))
		}
	}
	return route.String(), keys
}

func captureGroup(k *Key) string {
	prefix := EscapeString(k.Prefix)
	capture := "(?:" + k.Pattern + ")"

	if k.Repeat {
		capture += "(?:" + prefix + capture + ")*"
	}

	switch {
	case k.Optional && (k.Partial || prefix == ""):
		return prefix + "(" + capture + ")?"
	case k.Optional:
		return "(?:" + prefix + "(" + capture + "))?"
	default:
		return prefix + "(" + capture + ")"
	}
}

func regexpFlags(opts options.PatternOptions) regexp2.RegexOptions {
	flags := regexp2.RegexOptions(regexp2.ECMAScript)
	if !opts.Sensitive {
		flags |= regexp2.IgnoreCase
	}
	return flags
}

func newRegexp(source string, keys []Key, opts options.PatternOptions) (*Regexp, error) {
	expr, err := regexp2.Compile(source, regexpFlags(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, source, err)
	}

	if glog.V(2) {
		glog.Infof("compiled route expression %s with %d keys", source, len(keys))
	}
	return &Regexp{
		expr: expr,
		keys: keys,
	}, nil
}

// String returns the source of the expression.
func (r *Regexp) String() string {
	return r.expr.String()
}

// Keys returns a copy of the keys, one per capture group, in group order.
func (r *Regexp) Keys() []Key {
	return append([]Key(nil), r.keys...)
}

// MatchString reports whether path matches the expression.
func (r *Regexp) MatchString(path string) bool {
	ok, err := r.expr.MatchString(path)
	return err == nil && ok
}

// Exec returns the raw values of all capture groups, in group order.
// Groups that did not participate in the match are returned as "".
func (r *Regexp) Exec(path string) ([]string, bool) {
	m, err := r.expr.FindStringMatch(path)
	if err != nil || m == nil {
		return nil, false
	}

	groups := m.Groups()
	values := make([]string, 0, len(groups)-1)
	for _, g := range groups[1:] {
		values = append(values, g.String())
	}
	return values, true
}

// Match matches path and maps the captured values to their key names.
func (r *Regexp) Match(path string) (*Match, bool) {
	m, err := r.expr.FindStringMatch(path)
	if err != nil || m == nil {
		return nil, false
	}

	groups := m.Groups()
	params := make(map[string]string, len(r.keys))
	for i, key := range r.keys {
		if i+1 >= len(groups) {
			break
		}
		g := groups[i+1]
		if len(g.Captures) == 0 {
			continue
		}
		params[key.Name] = decodeParam(g.String())
	}

	return &Match{
		Path:   m.String(),
		Params: params,
	}, true
}

func decodeParam(value string) string {
	decoded, err := url.PathUnescape(value)
	if err != nil {
		glog.V(1).Infof("keeping undecodable parameter value %q: %v", value, err)
		return value
	}
	return decoded
}
