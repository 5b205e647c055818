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

// Package routematch generates Envoy route matchers for route templates.
package routematch

import (
	"fmt"
	"strings"

	"github.com/GoogleCloudPlatform/routepattern/src/go/options"
	"github.com/GoogleCloudPlatform/routepattern/src/go/util"
	"github.com/GoogleCloudPlatform/routepattern/src/go/util/pathpattern"
	"github.com/golang/glog"

	routepb "github.com/envoyproxy/go-control-plane/envoy/config/route/v3"
	matcherpb "github.com/envoyproxy/go-control-plane/envoy/type/matcher/v3"
	wrapperspb "github.com/golang/protobuf/ptypes/wrappers"
)

// GenRouteMatchers generates the route matchers for a route template.
//
// Templates without parameters use exact path or prefix matchers, so Envoy
// does not need to run a regex for them. Other templates use a SafeRegex
// matcher with the RE2 rendering of the template.
func GenRouteMatchers(template string, httpMethod string, opts options.PatternOptions) ([]*routepb.RouteMatch, error) {
	tokens, err := pathpattern.Parse(template)
	if err != nil {
		return nil, fmt.Errorf("fail to parse route template %q: %w", template, err)
	}

	var routeMatchers []*routepb.RouteMatch
	if literal, ok := literalPath(tokens); ok {
		routeMatchers = makeLiteralRouteMatchers(literal, opts)
	} else {
		regex, err := pathpattern.TokensToRE2(tokens, opts)
		if err != nil {
			return nil, fmt.Errorf("fail to generate route regex for template %q: %w", template, err)
		}
		if err := util.ValidateRE2ProgramSize(regex, util.GoogleRE2MaxProgramSize); err != nil {
			return nil, fmt.Errorf("invalid route path regex: %v, generated by route template: %s", err, template)
		}

		routeMatchers = append(routeMatchers, &routepb.RouteMatch{
			PathSpecifier: &routepb.RouteMatch_SafeRegex{
				SafeRegex: &matcherpb.RegexMatcher{
					Regex: regex,
				},
			},
		})
	}

	// Add on header match for `:method`.
	if httpMethod != util.HttpMethodWildCard {
		for _, routeMatcher := range routeMatchers {
			routeMatcher.Headers = []*routepb.HeaderMatcher{
				{
					Name: ":method",
					HeaderMatchSpecifier: &routepb.HeaderMatcher_StringMatch{
						StringMatch: &matcherpb.StringMatcher{
							MatchPattern: &matcherpb.StringMatcher_Exact{
								Exact: httpMethod,
							},
						},
					},
				},
			}
		}
	}

	glog.V(1).Infof("generated %d route matchers for %s %s", len(routeMatchers), httpMethod, template)
	return routeMatchers, nil
}

// literalPath returns the template text if it has no parameters.
func literalPath(tokens []pathpattern.Token) (string, bool) {
	var path strings.Builder
	for _, token := range tokens {
		literal, ok := token.(*pathpattern.LiteralToken)
		if !ok {
			return "", false
		}
		path.WriteString(literal.Text)
	}
	return path.String(), true
}

func makeLiteralRouteMatchers(path string, opts options.PatternOptions) []*routepb.RouteMatch {
	pathNoTrailingSlash := path
	if !opts.Strict {
		pathNoTrailingSlash = strings.TrimSuffix(path, "/")
	}

	if !opts.End {
		// A strict template ending with a slash does not stop at a segment boundary.
		if pathNoTrailingSlash == "" || strings.HasSuffix(pathNoTrailingSlash, "/") {
			prefix := pathNoTrailingSlash
			if prefix == "" {
				prefix = "/"
			}
			return []*routepb.RouteMatch{
				{
					PathSpecifier: &routepb.RouteMatch_Prefix{
						Prefix: prefix,
					},
					CaseSensitive: &wrapperspb.BoolValue{Value: opts.Sensitive},
				},
			}
		}
		return []*routepb.RouteMatch{
			{
				PathSpecifier: &routepb.RouteMatch_PathSeparatedPrefix{
					PathSeparatedPrefix: pathNoTrailingSlash,
				},
				CaseSensitive: &wrapperspb.BoolValue{Value: opts.Sensitive},
			},
		}
	}

	var paths []string
	switch {
	case opts.Strict:
		paths = []string{path}
	case pathNoTrailingSlash == "":
		paths = []string{"/"}
	default:
		paths = []string{pathNoTrailingSlash, pathNoTrailingSlash + "/"}
	}

	var routeMatchers []*routepb.RouteMatch
	for _, p := range paths {
		routeMatchers = append(routeMatchers, &routepb.RouteMatch{
			PathSpecifier: &routepb.RouteMatch_Path{
				Path: p,
			},
			CaseSensitive: &wrapperspb.BoolValue{Value: opts.Sensitive},
		})
	}
	return routeMatchers
}
