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

package routematch

import (
	"strings"
	"testing"

	"github.com/GoogleCloudPlatform/routepattern/src/go/options"
	"github.com/google/go-cmp/cmp"
	"github.com/imdario/mergo"
	"google.golang.org/protobuf/testing/protocmp"

	routepb "github.com/envoyproxy/go-control-plane/envoy/config/route/v3"
	matcherpb "github.com/envoyproxy/go-control-plane/envoy/type/matcher/v3"
	wrapperspb "github.com/golang/protobuf/ptypes/wrappers"
)

func methodHeader(method string) []*routepb.HeaderMatcher {
	return []*routepb.HeaderMatcher{
		{
			Name: ":method",
			HeaderMatchSpecifier: &routepb.HeaderMatcher_StringMatch{
				StringMatch: &matcherpb.StringMatcher{
					MatchPattern: &matcherpb.StringMatcher_Exact{
						Exact: method,
					},
				},
			},
		},
	}
}

func TestGenRouteMatchers(t *testing.T) {
	testData := []struct {
		desc              string
		template          string
		httpMethod        string
		optsIn            options.PatternOptions
		optsMergeBehavior func(*mergo.Config)
		want              []*routepb.RouteMatch
		// Not full error, tests for substring.
		wantErr string
	}{
		{
			desc:       "literal template matches with and without trailing slash",
			template:   "/shelves",
			httpMethod: "GET",
			want: []*routepb.RouteMatch{
				{
					PathSpecifier: &routepb.RouteMatch_Path{Path: "/shelves"},
					CaseSensitive: &wrapperspb.BoolValue{Value: false},
					Headers:       methodHeader("GET"),
				},
				{
					PathSpecifier: &routepb.RouteMatch_Path{Path: "/shelves/"},
					CaseSensitive: &wrapperspb.BoolValue{Value: false},
					Headers:       methodHeader("GET"),
				},
			},
		},
		{
			desc:       "root path with wildcard method",
			template:   "/",
			httpMethod: "*",
			want: []*routepb.RouteMatch{
				{
					PathSpecifier: &routepb.RouteMatch_Path{Path: "/"},
					CaseSensitive: &wrapperspb.BoolValue{Value: false},
				},
			},
		},
		{
			desc:       "strict and sensitive literal template",
			template:   "/shelves/",
			httpMethod: "*",
			optsIn:     options.PatternOptions{Strict: true, Sensitive: true},
			want: []*routepb.RouteMatch{
				{
					PathSpecifier: &routepb.RouteMatch_Path{Path: "/shelves/"},
					CaseSensitive: &wrapperspb.BoolValue{Value: true},
				},
			},
		},
		{
			desc:              "literal prefix stops at a segment boundary",
			template:          "/shelves/",
			httpMethod:        "*",
			optsIn:            options.PatternOptions{End: false},
			optsMergeBehavior: mergo.WithOverwriteWithEmptyValue,
			want: []*routepb.RouteMatch{
				{
					PathSpecifier: &routepb.RouteMatch_PathSeparatedPrefix{PathSeparatedPrefix: "/shelves"},
					CaseSensitive: &wrapperspb.BoolValue{Value: false},
				},
			},
		},
		{
			desc:              "strict literal prefix ending with slash",
			template:          "/shelves/",
			httpMethod:        "*",
			optsIn:            options.PatternOptions{Strict: true, End: false},
			optsMergeBehavior: mergo.WithOverwriteWithEmptyValue,
			want: []*routepb.RouteMatch{
				{
					PathSpecifier: &routepb.RouteMatch_Prefix{Prefix: "/shelves/"},
					CaseSensitive: &wrapperspb.BoolValue{Value: false},
				},
			},
		},
		{
			desc:       "parameters use a safe regex",
			template:   `/shelves/:shelf/books/:book(\d+)`,
			httpMethod: "POST",
			want: []*routepb.RouteMatch{
				{
					PathSpecifier: &routepb.RouteMatch_SafeRegex{
						SafeRegex: &matcherpb.RegexMatcher{
							Regex: `(?i)^\/shelves\/((?:[^\/]+?))\/books\/((?:\d+))\/?$`,
						},
					},
					Headers: methodHeader("POST"),
				},
			},
		},
		{
			desc:              "parameterised prefix match is not expressible in RE2",
			template:          "/shelves/:shelf",
			httpMethod:        "GET",
			optsIn:            options.PatternOptions{End: false},
			optsMergeBehavior: mergo.WithOverwriteWithEmptyValue,
			wantErr:           "unsupported in RE2 dialect",
		},
		{
			desc:       "regex program too large",
			template:   `/:id(\w{1000})`,
			httpMethod: "GET",
			wantErr:    "invalid route path regex: regex program size",
		},
		{
			desc:       "invalid template",
			template:   "/:id([)",
			httpMethod: "GET",
			wantErr:    `fail to parse route template "/:id([)"`,
		},
	}

	for _, tc := range testData {
		t.Run(tc.desc, func(t *testing.T) {
			opts := options.DefaultPatternOptions()
			if tc.optsMergeBehavior == nil {
				tc.optsMergeBehavior = mergo.WithOverride
			}
			if err := mergo.Merge(&opts, tc.optsIn, tc.optsMergeBehavior); err != nil {
				t.Fatalf("Merge() of test opts into default opts got err: %v", err)
			}

			got, err := GenRouteMatchers(tc.template, tc.httpMethod, opts)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("\ngot err : %v \nwant err: %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GenRouteMatchers() got err: %v", err)
			}
			if diff := cmp.Diff(tc.want, got, protocmp.Transform()); diff != "" {
				t.Errorf("GenRouteMatchers() diff (-want +got):\n%s", diff)
			}
		})
	}
}
