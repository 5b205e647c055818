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
	"errors"
	"strings"
	"testing"
)

func TestGeneratePath(t *testing.T) {
	testData := []struct {
		desc     string
		template string
		values   map[string]interface{}
		wantPath string
		// Not full error, tests for substring.
		wantErr    error
		wantErrMsg string
	}{
		{
			desc:     "number value",
			template: `/users/:id(\d+)`,
			values:   map[string]interface{}{"id": 42},
			wantPath: "/users/42",
		},
		{
			desc:       "missing required value",
			template:   `/users/:id(\d+)`,
			values:     map[string]interface{}{},
			wantErr:    ErrMissingParameter,
			wantErrMsg: `expected "id" to be defined`,
		},
		{
			desc:       "value does not match pattern",
			template:   `/users/:id(\d+)`,
			values:     map[string]interface{}{"id": "abc"},
			wantErr:    ErrPatternMismatch,
			wantErrMsg: `expected "id" to match "\\d+", but received "abc"`,
		},
		{
			desc:     "nil map renders literal only templates",
			template: "/about",
			values:   nil,
			wantPath: "/about",
		},
		{
			desc:     "optional value omitted",
			template: "/users/:id?",
			values:   map[string]interface{}{},
			wantPath: "/users",
		},
		{
			desc:     "nil value counts as omitted",
			template: "/users/:id?",
			values:   map[string]interface{}{"id": nil},
			wantPath: "/users",
		},
		{
			desc:     "value is component encoded",
			template: "/:name",
			values:   map[string]interface{}{"name": "a b/c?d"},
			wantPath: "/a%20b%2Fc%3Fd",
		},
		{
			desc:     "wildcard keeps slashes",
			template: "/files/*",
			values:   map[string]interface{}{"0": "a/b c.txt?x#y"},
			wantPath: "/files/a/b%20c.txt%3Fx%23y",
		},
		{
			desc:     "repeated values joined by the delimiter",
			template: "/:ids+",
			values:   map[string]interface{}{"ids": []string{"1", "2", "3"}},
			wantPath: "/1/2/3",
		},
		{
			desc:     "repeated values of any type",
			template: `/:ids(\d+)+`,
			values:   map[string]interface{}{"ids": []interface{}{1, "2"}},
			wantPath: "/1/2",
		},
		{
			desc:       "repeated value does not match pattern",
			template:   `/:ids(\d+)+`,
			values:     map[string]interface{}{"ids": []interface{}{1, "x"}},
			wantErr:    ErrPatternMismatch,
			wantErrMsg: `expected all "ids" to match`,
		},
		{
			desc:       "empty list for required repeated parameter",
			template:   "/:ids+",
			values:     map[string]interface{}{"ids": []string{}},
			wantErr:    ErrMissingParameter,
			wantErrMsg: `expected "ids" to not be empty`,
		},
		{
			desc:     "empty list for optional repeated parameter",
			template: "/:ids*",
			values:   map[string]interface{}{"ids": []interface{}{}},
			wantPath: "",
		},
		{
			desc:       "list for parameter that does not repeat",
			template:   "/:id",
			values:     map[string]interface{}{"id": []string{"a", "b"}},
			wantErr:    ErrPatternMismatch,
			wantErrMsg: `expected "id" to not repeat`,
		},
		{
			desc:     "literal text between parameters",
			template: "/:file.:ext",
			values:   map[string]interface{}{"file": "report", "ext": "pdf"},
			wantPath: "/report.pdf",
		},
		{
			desc:     "omitted partial parameter keeps its prefix",
			template: "/:x?-y",
			values:   map[string]interface{}{},
			wantPath: "/-y",
		},
		{
			desc:     "escaped characters are rendered without backslash",
			template: `/\:literal/:id`,
			values:   map[string]interface{}{"id": 1},
			wantPath: "/:literal/1",
		},
		{
			desc:     "dot delimited default pattern rejects dots",
			template: "/:file.:ext",
			values:   map[string]interface{}{"file": "report", "ext": "tar.gz"},
			wantErr:  ErrPatternMismatch,
		},
	}

	for _, tc := range testData {
		t.Run(tc.desc, func(t *testing.T) {
			g, err := Compile(tc.template)
			if err != nil {
				t.Fatalf("Compile(%q) got err: %v", tc.template, err)
			}

			got, err := g.GeneratePath(tc.values)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("GeneratePath(%v) got err %v, want %v", tc.values, err, tc.wantErr)
				}
				if !strings.Contains(err.Error(), tc.wantErrMsg) {
					t.Errorf("GeneratePath(%v) \ngot err : %v \nwant err: %v", tc.values, err, tc.wantErrMsg)
				}
				if got != "" {
					t.Errorf("GeneratePath(%v) returned partial path %q with an error", tc.values, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("GeneratePath(%v) got err: %v", tc.values, err)
			}
			if got != tc.wantPath {
				t.Errorf("GeneratePath(%v) got %q, want %q", tc.values, got, tc.wantPath)
			}
		})
	}
}

func TestCompileInvalidPattern(t *testing.T) {
	if _, err := Compile("/:id([)"); !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("Compile() got err %v, want %v", err, ErrInvalidPattern)
	}
}

func TestEncodeURIComponent(t *testing.T) {
	testData := []struct {
		in   string
		want string
	}{
		{in: "abcXYZ019", want: "abcXYZ019"},
		{in: "-_.!~*'()", want: "-_.!~*'()"},
		{in: " /?#&=+:@$,;", want: "%20%2F%3F%23%26%3D%2B%3A%40%24%2C%3B"},
		{in: "é", want: "%C3%A9"},
	}

	for _, tc := range testData {
		if got := encodeURIComponent(tc.in); got != tc.want {
			t.Errorf("encodeURIComponent(%q) got %q, want %q", tc.in, got, tc.want)
		}
	}
}
