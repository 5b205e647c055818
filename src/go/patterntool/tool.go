// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// Package patterntool compiles route templates from the command line and
// prints the generated expression, its keys or its Envoy route matchers.
package patterntool

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/GoogleCloudPlatform/routepattern/src/go/options"
	"github.com/GoogleCloudPlatform/routepattern/src/go/routematch"
	"github.com/GoogleCloudPlatform/routepattern/src/go/util/pathpattern"
	"github.com/golang/glog"
	"github.com/golang/protobuf/jsonpb"
)

// Run compiles opts.Templates and writes the requested output to w, followed
// by one line per path in opts.MatchPaths and, when opts.Params is set, the
// path rendered from the first template.
func Run(opts options.PatternToolOptions, w io.Writer) error {
	if len(opts.Templates) == 0 {
		return fmt.Errorf("at least one route template is required")
	}

	re, err := compileTemplates(opts.Templates, opts.PatternOptions)
	if err != nil {
		return err
	}

	switch opts.Output {
	case options.OutputRegex:
		if _, err := fmt.Fprintln(w, re.String()); err != nil {
			return err
		}
	case options.OutputKeys:
		if err := writeKeys(w, re.Keys()); err != nil {
			return err
		}
	case options.OutputEnvoy:
		if err := writeRouteMatchers(w, opts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format %q, expected one of %q, %q or %q",
			opts.Output, options.OutputRegex, options.OutputKeys, options.OutputEnvoy)
	}

	for _, path := range opts.MatchPaths {
		if err := writeMatch(w, re, path); err != nil {
			return err
		}
	}

	if opts.Params != nil {
		if err := writeGeneratedPath(w, opts.Templates[0], opts.Params, opts.PatternOptions); err != nil {
			return err
		}
	}
	return nil
}

func compileTemplates(templates []string, opts options.PatternOptions) (*pathpattern.Regexp, error) {
	var path pathpattern.Path
	if len(templates) == 1 {
		path = pathpattern.Template(templates[0])
	} else {
		alternation := make(pathpattern.Alternation, 0, len(templates))
		for _, template := range templates {
			alternation = append(alternation, pathpattern.Template(template))
		}
		path = alternation
	}

	re, err := pathpattern.PathToRegexp(path, opts)
	if err != nil {
		return nil, fmt.Errorf("fail to compile route templates %q: %w", templates, err)
	}
	glog.V(1).Infof("compiled %d route template(s) into %s", len(templates), re.String())
	return re, nil
}

func writeKeys(w io.Writer, keys []pathpattern.Key) error {
	if keys == nil {
		keys = []pathpattern.Key{}
	}
	b, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return fmt.Errorf("fail to marshal keys: %v", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeRouteMatchers(w io.Writer, opts options.PatternToolOptions) error {
	if len(opts.Templates) > 1 {
		glog.Warningf("Envoy route matchers are only generated for the first template %q", opts.Templates[0])
	}

	routeMatchers, err := routematch.GenRouteMatchers(opts.Templates[0], opts.HttpMethod, opts.PatternOptions)
	if err != nil {
		return err
	}

	m := &jsonpb.Marshaler{
		OrigName: true,
		Indent:   "  ",
	}
	for _, routeMatcher := range routeMatchers {
		s, err := m.MarshalToString(routeMatcher)
		if err != nil {
			return fmt.Errorf("fail to marshal route matcher: %v", err)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

func writeMatch(w io.Writer, re *pathpattern.Regexp, path string) error {
	match, ok := re.Match(path)
	if !ok {
		_, err := fmt.Fprintf(w, "%s: no match\n", path)
		return err
	}

	params, err := json.Marshal(match.Params)
	if err != nil {
		return fmt.Errorf("fail to marshal params of path %q: %v", path, err)
	}
	_, err = fmt.Fprintf(w, "%s: match %s\n", path, params)
	return err
}

func writeGeneratedPath(w io.Writer, template string, params map[string]string, opts options.PatternOptions) error {
	tokens, err := pathpattern.Parse(template)
	if err != nil {
		return fmt.Errorf("fail to parse route template %q: %w", template, err)
	}
	generator, err := pathpattern.TokensToFunction(tokens, opts)
	if err != nil {
		return fmt.Errorf("fail to compile route template %q: %w", template, err)
	}

	values := make(map[string]interface{}, len(params))
	for name, value := range params {
		values[name] = value
	}
	path, err := generator.GeneratePath(values)
	if err != nil {
		return fmt.Errorf("fail to generate path from route template %q: %w", template, err)
	}

	_, err = fmt.Fprintf(w, "generated: %s\n", path)
	return err
}
