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

package flags

import (
	"flag"
	"fmt"
	"strings"

	"github.com/GoogleCloudPlatform/routepattern/src/go/options"
	"github.com/golang/glog"
)

// These flags are kept in sync with options.PatternToolOptions.
// When adding or changing default values, update options.DefaultPatternToolOptions.
var (
	Templates  = flag.String("template", "", `Comma separated route templates, e.g. "/users/:id,/users/:id/books". Commas inside a parameter pattern, e.g. "/:id(\d{1,3})", do not split. More than one template is compiled as an alternation.`)
	Sensitive  = flag.Bool("sensitive", false, "When set, the generated expression is case sensitive.")
	Strict     = flag.Bool("strict", false, "When set, a trailing slash on the path is not optional.")
	End        = flag.Bool("end", true, "When set, the expression must match the whole path. Otherwise it matches a path prefix ending on a segment boundary.")
	MatchPaths = flag.String("match", "", "Comma separated paths to test against the compiled expression.")
	Params     = flag.String("params", "", `Comma separated parameter values used to render a path from the first template, e.g. "id=42,name=bob".`)
	Output     = flag.String("output", options.OutputRegex, `Output format, one of "regex", "keys" or "envoy".`)
	HttpMethod = flag.String("http_method", "*", `Http method matched by the generated Envoy route when --output=envoy. "*" matches any method.`)
)

// DefaultPatternToolOptionsFromFlags builds PatternToolOptions from the command line flags.
func DefaultPatternToolOptionsFromFlags() (options.PatternToolOptions, error) {
	params, err := ParseParams(*Params)
	if err != nil {
		return options.PatternToolOptions{}, err
	}

	opts := options.PatternToolOptions{
		PatternOptions: options.PatternOptions{
			Sensitive: *Sensitive,
			Strict:    *Strict,
			End:       *End,
		},
		Templates:  splitTemplates(*Templates),
		MatchPaths: splitList(*MatchPaths),
		Params:     params,
		Output:     *Output,
		HttpMethod: *HttpMethod,
	}

	glog.Infof("Pattern tool options: %+v", opts)
	return opts, nil
}

// ParseParams parses "key=value" pairs separated by commas.
// An empty input results in a nil map.
func ParseParams(s string) (map[string]string, error) {
	pairs := splitList(s)
	if len(pairs) == 0 {
		return nil, nil
	}

	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if !ok || name == "" {
			return nil, fmt.Errorf(`invalid param %q, expected "name=value"`, pair)
		}
		if _, exist := params[name]; exist {
			return nil, fmt.Errorf("duplicated param %q", name)
		}
		params[name] = value
	}
	return params, nil
}

func splitList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		list = appendItem(list, item)
	}
	return list
}

// splitTemplates splits s on commas outside of parentheses. Escaped
// characters are copied as is, so `\,` and `\(` never split or nest.
func splitTemplates(s string) []string {
	var templates []string
	var template strings.Builder
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			template.WriteByte(c)
			i++
			c = s[i]
		case c == '(':
			depth++
		case c == ')' && depth > 0:
			depth--
		case c == ',' && depth == 0:
			templates = appendItem(templates, template.String())
			template.Reset()
			continue
		}
		template.WriteByte(c)
	}
	return appendItem(templates, template.String())
}

func appendItem(list []string, item string) []string {
	if item = strings.TrimSpace(item); item != "" {
		list = append(list, item)
	}
	return list
}
