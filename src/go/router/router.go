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

// Package router keeps a list of registered route templates, each compiled
// into a matcher and a path generator, and plugs them into a gorilla/mux router.
package router

import (
	"fmt"
	"net/http"

	"github.com/GoogleCloudPlatform/routepattern/src/go/options"
	"github.com/GoogleCloudPlatform/routepattern/src/go/util/pathpattern"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
)

// RouteCallback is invoked with the decoded parameters of a matched route.
type RouteCallback func(params map[string]string)

// Route is a registered route template.
type Route struct {
	Path     string
	Callback RouteCallback

	regexp    *pathpattern.Regexp
	generator *pathpattern.Generator
}

// Router is an ordered list of routes sharing the same pattern options.
// Routes are registered at setup time; Router is not safe for concurrent
// registration, registered routes are safe for concurrent use.
type Router struct {
	opts   options.PatternOptions
	routes []*Route
}

// NewRouter creates an empty Router.
func NewRouter(opts options.PatternOptions) *Router {
	return &Router{
		opts: opts,
	}
}

// RegisterRoute compiles path and appends it to the list of routes.
func (r *Router) RegisterRoute(path string, callback RouteCallback) error {
	if callback == nil {
		return fmt.Errorf("empty callback for route %q", path)
	}

	tokens, err := pathpattern.Parse(path)
	if err != nil {
		return fmt.Errorf("fail to register route %q: %w", path, err)
	}
	re, err := pathpattern.TokensToRegexp(tokens, r.opts)
	if err != nil {
		return fmt.Errorf("fail to register route %q: %w", path, err)
	}
	generator, err := pathpattern.TokensToFunction(tokens, r.opts)
	if err != nil {
		return fmt.Errorf("fail to register route %q: %w", path, err)
	}

	r.routes = append(r.routes, &Route{
		Path:      path,
		Callback:  callback,
		regexp:    re,
		generator: generator,
	})
	glog.Infof("registered route %s as %s", path, re)
	return nil
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []*Route {
	return append([]*Route(nil), r.routes...)
}

// Mount adds every registered route to m, in registration order.
// A matched request invokes the route callback and is answered with
// 204 No Content.
func (r *Router) Mount(m *mux.Router) {
	for _, route := range r.routes {
		route := route
		m.MatcherFunc(route.MatcherFunc()).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			route.Callback(mux.Vars(req))
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

// Regexp returns the compiled matcher of the route.
func (rt *Route) Regexp() *pathpattern.Regexp {
	return rt.regexp
}

// Match matches path against the route.
func (rt *Route) Match(path string) (map[string]string, bool) {
	m, ok := rt.regexp.Match(path)
	if !ok {
		return nil, false
	}
	return m.Params, true
}

// URL renders the route with the given parameter values.
func (rt *Route) URL(values map[string]interface{}) (string, error) {
	return rt.generator.GeneratePath(values)
}

// MatcherFunc returns a gorilla/mux matcher for the route. Matched parameters
// are available through mux.Vars.
func (rt *Route) MatcherFunc() mux.MatcherFunc {
	return func(req *http.Request, match *mux.RouteMatch) bool {
		path := req.URL.EscapedPath()
		m, ok := rt.regexp.Match(path)
		if !ok {
			return false
		}
		if glog.V(1) {
			glog.Infof("request path %s matched route %s", path, rt.Path)
		}

		if match.Vars == nil {
			match.Vars = make(map[string]string, len(m.Params))
		}
		for k, v := range m.Params {
			match.Vars[k] = v
		}
		return true
	}
}
