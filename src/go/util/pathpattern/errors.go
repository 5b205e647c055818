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

// Package pathpattern compiles Express-style route templates such as
// `/users/:id(\d+)?` or `/files/*` into anchored regular expressions and
// into generators that render concrete paths from parameter values.
package pathpattern

import (
	"errors"
)

var (
	// ErrInvalidInput is returned when the path to compile is not a template,
	// a compiled expression or an alternation of those.
	ErrInvalidInput = errors.New("invalid path input")
	// ErrInvalidPattern is returned when a custom parameter pattern or the
	// resulting expression cannot be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrMissingParameter is returned when a required parameter has no value.
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrPatternMismatch is returned when an encoded parameter value does not
	// match the pattern of its parameter.
	ErrPatternMismatch = errors.New("parameter pattern mismatch")
	// ErrUnsupportedDialect is returned when an expression cannot be
	// expressed in the RE2 syntax.
	ErrUnsupportedDialect = errors.New("unsupported in RE2 dialect")
)
