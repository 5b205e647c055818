// Copyright 2020 Google LLC
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

package util

import (
	"fmt"
	"regexp/syntax"
)

// RE2ProgramSize returns the number of instructions Envoy's RE2 engine
// compiles regex into. Envoy rejects routes over GoogleRE2MaxProgramSize.
func RE2ProgramSize(regex string) (int, error) {
	re, err := syntax.Parse(regex, syntax.Perl)
	if err != nil {
		return 0, err
	}
	prog, err := syntax.Compile(re.Simplify())
	if err != nil {
		return 0, err
	}
	return len(prog.Inst), nil
}

// ValidateRE2ProgramSize fails when regex is not RE2 syntax or when its
// program is larger than maxProgramSize.
func ValidateRE2ProgramSize(regex string, maxProgramSize int) error {
	size, err := RE2ProgramSize(regex)
	if err != nil {
		return fmt.Errorf("invalid RE2 regex %s: %v", regex, err)
	}
	if size > maxProgramSize {
		return fmt.Errorf("regex program size(%v) is larger than the max expected(%v): %s", size, maxProgramSize, regex)
	}
	return nil
}
