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
package main

import (
	"flag"
	"os"

	"github.com/GoogleCloudPlatform/routepattern/src/go/patterntool"
	"github.com/GoogleCloudPlatform/routepattern/src/go/patterntool/flags"
	"github.com/golang/glog"
)

func main() {
	flag.Parse()
	defer glog.Flush()

	opts, err := flags.DefaultPatternToolOptionsFromFlags()
	if err != nil {
		glog.Exitf("fail to read flags: %v", err)
	}

	if err := patterntool.Run(opts, os.Stdout); err != nil {
		glog.Exitf("fail to run pattern tool: %v", err)
	}
}
