// Copyright 2026 The Augur Authors. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"flag"

	"augur.tools/augur/internal/config"
	"augur.tools/augur/internal/run"
)

// registerFlags binds the runtime options to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(boolValue[config.CheckerFlags]{flags: &r.Checkers, value: config.NilFieldChecker},
		"nilfield", "check struct fields holding nil without a nilable marker")
	flags.Var(boolValue[config.CheckerFlags]{flags: &r.Checkers, value: config.CloseLeakChecker},
		"closeleak", "check Close() error values escaping without a guaranteed close")
	flags.Var(boolValue[config.Config]{flags: &r.Behavior, value: config.IncludeGenerated},
		"generated", "check generated files")
}
