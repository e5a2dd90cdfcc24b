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

// Package sarif serializes augur findings as a SARIF 2.1.0 report for CI
// upload.
package sarif

import (
	"fmt"
	"go/token"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"augur.tools/augur/internal/engine"
)

const informationURI = "https://pkg.go.dev/augur.tools/augur"

// Finding is one located diagnostic ready for serialization.
type Finding struct {
	Checker  string
	Doc      string
	Message  string
	Severity engine.Severity
	Position token.Position
	End      token.Position
}

// Report builds a single-run SARIF report from the findings. One reporting
// rule is emitted per checker that produced at least one finding.
func Report(findings []Finding) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("can't create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("augur", informationURI)

	rules := make(map[string]struct{})

	for _, f := range findings {
		if _, ok := rules[f.Checker]; !ok {
			rules[f.Checker] = struct{}{}

			run.AddRule(f.Checker).
				WithDescription(f.Doc).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{
					Level: Level(f.Severity),
				})
		}

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(f.Position.Filename)).
				WithRegion(region(f)),
		)

		result := sarif.NewRuleResult(f.Checker).
			WithMessage(sarif.NewTextMessage(f.Message)).
			WithLevel(Level(f.Severity)).
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}

	report.AddRun(run)

	return report, nil
}

// Write serializes the findings to w as pretty-printed SARIF.
func Write(w io.Writer, findings []Finding) error {
	report, err := Report(findings)
	if err != nil {
		return err
	}

	if err := report.PrettyWrite(w); err != nil {
		return fmt.Errorf("can't write SARIF report: %w", err)
	}

	return nil
}

// Level maps a checker severity to the SARIF result level.
func Level(s engine.Severity) string {
	switch s {
	case engine.SeverityError:
		return "error"
	case engine.SeverityWarning:
		return "warning"
	case engine.SeveritySuggestion:
		return "note"
	default:
		return "none"
	}
}

func region(f Finding) *sarif.Region {
	r := sarif.NewRegion().
		WithStartLine(f.Position.Line).
		WithStartColumn(f.Position.Column)

	if f.End.IsValid() {
		r = r.WithEndLine(f.End.Line).WithEndColumn(f.End.Column)
	}

	return r
}
