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

package sarif_test

import (
	"bytes"
	"encoding/json"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"augur.tools/augur/internal/engine"
	. "augur.tools/augur/internal/sarif"
)

func testFindings() []Finding {
	return []Finding{
		{
			Checker:  "closeleak",
			Doc:      "reports leaked resources",
			Message:  "conn should be closed (discarded)",
			Severity: engine.SeverityWarning,
			Position: token.Position{Filename: "a.go", Line: 5, Column: 2},
			End:      token.Position{Filename: "a.go", Line: 5, Column: 12},
		},
		{
			Checker:  "closeleak",
			Doc:      "reports leaked resources",
			Message:  "file should be closed (escapes via return)",
			Severity: engine.SeverityWarning,
			Position: token.Position{Filename: "b.go", Line: 9, Column: 10},
		},
		{
			Checker:  "nilfield",
			Doc:      "reports nil-holding fields",
			Message:  `field "next" holds nil but is not marked //augur:nilable`,
			Severity: engine.SeverityError,
			Position: token.Position{Filename: "c.go", Line: 3, Column: 1},
		},
	}
}

func TestReport(t *testing.T) {
	t.Parallel()

	report, err := Report(testFindings())
	require.NoError(t, err)

	require.Len(t, report.Runs, 1)
	run := report.Runs[0]

	assert.Equal(t, "augur", run.Tool.Driver.Name)

	// One rule per checker, despite two closeleak findings.
	require.Len(t, run.Tool.Driver.Rules, 2)
	assert.Equal(t, "closeleak", run.Tool.Driver.Rules[0].ID)
	assert.Equal(t, "nilfield", run.Tool.Driver.Rules[1].ID)

	require.NotNil(t, run.Tool.Driver.Rules[0].DefaultConfiguration)
	assert.Equal(t, "warning", run.Tool.Driver.Rules[0].DefaultConfiguration.Level)
	assert.Equal(t, "error", run.Tool.Driver.Rules[1].DefaultConfiguration.Level)

	require.Len(t, run.Results, 3)

	first := run.Results[0]
	require.NotNil(t, first.RuleID)
	assert.Equal(t, "closeleak", *first.RuleID)
	require.NotNil(t, first.Level)
	assert.Equal(t, "warning", *first.Level)
	require.NotNil(t, first.Message.Text)
	assert.Equal(t, "conn should be closed (discarded)", *first.Message.Text)

	require.Len(t, first.Locations, 1)
	loc := first.Locations[0].PhysicalLocation
	require.NotNil(t, loc)
	require.NotNil(t, loc.ArtifactLocation.URI)
	assert.Equal(t, "a.go", *loc.ArtifactLocation.URI)

	region := loc.Region
	require.NotNil(t, region)
	require.NotNil(t, region.StartLine)
	assert.Equal(t, 5, *region.StartLine)
	require.NotNil(t, region.StartColumn)
	assert.Equal(t, 2, *region.StartColumn)
	require.NotNil(t, region.EndColumn)
	assert.Equal(t, 12, *region.EndColumn)

	// The second finding has no end position, so its region carries none.
	second := run.Results[1].Locations[0].PhysicalLocation.Region
	require.NotNil(t, second)
	assert.Nil(t, second.EndLine)
	assert.Nil(t, second.EndColumn)
}

func TestLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity engine.Severity
		want     string
	}{
		{severity: engine.SeverityError, want: "error"},
		{severity: engine.SeverityWarning, want: "warning"},
		{severity: engine.SeveritySuggestion, want: "note"},
		{severity: engine.Severity(0xff), want: "none"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Level(tt.severity))
		})
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, Write(&buf, testFindings()))
	assert.True(t, json.Valid(buf.Bytes()), "output is not valid JSON")
	assert.Contains(t, buf.String(), `"2.1.0"`)
	assert.Contains(t, buf.String(), `"augur"`)
}

func TestReportEmpty(t *testing.T) {
	t.Parallel()

	report, err := Report(nil)
	require.NoError(t, err)

	require.Len(t, report.Runs, 1)
	assert.Empty(t, report.Runs[0].Results)
	assert.Empty(t, report.Runs[0].Tool.Driver.Rules)
}
