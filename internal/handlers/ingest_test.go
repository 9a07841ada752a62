package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruby4mag/testtracker-go-backend-ui/internal/models"
)

func TestMapCTRFCaseStatus(t *testing.T) {
	assert.Equal(t, models.CasePassed, mapCTRFCaseStatus("passed"))
	assert.Equal(t, models.CaseFailed, mapCTRFCaseStatus("failed"))
	assert.Equal(t, models.CaseSkipped, mapCTRFCaseStatus("skipped"))
	assert.Equal(t, models.CaseSkipped, mapCTRFCaseStatus("pending"))
	assert.Equal(t, models.CaseSkipped, mapCTRFCaseStatus("other"))
}

func TestMapCTRFResultStatus(t *testing.T) {
	assert.Equal(t, models.ResultPassed, mapCTRFResultStatus("passed"))
	assert.Equal(t, models.ResultFailed, mapCTRFResultStatus("failed"))
	assert.Equal(t, models.ResultInfo, mapCTRFResultStatus("skipped"))
	assert.Equal(t, models.ResultInfo, mapCTRFResultStatus("pending"))
	assert.Equal(t, models.ResultInfo, mapCTRFResultStatus("other"))
}

func TestMapCTRFReport(t *testing.T) {
	now := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)
	results := CTRFResults{
		Tool: CTRFTool{Name: "jest"},
		Summary: CTRFSummary{
			Tests:   3,
			Passed:  1,
			Failed:  1,
			Skipped: 1,
			Start:   1706828654274,
			Stop:    1706828655782,
		},
		Tests: []CTRFTest{
			{Name: "adds line items", Status: "passed", Duration: 120},
			{Name: "rejects empty cart", Status: "failed", Duration: 85, Message: "expected 400", Trace: "cart_test.js:41"},
			{Name: "applies coupon", Status: "skipped"},
		},
		Environment: CTRFEnvironment{
			AppName:         "checkout",
			BuildNumber:     "build-311",
			TestEnvironment: "staging",
		},
	}

	execution, cases, testResults := mapCTRFReport("suite-9", results, now)

	assert.NotEmpty(t, execution.ID)
	assert.Equal(t, "suite-9", execution.TestSuiteID)
	assert.Equal(t, models.ExecutionFailed, execution.Status)
	assert.Equal(t, "staging", execution.Environment)
	assert.Equal(t, "build-311", execution.BuildID)
	assert.Equal(t, now, execution.CreatedAt)
	require.NotNil(t, execution.StartedAt)
	assert.Equal(t, time.UnixMilli(1706828654274).UTC(), *execution.StartedAt)
	require.NotNil(t, execution.CompletedAt)
	assert.Equal(t, time.UnixMilli(1706828655782).UTC(), *execution.CompletedAt)
	assert.Equal(t, map[string]interface{}{"tool": "jest"}, execution.Metadata)

	require.Len(t, cases, 3)
	require.Len(t, testResults, 3)

	for i := range cases {
		assert.Equal(t, execution.ID, cases[i].TestExecutionID)
		assert.Equal(t, cases[i].ID, testResults[i].TestCaseID)
		assert.NotEmpty(t, cases[i].ID)
	}
	assert.NotEqual(t, cases[0].ID, cases[1].ID)

	assert.Equal(t, models.CasePassed, cases[0].Status)
	assert.Equal(t, models.CaseFailed, cases[1].Status)
	assert.Equal(t, models.CaseSkipped, cases[2].Status)
	assert.Equal(t, int64(120), cases[0].DurationMs)

	assert.Equal(t, models.ResultPassed, testResults[0].Status)
	assert.Equal(t, models.ResultFailed, testResults[1].Status)
	assert.Equal(t, models.ResultInfo, testResults[2].Status)
	assert.Equal(t, "expected 400\ncart_test.js:41", testResults[1].ErrorDetails)
	assert.Empty(t, testResults[0].ErrorDetails)
}

func TestMapCTRFReportAllPassing(t *testing.T) {
	now := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)
	results := CTRFResults{
		Summary: CTRFSummary{Tests: 1, Passed: 1},
		Tests:   []CTRFTest{{Name: "ok", Status: "passed"}},
	}

	execution, cases, testResults := mapCTRFReport("suite-1", results, now)

	assert.Equal(t, models.ExecutionCompleted, execution.Status)
	assert.Nil(t, execution.StartedAt)
	assert.Nil(t, execution.CompletedAt)
	assert.Nil(t, execution.Metadata)
	assert.Len(t, cases, 1)
	assert.Len(t, testResults, 1)
}
