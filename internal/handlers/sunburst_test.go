package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruby4mag/testtracker-go-backend-ui/internal/models"
	"github.com/ruby4mag/testtracker-go-backend-ui/internal/sunburst"
)

func TestDecorateNode(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	snap := sunburst.Snapshot{
		Teams:        []models.Team{{ID: "t1", Name: "Platform", CreatedAt: created}},
		Applications: []models.Application{{ID: "a1", TeamID: "t1", Name: "Billing", CreatedAt: created}},
		TestSuites:   []models.TestSuite{{ID: "s1", ApplicationID: "a1", Name: "Invoices", CreatedAt: created}},
		TestExecutions: []models.TestExecution{
			{ID: "e1", TestSuiteID: "s1", Status: models.ExecutionCompleted, CreatedAt: created},
		},
		TestCases: []models.TestCase{
			{ID: "c1", TestExecutionID: "e1", Name: "Checkout", Status: models.CasePassed, CreatedAt: created},
		},
		TestResults: []models.TestResult{
			{ID: "r1", TestCaseID: "c1", Name: "returns 201", Status: models.ResultPassed, CreatedAt: created},
			{ID: "r2", TestCaseID: "c1", Name: "persists total", Status: models.ResultFailed, CreatedAt: created},
		},
	}

	decorated := decorateNode(sunburst.BuildTree("Test Results", snap))

	assert.Equal(t, "#495057", decorated.Color)
	assert.Equal(t, "Test Results (50.0%)", decorated.Label)

	require.Len(t, decorated.Children, 1)
	testCase := decorated.Children[0].Children[0].Children[0].Children[0].Children[0]
	assert.Equal(t, sunburst.TypeTestCase, testCase.Type)
	assert.Equal(t, "rgb(223, 223, 32)", testCase.Color)
	assert.Equal(t, "Checkout (50.0%)", testCase.Label)

	require.Len(t, testCase.Children, 2)
	passed := testCase.Children[0]
	assert.Equal(t, 1, passed.Value)
	assert.Nil(t, passed.Children)
	assert.Equal(t, "#28a745", passed.Color)
	assert.Equal(t, "returns 201 (100.0%)", passed.Label)
}

func TestDecorateNodeEmptyTree(t *testing.T) {
	decorated := decorateNode(sunburst.BuildTree("Test Results", sunburst.Snapshot{}))

	assert.NotNil(t, decorated.Children)
	assert.Len(t, decorated.Children, 0)
	assert.Zero(t, decorated.Value)
	assert.Equal(t, "#495057", decorated.Color)
	assert.Equal(t, "Test Results (50.0%)", decorated.Label)
}
