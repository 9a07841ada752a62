package sunburst

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruby4mag/testtracker-go-backend-ui/internal/models"
)

var fixtureTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// singleChainSnapshot is one team -> app -> suite -> execution -> case with a
// passed and a failed result.
func singleChainSnapshot() Snapshot {
	started := fixtureTime.Add(5 * time.Minute)
	completed := fixtureTime.Add(12 * time.Minute)
	return Snapshot{
		Teams: []models.Team{
			{ID: "team-1", Name: "Platform", Description: "Core platform team", Tags: []string{"backend"}, CreatedAt: fixtureTime},
		},
		Applications: []models.Application{
			{ID: "app-1", TeamID: "team-1", Name: "Billing API", Version: "2.4.1", RepositoryURL: "https://git.example.com/billing", CreatedAt: fixtureTime},
		},
		TestSuites: []models.TestSuite{
			{ID: "suite-1", ApplicationID: "app-1", Name: "Invoice Suite", SourceLocation: "tests/invoice", CreatedAt: fixtureTime},
		},
		TestExecutions: []models.TestExecution{
			{ID: "3f9a1c0d-0000-4000-8000-000000000001", TestSuiteID: "suite-1", Status: models.ExecutionCompleted, Environment: "staging", BuildID: "build-77", StartedAt: &started, CompletedAt: &completed, CreatedAt: fixtureTime},
		},
		TestCases: []models.TestCase{
			{ID: "case-1", TestExecutionID: "3f9a1c0d-0000-4000-8000-000000000001", Name: "creates invoice", Status: models.CasePassed, DurationMs: 420, CreatedAt: fixtureTime},
		},
		TestResults: []models.TestResult{
			{ID: "res-1", TestCaseID: "case-1", Name: "returns 201", Status: models.ResultPassed, DurationMs: 200, CreatedAt: fixtureTime},
			{ID: "res-2", TestCaseID: "case-1", Name: "persists total", Status: models.ResultFailed, Expected: "100.00", Actual: "99.10", ErrorDetails: "rounding drift", CreatedAt: fixtureTime},
		},
	}
}

func walk(n *Node, visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		walk(child, visit)
	}
}

func TestBuildTreeFullChain(t *testing.T) {
	root := BuildTree("Test Results", singleChainSnapshot())

	require.Equal(t, TypeRoot, root.Type)
	assert.Equal(t, "Test Results", root.Name)
	assert.Empty(t, root.ID)
	require.Len(t, root.Children, 1)

	team := root.Children[0]
	assert.Equal(t, TypeTeam, team.Type)
	assert.Equal(t, "Platform", team.Name)
	assert.Equal(t, "team-1", team.ID)
	assert.Empty(t, team.Status)
	require.Len(t, team.Children, 1)

	app := team.Children[0]
	assert.Equal(t, TypeApplication, app.Type)
	assert.Empty(t, app.Status)
	require.Len(t, app.Children, 1)

	suite := app.Children[0]
	assert.Equal(t, TypeTestSuite, suite.Type)
	require.Len(t, suite.Children, 1)

	exec := suite.Children[0]
	assert.Equal(t, TypeTestExecution, exec.Type)
	assert.Equal(t, "Execution 3f9a1c0d", exec.Name)
	assert.Equal(t, models.ExecutionCompleted, exec.Status)
	require.Len(t, exec.Children, 1)

	testCase := exec.Children[0]
	assert.Equal(t, TypeTestCase, testCase.Type)
	assert.Equal(t, "creates invoice", testCase.Name)
	require.Len(t, testCase.Children, 2)

	assert.Equal(t, "returns 201", testCase.Children[0].Name)
	assert.Equal(t, "persists total", testCase.Children[1].Name)
	for _, result := range testCase.Children {
		assert.Equal(t, TypeTestResult, result.Type)
		assert.Equal(t, 1, result.Value)
		assert.Nil(t, result.Children)
	}
}

func TestBuildTreeLeafInvariant(t *testing.T) {
	root := BuildTree("Test Results", singleChainSnapshot())

	walk(root, func(n *Node) {
		if n.Type == TypeRoot {
			assert.NotNil(t, n.Children)
			assert.Zero(t, n.Value)
			return
		}
		if n.Children == nil {
			assert.Equal(t, 1, n.Value, "leaf %q must carry value 1", n.Name)
		} else {
			assert.Zero(t, n.Value, "branch %q must not carry a value", n.Name)
			assert.NotEmpty(t, n.Children)
		}
	})
}

func TestBuildTreeMetadataCuration(t *testing.T) {
	root := BuildTree("Test Results", singleChainSnapshot())

	team := root.Children[0]
	assert.Equal(t, "Core platform team", team.Metadata["description"])
	assert.Equal(t, fixtureTime, team.Metadata["createdAt"])
	assert.Equal(t, []string{"backend"}, team.Metadata["tags"])

	app := team.Children[0]
	assert.Equal(t, "2.4.1", app.Metadata["version"])
	assert.Equal(t, "https://git.example.com/billing", app.Metadata["repositoryUrl"])
	_, hasTags := app.Metadata["tags"]
	assert.False(t, hasTags, "empty tags must stay absent")

	suite := app.Children[0]
	assert.Equal(t, "tests/invoice", suite.Metadata["sourceLocation"])

	exec := suite.Children[0]
	assert.Equal(t, "staging", exec.Metadata["environment"])
	assert.Equal(t, "build-77", exec.Metadata["buildId"])
	assert.Equal(t, fixtureTime.Add(5*time.Minute), exec.Metadata["startedAt"])
	assert.Equal(t, fixtureTime.Add(12*time.Minute), exec.Metadata["completedAt"])

	testCase := exec.Children[0]
	assert.Equal(t, int64(420), testCase.Metadata["durationMs"])

	failed := testCase.Children[1]
	assert.Equal(t, "100.00", failed.Metadata["expected"])
	assert.Equal(t, "99.10", failed.Metadata["actual"])
	assert.Equal(t, "rounding drift", failed.Metadata["errorDetails"])
	_, hasPriority := failed.Metadata["priority"]
	assert.False(t, hasPriority)
}

func TestBuildTreeShortExecutionID(t *testing.T) {
	snap := Snapshot{
		Teams:          []models.Team{{ID: "t", Name: "T", CreatedAt: fixtureTime}},
		Applications:   []models.Application{{ID: "a", TeamID: "t", Name: "A", CreatedAt: fixtureTime}},
		TestSuites:     []models.TestSuite{{ID: "s", ApplicationID: "a", Name: "S", CreatedAt: fixtureTime}},
		TestExecutions: []models.TestExecution{{ID: "ab12", TestSuiteID: "s", Status: models.ExecutionPending, CreatedAt: fixtureTime}},
	}

	root := BuildTree("Test Results", snap)
	exec := root.Children[0].Children[0].Children[0].Children[0]
	assert.Equal(t, "Execution ab12", exec.Name)
}

func TestBuildTreeOrphansAreDropped(t *testing.T) {
	snap := singleChainSnapshot()
	snap.TestSuites = append(snap.TestSuites, models.TestSuite{
		ID: "suite-orphan", ApplicationID: "no-such-app", Name: "Ghost Suite", CreatedAt: fixtureTime,
	})
	snap.TestResults = append(snap.TestResults, models.TestResult{
		ID: "res-orphan", TestCaseID: "no-such-case", Name: "ghost check", Status: models.ResultPassed, CreatedAt: fixtureTime,
	})

	root := BuildTree("Test Results", snap)

	names := map[string]bool{}
	results := 0
	walk(root, func(n *Node) {
		names[n.Name] = true
		if n.Type == TypeTestResult {
			results++
		}
	})

	assert.False(t, names["Ghost Suite"])
	assert.False(t, names["ghost check"])
	// Only the two results with a fully resolvable parent chain survive.
	assert.Equal(t, 2, results)
}

func TestBuildTreeEmptySnapshotRootStaysBranch(t *testing.T) {
	root := BuildTree("Test Results", Snapshot{})

	assert.Zero(t, root.Value)
	require.NotNil(t, root.Children)
	assert.Len(t, root.Children, 0)

	raw, err := json.Marshal(root)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	_, hasChildren := decoded["children"]
	assert.True(t, hasChildren, "empty root must keep its children field")
	_, hasValue := decoded["value"]
	assert.False(t, hasValue)
}

func TestBuildTreeLeafSerialization(t *testing.T) {
	snap := singleChainSnapshot()
	snap.TestResults = nil
	root := BuildTree("Test Results", snap)

	testCase := root.Children[0].Children[0].Children[0].Children[0].Children[0]
	require.Equal(t, TypeTestCase, testCase.Type)
	assert.Equal(t, 1, testCase.Value)

	raw, err := json.Marshal(testCase)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	_, hasChildren := decoded["children"]
	assert.False(t, hasChildren, "leaves must not serialize a children field")
	assert.Equal(t, float64(1), decoded["value"])
	assert.Equal(t, "testCase", decoded["type"])
}

func TestBuildTreePreservesInsertionOrder(t *testing.T) {
	snap := Snapshot{
		Teams: []models.Team{
			{ID: "t1", Name: "First", CreatedAt: fixtureTime},
			{ID: "t2", Name: "Second", CreatedAt: fixtureTime},
		},
		// Interleaved on purpose: relative order within a team must hold.
		Applications: []models.Application{
			{ID: "a1", TeamID: "t2", Name: "Zeta", CreatedAt: fixtureTime},
			{ID: "a2", TeamID: "t1", Name: "Alpha", CreatedAt: fixtureTime},
			{ID: "a3", TeamID: "t2", Name: "Beta", CreatedAt: fixtureTime},
		},
	}

	root := BuildTree("Test Results", snap)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "First", root.Children[0].Name)
	assert.Equal(t, "Second", root.Children[1].Name)

	second := root.Children[1]
	require.Len(t, second.Children, 2)
	assert.Equal(t, "Zeta", second.Children[0].Name)
	assert.Equal(t, "Beta", second.Children[1].Name)
}
