package sunburst

import (
	"github.com/ruby4mag/testtracker-go-backend-ui/internal/models"
)

// treeBuilder carries the per-level parent indices for one BuildTree call.
type treeBuilder struct {
	appsByTeam    map[string][]models.Application
	suitesByApp   map[string][]models.TestSuite
	execsBySuite  map[string][]models.TestExecution
	casesByExec   map[string][]models.TestCase
	resultsByCase map[string][]models.TestResult
}

// BuildTree assembles the full visualization tree for one snapshot. The root
// is named after the dataset and is always a branch, even with zero teams. A
// record whose parent id matches no record in the level above is silently
// left out of the tree; that is intended behavior, callers wanting to report
// orphans have to scan for them before building.
func BuildTree(name string, snap Snapshot) *Node {
	b := &treeBuilder{
		appsByTeam:    groupBy(snap.Applications, func(a models.Application) string { return a.TeamID }),
		suitesByApp:   groupBy(snap.TestSuites, func(s models.TestSuite) string { return s.ApplicationID }),
		execsBySuite:  groupBy(snap.TestExecutions, func(e models.TestExecution) string { return e.TestSuiteID }),
		casesByExec:   groupBy(snap.TestCases, func(c models.TestCase) string { return c.TestExecutionID }),
		resultsByCase: groupBy(snap.TestResults, func(r models.TestResult) string { return r.TestCaseID }),
	}

	children := make([]*Node, 0, len(snap.Teams))
	for _, team := range snap.Teams {
		children = append(children, b.team(team))
	}

	return &Node{
		Name:     name,
		Type:     TypeRoot,
		Children: children,
	}
}

// newNode finishes a node once its children are known: with zero children it
// becomes a value-1 leaf, otherwise it keeps the children and carries no
// value. Leaf or branch is decided here, before the node exists, never by
// stripping fields afterwards.
func newNode(name string, typ NodeType, id, status string, metadata map[string]interface{}, children []*Node) *Node {
	node := &Node{
		Name:     name,
		Type:     typ,
		ID:       id,
		Status:   status,
		Metadata: metadata,
	}
	if len(children) == 0 {
		node.Value = 1
	} else {
		node.Children = children
	}
	return node
}

func (b *treeBuilder) team(team models.Team) *Node {
	apps := b.appsByTeam[team.ID]
	children := make([]*Node, 0, len(apps))
	for _, app := range apps {
		children = append(children, b.application(app))
	}

	metadata := map[string]interface{}{"createdAt": team.CreatedAt}
	if team.Description != "" {
		metadata["description"] = team.Description
	}
	if len(team.Tags) > 0 {
		metadata["tags"] = team.Tags
	}

	return newNode(team.Name, TypeTeam, team.ID, "", metadata, children)
}

func (b *treeBuilder) application(app models.Application) *Node {
	suites := b.suitesByApp[app.ID]
	children := make([]*Node, 0, len(suites))
	for _, suite := range suites {
		children = append(children, b.suite(suite))
	}

	metadata := map[string]interface{}{"createdAt": app.CreatedAt}
	if app.Version != "" {
		metadata["version"] = app.Version
	}
	if app.RepositoryURL != "" {
		metadata["repositoryUrl"] = app.RepositoryURL
	}
	if len(app.Tags) > 0 {
		metadata["tags"] = app.Tags
	}

	return newNode(app.Name, TypeApplication, app.ID, "", metadata, children)
}

func (b *treeBuilder) suite(suite models.TestSuite) *Node {
	execs := b.execsBySuite[suite.ID]
	children := make([]*Node, 0, len(execs))
	for _, exec := range execs {
		children = append(children, b.execution(exec))
	}

	metadata := map[string]interface{}{"createdAt": suite.CreatedAt}
	if suite.SourceLocation != "" {
		metadata["sourceLocation"] = suite.SourceLocation
	}
	if len(suite.Tags) > 0 {
		metadata["tags"] = suite.Tags
	}

	return newNode(suite.Name, TypeTestSuite, suite.ID, "", metadata, children)
}

func (b *treeBuilder) execution(exec models.TestExecution) *Node {
	cases := b.casesByExec[exec.ID]
	children := make([]*Node, 0, len(cases))
	for _, testCase := range cases {
		children = append(children, b.testCase(testCase))
	}

	metadata := map[string]interface{}{"createdAt": exec.CreatedAt}
	if exec.Environment != "" {
		metadata["environment"] = exec.Environment
	}
	if exec.BuildID != "" {
		metadata["buildId"] = exec.BuildID
	}
	if exec.StartedAt != nil {
		metadata["startedAt"] = *exec.StartedAt
	}
	if exec.CompletedAt != nil {
		metadata["completedAt"] = *exec.CompletedAt
	}
	if len(exec.Tags) > 0 {
		metadata["tags"] = exec.Tags
	}

	return newNode(executionName(exec.ID), TypeTestExecution, exec.ID, exec.Status, metadata, children)
}

func (b *treeBuilder) testCase(testCase models.TestCase) *Node {
	results := b.resultsByCase[testCase.ID]
	children := make([]*Node, 0, len(results))
	for _, result := range results {
		children = append(children, b.result(result))
	}

	metadata := map[string]interface{}{"createdAt": testCase.CreatedAt}
	if testCase.DurationMs != 0 {
		metadata["durationMs"] = testCase.DurationMs
	}
	if len(testCase.Tags) > 0 {
		metadata["tags"] = testCase.Tags
	}

	return newNode(testCase.Name, TypeTestCase, testCase.ID, testCase.Status, metadata, children)
}

// result nodes are the bottom of the hierarchy and are always leaves.
func (b *treeBuilder) result(result models.TestResult) *Node {
	metadata := map[string]interface{}{"createdAt": result.CreatedAt}
	if result.Priority != "" {
		metadata["priority"] = result.Priority
	}
	if result.DurationMs != 0 {
		metadata["durationMs"] = result.DurationMs
	}
	if result.Expected != "" {
		metadata["expected"] = result.Expected
	}
	if result.Actual != "" {
		metadata["actual"] = result.Actual
	}
	if result.ErrorDetails != "" {
		metadata["errorDetails"] = result.ErrorDetails
	}
	if len(result.Tags) > 0 {
		metadata["tags"] = result.Tags
	}

	return newNode(result.Name, TypeTestResult, result.ID, result.Status, metadata, nil)
}

// executionName derives a display name from the id since executions have no
// name field of their own.
func executionName(id string) string {
	short := id
	if len(short) > 8 {
		short = short[:8]
	}
	return "Execution " + short
}
