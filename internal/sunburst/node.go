package sunburst

// NodeType tags each ring of the sunburst tree.
type NodeType string

const (
	TypeRoot          NodeType = "root"
	TypeTeam          NodeType = "team"
	TypeApplication   NodeType = "application"
	TypeTestSuite     NodeType = "testSuite"
	TypeTestExecution NodeType = "testExecution"
	TypeTestCase      NodeType = "testCase"
	TypeTestResult    NodeType = "testResult"
)

// Node is one slice of the sunburst chart, built fresh per request and thrown
// away afterwards. A node is either a leaf carrying Value=1 or a branch
// carrying Children, never both. Children uses omitzero so a branch with an
// empty but non-nil slice (the root with no teams) still serializes as [].
type Node struct {
	Name     string                 `json:"name"`
	Type     NodeType               `json:"type"`
	ID       string                 `json:"id,omitempty"`
	Value    int                    `json:"value,omitempty"`
	Children []*Node                `json:"children,omitzero"`
	Status   string                 `json:"status,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}
