package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ruby4mag/testtracker-go-backend-ui/internal/db"
	"github.com/ruby4mag/testtracker-go-backend-ui/internal/sunburst"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/gin-gonic/gin"
)

// SunburstNode is the engine node with the chart decoration attached. The
// engine stays presentation-free; color and label are computed here.
type SunburstNode struct {
	Name     string                 `json:"name"`
	Type     sunburst.NodeType      `json:"type"`
	ID       string                 `json:"id,omitempty"`
	Value    int                    `json:"value,omitempty"`
	Children []*SunburstNode        `json:"children,omitzero"`
	Status   string                 `json:"status,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Color    string                 `json:"color"`
	Label    string                 `json:"label"`
}

// Handler function to build the sunburst tree for the chart component.
func Sunburst(c *gin.Context) {
	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	teamFilter := bson.M{}
	if teamID := c.Query("teamId"); teamID != "" {
		teamFilter["_id"] = teamID
	}

	snap, err := loadSnapshot(loadCtx, teamFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	tree := sunburst.BuildTree("Test Results", snap)
	c.JSON(http.StatusOK, decorateNode(tree))
}

// loadSnapshot reads the six collections in stored order. Children of teams
// outside the filter are loaded too; the tree builder drops them as orphans.
func loadSnapshot(loadCtx context.Context, teamFilter bson.M) (sunburst.Snapshot, error) {
	snap := sunburst.Snapshot{}

	cur, err := db.GetCollection("teams").Find(loadCtx, teamFilter)
	if err != nil {
		return snap, err
	}
	if err := cur.All(loadCtx, &snap.Teams); err != nil {
		return snap, err
	}

	cur, err = db.GetCollection("applications").Find(loadCtx, bson.M{})
	if err != nil {
		return snap, err
	}
	if err := cur.All(loadCtx, &snap.Applications); err != nil {
		return snap, err
	}

	cur, err = db.GetCollection("testsuites").Find(loadCtx, bson.M{})
	if err != nil {
		return snap, err
	}
	if err := cur.All(loadCtx, &snap.TestSuites); err != nil {
		return snap, err
	}

	cur, err = db.GetCollection("testexecutions").Find(loadCtx, bson.M{})
	if err != nil {
		return snap, err
	}
	if err := cur.All(loadCtx, &snap.TestExecutions); err != nil {
		return snap, err
	}

	cur, err = db.GetCollection("testcases").Find(loadCtx, bson.M{})
	if err != nil {
		return snap, err
	}
	if err := cur.All(loadCtx, &snap.TestCases); err != nil {
		return snap, err
	}

	cur, err = db.GetCollection("testresults").Find(loadCtx, bson.M{})
	if err != nil {
		return snap, err
	}
	if err := cur.All(loadCtx, &snap.TestResults); err != nil {
		return snap, err
	}

	return snap, nil
}

// decorateNode copies the engine tree into the response shape, attaching the
// color and label for every node.
func decorateNode(n *sunburst.Node) *SunburstNode {
	decorated := &SunburstNode{
		Name:     n.Name,
		Type:     n.Type,
		ID:       n.ID,
		Value:    n.Value,
		Status:   n.Status,
		Metadata: n.Metadata,
		Color:    sunburst.ColorFor(n),
		Label:    sunburst.LabelFor(n),
	}
	if n.Children != nil {
		decorated.Children = make([]*SunburstNode, 0, len(n.Children))
		for _, child := range n.Children {
			decorated.Children = append(decorated.Children, decorateNode(child))
		}
	}
	return decorated
}
