package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ruby4mag/testtracker-go-backend-ui/internal/db"
	"github.com/ruby4mag/testtracker-go-backend-ui/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// ---------------------------------------------------------------------------
// DATA STRUCTURES
// ---------------------------------------------------------------------------

// TestHealth summarizes the latest test signal for one node in the graph.
// LatestStatus is the worst status among the newest execution of each suite.
type TestHealth struct {
	LatestStatus string `json:"latest_status,omitempty"`
	FailedCases  int64  `json:"failed_cases"`
	SuiteCount   int    `json:"suite_count"`
}

type Node struct {
	Name         string      `json:"name"`
	HasFailures  bool        `json:"has_failures"`
	SupportOwner string      `json:"support_owner,omitempty"`
	Health       *TestHealth `json:"health,omitempty"`
}

type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

type GraphResponse struct {
	Root  string `json:"root"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// ---------------------------------------------------------------------------
// HTTP HANDLER
// ---------------------------------------------------------------------------

func HandleApplicationTopology(c *gin.Context) {
	root := c.Param("name")

	graph, err := BuildDependencyGraph(root)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, graph)
}

// ---------------------------------------------------------------------------
// HELPER — Execution status ranking
// ---------------------------------------------------------------------------

func pickWorstStatus(a, b string) string {
	order := map[string]int{
		models.ExecutionCompleted: 1,
		models.ExecutionPending:   2,
		models.ExecutionRunning:   3,
		models.ExecutionAborted:   4,
		models.ExecutionFailed:    5,
	}

	if order[b] > order[a] {
		return b
	}
	return a
}

// ---------------------------------------------------------------------------
// HELPER — Fetch the test health for a node from MongoDB
// ---------------------------------------------------------------------------

func fetchNodeTestHealth(node string) *TestHealth {

	appCol := db.GetCollection("applications")
	healthCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var application models.Application
	if err := appCol.FindOne(healthCtx, bson.M{"name": node}).Decode(&application); err != nil {
		return nil
	}

	suiteCur, err := db.GetCollection("testsuites").Find(healthCtx, bson.M{"applicationid": application.ID})
	if err != nil {
		return nil
	}
	var suites []models.TestSuite
	if err := suiteCur.All(healthCtx, &suites); err != nil {
		return nil
	}

	health := &TestHealth{SuiteCount: len(suites)}

	latestOptions := options.FindOne()
	latestOptions.SetSort(bson.D{{Key: "createdat", Value: -1}})

	for _, suite := range suites {
		var latest models.TestExecution
		err := db.GetCollection("testexecutions").FindOne(healthCtx, bson.M{"testsuiteid": suite.ID}, latestOptions).Decode(&latest)
		if err != nil {
			continue
		}

		health.LatestStatus = pickWorstStatus(health.LatestStatus, latest.Status)

		failedCases, err := db.GetCollection("testcases").CountDocuments(healthCtx, bson.M{
			"testexecutionid": latest.ID,
			"status":          models.CaseFailed,
		})
		if err == nil {
			health.FailedCases += failedCases
		}
	}

	return health
}

func isFailing(health *TestHealth) bool {
	if health == nil {
		return false
	}
	if health.FailedCases > 0 {
		return true
	}
	return health.LatestStatus == models.ExecutionFailed || health.LatestStatus == models.ExecutionAborted
}

// ---------------------------------------------------------------------------
// HELPER — Unique edge list
// ---------------------------------------------------------------------------

func uniqueEdges(edges []Edge) []Edge {
	seen := map[string]struct{}{}
	out := []Edge{}

	for _, e := range edges {
		key := e.Source + "|" + e.Target + "|" + e.Type
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}

// ---------------------------------------------------------------------------
// MAIN FUNCTION — Build the dependency subgraph around one application
// ---------------------------------------------------------------------------

func BuildDependencyGraph(root string) (*GraphResponse, error) {
	log.Printf("DEBUG: Searching for root node: '%s' (len: %d)", root, len(root))

	graphCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	session := db.GetNeo4jDriver().NewSession(graphCtx, neo4j.SessionConfig{DatabaseName: "neo4j"})
	defer session.Close(graphCtx)

	_, err := session.Run(graphCtx, "RETURN 1", nil)
	if err != nil {
		log.Printf("DEBUG: Connectivity Check Failed! Could not run simple query: %v", err)
		return nil, err
	}

	// -----------------------------------------------------------------------
	// 1. Fetch root + reachable nodes and the edges between them
	// -----------------------------------------------------------------------
	cypher := `
	MATCH (root)
	WHERE root.name = $root OR root.id = $root

	CALL {
		WITH root
		MATCH (root)-[*0..10]-(n)
		RETURN collect(DISTINCT n) as nodes
	}

	WITH nodes
	UNWIND nodes as n
	MATCH (n)-[r]-(m)
	WHERE m IN nodes
	RETURN nodes as unique_nodes, collect(DISTINCT r) as unique_edges
	`

	result, err := session.Run(graphCtx, cypher, map[string]interface{}{"root": root})
	if err != nil {
		log.Printf("DEBUG: Neo4j Session Run failed: %v", err)
		return nil, err
	}
	if !result.Next(graphCtx) {
		log.Printf("DEBUG: Query result empty. Root node '%s' not found.", root)
		return nil, fmt.Errorf("root node not found: %s", root)
	}

	rec := result.Record()

	// -----------------------------------------------------------------------
	// 2. Parse result (Nodes + Edges)
	// -----------------------------------------------------------------------
	rawNodes := rec.Values[0].([]interface{})
	rawEdges := rec.Values[1].([]interface{})

	allNodes := map[string]struct{}{}
	idToName := map[string]string{}
	nodeProps := map[string]string{}

	for _, n := range rawNodes {
		node, ok := n.(dbtype.Node)
		if ok {
			if nameVal, exists := node.Props["name"]; exists {
				nameStr := nameVal.(string)
				allNodes[nameStr] = struct{}{}
				idToName[node.ElementId] = nameStr

				if owner, ok := node.Props["support_owner"].(string); ok {
					nodeProps[nameStr] = owner
				}
			}
		}
	}

	edges := []Edge{}
	for _, r := range rawEdges {
		rel, ok := r.(dbtype.Relationship)
		if ok {
			src := idToName[rel.StartElementId]
			tgt := idToName[rel.EndElementId]
			if src != "" && tgt != "" {
				edges = append(edges, Edge{Source: src, Target: tgt, Type: rel.Type})
			}
		}
	}

	// -----------------------------------------------------------------------
	// 3. Fetch test health for all nodes
	// -----------------------------------------------------------------------
	failingSet := map[string]struct{}{}
	healthMap := map[string]*TestHealth{}

	for name := range allNodes {
		health := fetchNodeTestHealth(name)
		healthMap[name] = health

		if isFailing(health) {
			failingSet[name] = struct{}{}
		}
	}
	log.Printf("DEBUG: Health Lookup -> Checked %d nodes. Nodes with failures: %d", len(allNodes), len(failingSet))

	// -----------------------------------------------------------------------
	// 4. Determine which nodes to include:
	//    - failing nodes
	//    - nodes on path root → failing nodes
	//    - nodes on path failing ↔ failing
	// -----------------------------------------------------------------------
	include := map[string]struct{}{}
	include[root] = struct{}{}

	for f := range failingSet {
		include[f] = struct{}{}
	}

	includePath := func(a, b string) {
		if a == b {
			return
		}
		q := `
		MATCH p = shortestPath((x {name:$a})-[*..6]-(y {name:$b}))
		RETURN [n IN nodes(p) | n.name]
		`
		run, err := session.Run(graphCtx, q, map[string]interface{}{"a": a, "b": b})
		if err != nil {
			return
		}
		if run.Next(graphCtx) {
			arr, ok := run.Record().Values[0].([]interface{})
			if ok {
				for _, x := range arr {
					include[x.(string)] = struct{}{}
				}
			}
		}
	}

	// root → each failing node
	for f := range failingSet {
		includePath(root, f)
	}

	// failing ↔ failing
	failingList := keys(failingSet)
	for i := 0; i < len(failingList); i++ {
		for j := i + 1; j < len(failingList); j++ {
			includePath(failingList[i], failingList[j])
		}
	}

	// -----------------------------------------------------------------------
	// 5. Filter edges and nodes
	// -----------------------------------------------------------------------
	filteredEdges := []Edge{}
	for _, e := range edges {
		if _, ok := include[e.Source]; ok {
			if _, ok2 := include[e.Target]; ok2 {
				filteredEdges = append(filteredEdges, e)
			}
		}
	}

	finalEdges := uniqueEdges(filteredEdges)
	finalNodes := uniqueNodes(include, healthMap, nodeProps)

	return &GraphResponse{
		Root:  root,
		Nodes: finalNodes,
		Edges: finalEdges,
	}, nil
}

// ---------------------------------------------------------------------------
// HELPER — Unique nodes
// ---------------------------------------------------------------------------

func uniqueNodes(include map[string]struct{}, healthMap map[string]*TestHealth, nodeProps map[string]string) []Node {
	out := []Node{}

	for name := range include {
		health := healthMap[name]
		owner := nodeProps[name]

		out = append(out, Node{
			Name:         name,
			HasFailures:  isFailing(health),
			Health:       health,
			SupportOwner: owner,
		})
	}

	return out
}

// ---------------------------------------------------------------------------
// small helper
// ---------------------------------------------------------------------------

func keys(m map[string]struct{}) []string {
	out := []string{}
	for k := range m {
		out = append(out, k)
	}
	return out
}
