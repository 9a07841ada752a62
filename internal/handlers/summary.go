package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ruby4mag/testtracker-go-backend-ui/internal/db"
	"github.com/ruby4mag/testtracker-go-backend-ui/internal/models"
	"github.com/ruby4mag/testtracker-go-backend-ui/internal/sunburst"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gin-gonic/gin"
)

// TeamHealth is one dashboard row per team.
type TeamHealth struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	Label      string  `json:"label"`
}

// Handler function to build the dashboard summary.
func Summary(c *gin.Context) {
	summaryCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	counts := gin.H{}
	for _, name := range []string{"teams", "applications", "testsuites", "testexecutions", "testcases", "testresults"} {
		count, err := db.GetCollection(name).CountDocuments(summaryCtx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		counts[name] = count
	}

	snap, err := loadSnapshot(summaryCtx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	tree := sunburst.BuildTree("Test Results", snap)
	overall, _ := sunburst.Percentage(tree)

	teams := []TeamHealth{}
	for _, teamNode := range tree.Children {
		p, _ := sunburst.Percentage(teamNode)
		teams = append(teams, TeamHealth{
			ID:         teamNode.ID,
			Name:       teamNode.Name,
			Percentage: p,
			Color:      sunburst.ColorFor(teamNode),
			Label:      sunburst.LabelFor(teamNode),
		})
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "createdat", Value: -1}})
	findOptions.SetLimit(5)

	cur, err := db.GetCollection("testexecutions").Find(summaryCtx, bson.M{"status": models.ExecutionFailed}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var recentFailures []models.TestExecution
	if err := cur.All(summaryCtx, &recentFailures); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if recentFailures == nil {
		recentFailures = []models.TestExecution{}
	}

	c.JSON(http.StatusOK, gin.H{
		"counts":            counts,
		"overallPercentage": overall,
		"teams":             teams,
		"recentFailures":    recentFailures,
	})
}
