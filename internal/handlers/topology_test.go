package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruby4mag/testtracker-go-backend-ui/internal/models"
)

func TestPickWorstStatus(t *testing.T) {
	assert.Equal(t, models.ExecutionFailed, pickWorstStatus(models.ExecutionCompleted, models.ExecutionFailed))
	assert.Equal(t, models.ExecutionFailed, pickWorstStatus(models.ExecutionFailed, models.ExecutionCompleted))
	assert.Equal(t, models.ExecutionAborted, pickWorstStatus(models.ExecutionRunning, models.ExecutionAborted))
	assert.Equal(t, models.ExecutionCompleted, pickWorstStatus("", models.ExecutionCompleted))
	assert.Equal(t, models.ExecutionPending, pickWorstStatus(models.ExecutionPending, models.ExecutionPending))
}

func TestIsFailing(t *testing.T) {
	assert.False(t, isFailing(nil))
	assert.False(t, isFailing(&TestHealth{}))
	assert.False(t, isFailing(&TestHealth{LatestStatus: models.ExecutionCompleted}))
	assert.True(t, isFailing(&TestHealth{LatestStatus: models.ExecutionFailed}))
	assert.True(t, isFailing(&TestHealth{LatestStatus: models.ExecutionAborted}))
	assert.True(t, isFailing(&TestHealth{LatestStatus: models.ExecutionCompleted, FailedCases: 2}))
}

func TestUniqueEdges(t *testing.T) {
	edges := []Edge{
		{Source: "a", Target: "b", Type: "DEPENDS_ON"},
		{Source: "a", Target: "b", Type: "DEPENDS_ON"},
		{Source: "b", Target: "c", Type: "CALLS"},
		{Source: "a", Target: "b", Type: "CALLS"},
	}

	out := uniqueEdges(edges)

	assert.Equal(t, []Edge{
		{Source: "a", Target: "b", Type: "DEPENDS_ON"},
		{Source: "b", Target: "c", Type: "CALLS"},
		{Source: "a", Target: "b", Type: "CALLS"},
	}, out)
}
