package models

import "time"

// TestExecution is one run of a suite. Executions carry no name of their own,
// the UI derives a display name from the id.
type TestExecution struct {
	ID          string                 `bson:"_id,omitempty" json:"id"`
	TestSuiteID string                 `bson:"testsuiteid" json:"testSuiteId"`
	Status      string                 `bson:"status" json:"status"`
	StartedAt   *time.Time             `bson:"startedat,omitempty" json:"startedAt,omitempty"`
	CompletedAt *time.Time             `bson:"completedat,omitempty" json:"completedAt,omitempty"`
	Environment string                 `bson:"environment,omitempty" json:"environment,omitempty"`
	BuildID     string                 `bson:"buildid,omitempty" json:"buildId,omitempty"`
	Tags        []string               `bson:"tags,omitempty" json:"tags,omitempty"`
	Metadata    map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt   time.Time              `bson:"createdat" json:"createdAt"`
}
