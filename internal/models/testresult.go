package models

import "time"

// TestResult is the finest-grained record, one assertion or check inside a case.
type TestResult struct {
	ID           string                 `bson:"_id,omitempty" json:"id"`
	TestCaseID   string                 `bson:"testcaseid" json:"testCaseId"`
	Name         string                 `bson:"name" json:"name"`
	Status       string                 `bson:"status" json:"status"`
	Priority     string                 `bson:"priority,omitempty" json:"priority,omitempty"`
	DurationMs   int64                  `bson:"durationms,omitempty" json:"durationMs,omitempty"`
	Expected     string                 `bson:"expected,omitempty" json:"expected,omitempty"`
	Actual       string                 `bson:"actual,omitempty" json:"actual,omitempty"`
	ErrorDetails string                 `bson:"errordetails,omitempty" json:"errorDetails,omitempty"`
	Tags         []string               `bson:"tags,omitempty" json:"tags,omitempty"`
	Metadata     map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt    time.Time              `bson:"createdat" json:"createdAt"`
}
