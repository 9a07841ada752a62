package models

import "time"

type TestCase struct {
	ID              string                 `bson:"_id,omitempty" json:"id"`
	TestExecutionID string                 `bson:"testexecutionid" json:"testExecutionId"`
	Name            string                 `bson:"name" json:"name"`
	Status          string                 `bson:"status" json:"status"`
	DurationMs      int64                  `bson:"durationms,omitempty" json:"durationMs,omitempty"`
	Tags            []string               `bson:"tags,omitempty" json:"tags,omitempty"`
	Metadata        map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt       time.Time              `bson:"createdat" json:"createdAt"`
}
