package models

import "time"

type TestSuite struct {
	ID             string                 `bson:"_id,omitempty" json:"id"`
	ApplicationID  string                 `bson:"applicationid" json:"applicationId"`
	Name           string                 `bson:"name" json:"name"`
	SourceLocation string                 `bson:"sourcelocation,omitempty" json:"sourceLocation,omitempty"`
	Tags           []string               `bson:"tags,omitempty" json:"tags,omitempty"`
	Metadata       map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt      time.Time              `bson:"createdat" json:"createdAt"`
}
