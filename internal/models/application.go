package models

import "time"

type Application struct {
	ID            string                 `bson:"_id,omitempty" json:"id"`
	TeamID        string                 `bson:"teamid" json:"teamId"`
	Name          string                 `bson:"name" json:"name"`
	Version       string                 `bson:"version,omitempty" json:"version,omitempty"`
	RepositoryURL string                 `bson:"repositoryurl,omitempty" json:"repositoryUrl,omitempty"`
	Tags          []string               `bson:"tags,omitempty" json:"tags,omitempty"`
	Metadata      map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt     time.Time              `bson:"createdat" json:"createdAt"`
}
