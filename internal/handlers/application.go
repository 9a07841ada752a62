package handlers

import (
	"context"
	"fmt"
	"net/http"
    "time"

	"github.com/ruby4mag/testtracker-go-backend-ui/internal/db"
	"github.com/ruby4mag/testtracker-go-backend-ui/internal/models"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/go-version"
)



func NewApplication(c *gin.Context) {
    var application  models.Application
    collection := db.GetCollection("applications")

    if err := c.ShouldBindJSON(&application); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

    if application.Version != "" {
        if _, err := version.NewVersion(application.Version); err != nil {
            c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid version: " + err.Error()})
            return
        }
    }

    if application.ID == "" {
        application.ID = uuid.NewString()
    }
    if application.CreatedAt.IsZero() {
        application.CreatedAt = time.Now().UTC()
    }

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := collection.InsertOne(ctx, application)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result.InsertedID})
}


// Handler function to fetch all records, optionally scoped to one team
func IndexApplication(c *gin.Context) {
    collection := db.GetCollection("applications")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    filter := bson.M{}
    if teamID := c.Query("teamId"); teamID != "" {
        filter["teamid"] = teamID
    }

    cur, err := collection.Find(ctx, filter)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    defer cur.Close(ctx)

    var records []models.Application
    for cur.Next(ctx) {
        var record models.Application
        if err := cur.Decode(&record); err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
            return
        }
        records = append(records, record)
    }
    if records == nil {
		records = []models.Application{}
	}

    c.JSON(http.StatusOK, records)
}

// Handler function to get a record to edit.
func EditApplication(c *gin.Context) {

    id := c.Param("id")
    collection := db.GetCollection("applications")

    var record models.Application
    err1 := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&record)
    if err1 != nil {
        fmt.Println("Error is ", err1)
        c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
        return
    }

    c.JSON(http.StatusOK, record)

}

// Handler function to update a record.
func UpdateApplication(c *gin.Context) {
    var application  models.Application
    if err := c.ShouldBindJSON(&application); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

    if application.Version != "" {
        if _, err := version.NewVersion(application.Version); err != nil {
            c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid version: " + err.Error()})
            return
        }
    }

    id := c.Param("id")

    collection := db.GetCollection("applications")
	updatefilter := bson.M{"_id": id }
    // Prepare the update document using the $set operator
	update := bson.M{"$set": bson.M{
        "teamid":        application.TeamID,
        "name":          application.Name,
        "version":       application.Version,
        "repositoryurl": application.RepositoryURL,
        "tags":          application.Tags,
        "metadata":      application.Metadata,
    }}

    updateResult , updateerr := collection.UpdateOne(context.TODO(), updatefilter, update)
    if updateerr != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": updateerr.Error()})
        return
    }
    if updateResult.ModifiedCount > 0 {
        fmt.Printf("Matched %v documents and updated %v documents.\n", updateResult.MatchedCount, updateResult.ModifiedCount)
    }
	c.JSON(http.StatusOK, gin.H{"modified": updateResult.ModifiedCount})
}
