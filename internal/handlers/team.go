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
)



func NewTeam(c *gin.Context) {
    var team  models.Team
    collection := db.GetCollection("teams")

    if err := c.ShouldBindJSON(&team); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

    if team.ID == "" {
        team.ID = uuid.NewString()
    }
    if team.CreatedAt.IsZero() {
        team.CreatedAt = time.Now().UTC()
    }

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := collection.InsertOne(ctx, team)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result.InsertedID})
}


// Handler function to fetch all records
func IndexTeam(c *gin.Context) {
    collection := db.GetCollection("teams")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    cur, err := collection.Find(ctx, bson.M{})
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    defer cur.Close(ctx)

    var records []models.Team
    for cur.Next(ctx) {
        var record models.Team
        if err := cur.Decode(&record); err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
            return
        }
        records = append(records, record)
    }
    if records == nil {
		records = []models.Team{}
	}

    c.JSON(http.StatusOK, records)
}

// Handler function to get a record to edit.
func EditTeam(c *gin.Context) {

    id := c.Param("id")
    collection := db.GetCollection("teams")

    var record models.Team
    err1 := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&record)
    if err1 != nil {
        fmt.Println("Error is ", err1)
        c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
        return
    }

    c.JSON(http.StatusOK, record)

}

// Handler function to update a record.
func UpdateTeam(c *gin.Context) {
    var team  models.Team
    if err := c.ShouldBindJSON(&team); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

    id := c.Param("id")

    collection := db.GetCollection("teams")
	updatefilter := bson.M{"_id": id }
    // Prepare the update document using the $set operator
	update := bson.M{"$set": bson.M{
        "name":        team.Name,
        "description": team.Description,
        "tags":        team.Tags,
        "metadata":    team.Metadata,
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
