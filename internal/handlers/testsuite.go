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



func NewTestSuite(c *gin.Context) {
    var suite  models.TestSuite
    collection := db.GetCollection("testsuites")

    if err := c.ShouldBindJSON(&suite); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

    if suite.ID == "" {
        suite.ID = uuid.NewString()
    }
    if suite.CreatedAt.IsZero() {
        suite.CreatedAt = time.Now().UTC()
    }

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := collection.InsertOne(ctx, suite)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result.InsertedID})
}


// Handler function to fetch all records, optionally scoped to one application
func IndexTestSuite(c *gin.Context) {
    collection := db.GetCollection("testsuites")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    filter := bson.M{}
    if applicationID := c.Query("applicationId"); applicationID != "" {
        filter["applicationid"] = applicationID
    }

    cur, err := collection.Find(ctx, filter)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    defer cur.Close(ctx)

    var records []models.TestSuite
    for cur.Next(ctx) {
        var record models.TestSuite
        if err := cur.Decode(&record); err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
            return
        }
        records = append(records, record)
    }
    if records == nil {
		records = []models.TestSuite{}
	}

    c.JSON(http.StatusOK, records)
}

// Handler function to get a record to edit.
func EditTestSuite(c *gin.Context) {

    id := c.Param("id")
    collection := db.GetCollection("testsuites")

    var record models.TestSuite
    err1 := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&record)
    if err1 != nil {
        fmt.Println("Error is ", err1)
        c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
        return
    }

    c.JSON(http.StatusOK, record)

}

// Handler function to update a record.
func UpdateTestSuite(c *gin.Context) {
    var suite  models.TestSuite
    if err := c.ShouldBindJSON(&suite); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

    id := c.Param("id")

    collection := db.GetCollection("testsuites")
	updatefilter := bson.M{"_id": id }
    // Prepare the update document using the $set operator
	update := bson.M{"$set": bson.M{
        "applicationid":  suite.ApplicationID,
        "name":           suite.Name,
        "sourcelocation": suite.SourceLocation,
        "tags":           suite.Tags,
        "metadata":       suite.Metadata,
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
