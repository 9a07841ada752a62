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



func NewTestCase(c *gin.Context) {
    var testCase  models.TestCase
    collection := db.GetCollection("testcases")

    if err := c.ShouldBindJSON(&testCase); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

    if testCase.ID == "" {
        testCase.ID = uuid.NewString()
    }
    if testCase.Status == "" {
        testCase.Status = models.CaseNotRun
    }
    if testCase.CreatedAt.IsZero() {
        testCase.CreatedAt = time.Now().UTC()
    }

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := collection.InsertOne(ctx, testCase)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result.InsertedID})
}


// Handler function to fetch all records, optionally scoped to one execution
func IndexTestCase(c *gin.Context) {
    collection := db.GetCollection("testcases")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    filter := bson.M{}
    if executionID := c.Query("testExecutionId"); executionID != "" {
        filter["testexecutionid"] = executionID
    }

    cur, err := collection.Find(ctx, filter)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    defer cur.Close(ctx)

    var records []models.TestCase
    for cur.Next(ctx) {
        var record models.TestCase
        if err := cur.Decode(&record); err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
            return
        }
        records = append(records, record)
    }
    if records == nil {
		records = []models.TestCase{}
	}

    c.JSON(http.StatusOK, records)
}

// Handler function to get a record to edit.
func EditTestCase(c *gin.Context) {

    id := c.Param("id")
    collection := db.GetCollection("testcases")

    var record models.TestCase
    err1 := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&record)
    if err1 != nil {
        fmt.Println("Error is ", err1)
        c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
        return
    }

    c.JSON(http.StatusOK, record)

}

// Handler function to update a record.
func UpdateTestCase(c *gin.Context) {
    var testCase  models.TestCase
    if err := c.ShouldBindJSON(&testCase); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

    id := c.Param("id")

    collection := db.GetCollection("testcases")
	updatefilter := bson.M{"_id": id }
    // Prepare the update document using the $set operator
	update := bson.M{"$set": bson.M{
        "testexecutionid": testCase.TestExecutionID,
        "name":            testCase.Name,
        "status":          testCase.Status,
        "durationms":      testCase.DurationMs,
        "tags":            testCase.Tags,
        "metadata":        testCase.Metadata,
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
