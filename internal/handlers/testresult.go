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



func NewTestResult(c *gin.Context) {
    var result  models.TestResult
    collection := db.GetCollection("testresults")

    if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

    if result.ID == "" {
        result.ID = uuid.NewString()
    }
    if result.Status == "" {
        result.Status = models.ResultInfo
    }
    if result.CreatedAt.IsZero() {
        result.CreatedAt = time.Now().UTC()
    }

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	inserted, err := collection.InsertOne(ctx, result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": inserted.InsertedID})
}


// Handler function to fetch all records, optionally scoped to one case
func IndexTestResult(c *gin.Context) {
    collection := db.GetCollection("testresults")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    filter := bson.M{}
    if caseID := c.Query("testCaseId"); caseID != "" {
        filter["testcaseid"] = caseID
    }

    cur, err := collection.Find(ctx, filter)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    defer cur.Close(ctx)

    var records []models.TestResult
    for cur.Next(ctx) {
        var record models.TestResult
        if err := cur.Decode(&record); err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
            return
        }
        records = append(records, record)
    }
    if records == nil {
		records = []models.TestResult{}
	}

    c.JSON(http.StatusOK, records)
}

// Handler function to get a record to edit.
func EditTestResult(c *gin.Context) {

    id := c.Param("id")
    collection := db.GetCollection("testresults")

    var record models.TestResult
    err1 := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&record)
    if err1 != nil {
        fmt.Println("Error is ", err1)
        c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
        return
    }

    c.JSON(http.StatusOK, record)

}

// Handler function to update a record.
func UpdateTestResult(c *gin.Context) {
    var result  models.TestResult
    if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

    id := c.Param("id")

    collection := db.GetCollection("testresults")
	updatefilter := bson.M{"_id": id }
    // Prepare the update document using the $set operator
	update := bson.M{"$set": bson.M{
        "testcaseid":   result.TestCaseID,
        "name":         result.Name,
        "status":       result.Status,
        "priority":     result.Priority,
        "durationms":   result.DurationMs,
        "expected":     result.Expected,
        "actual":       result.Actual,
        "errordetails": result.ErrorDetails,
        "tags":         result.Tags,
        "metadata":     result.Metadata,
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
