package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
    "time"

	"github.com/ruby4mag/testtracker-go-backend-ui/internal/db"
	"github.com/ruby4mag/testtracker-go-backend-ui/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExecutionCaseDetail is a test case with its result rows embedded.
type ExecutionCaseDetail struct {
	models.TestCase
	Results []models.TestResult `json:"results"`
}

// ExecutionDetail is the execution view with the full case/result breakdown.
type ExecutionDetail struct {
	models.TestExecution
	Cases []ExecutionCaseDetail `json:"cases"`
}

func NewTestExecution(c *gin.Context) {
    var execution  models.TestExecution
    collection := db.GetCollection("testexecutions")

    if err := c.ShouldBindJSON(&execution); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

    if execution.ID == "" {
        execution.ID = uuid.NewString()
    }
    if execution.Status == "" {
        execution.Status = models.ExecutionPending
    }
    if execution.CreatedAt.IsZero() {
        execution.CreatedAt = time.Now().UTC()
    }

    insertCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := collection.InsertOne(insertCtx, execution)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result.InsertedID})
}

// Handler function to fetch executions with table pagination, filtering and sorting
func Executions(c *gin.Context) {

	type Filter struct {
		Id    string `json:"id"`
		Value string `json:"value"`
	}

	type Sorting struct {
		Id   string `json:"id"`
		Desc bool   `json:"desc"`
	}
	start, _ := strconv.Atoi(c.DefaultQuery("start", "0"))
    size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
    globalFilter := c.Query("globalFilter")
    sortQuery := c.Query("sorting")

	var filters []Filter
    _ = json.Unmarshal([]byte(c.Query("filters")), &filters)

    var sorting []Sorting
    _ = json.Unmarshal([]byte(sortQuery), &sorting)

    filter := bson.M{}
    if suiteID := c.Query("testSuiteId"); suiteID != "" {
        filter["testsuiteid"] = suiteID
    }
    if globalFilter != "" {
        filter["$or"] = []bson.M{
            {"status": bson.M{"$regex": globalFilter, "$options": "i"}},
            {"environment": bson.M{"$regex": globalFilter, "$options": "i"}},
            {"buildid": bson.M{"$regex": globalFilter, "$options": "i"}},
        }
    }
    for _, f := range filters {
        filter[f.Id] = bson.M{"$regex": f.Value, "$options": "i"}
    }

    findOptions := options.Find()
    findOptions.SetSkip(int64(start))
    findOptions.SetLimit(int64(size))

    if len(sorting) > 0 {
        sortFields := bson.D{}
        for _, s := range sorting {
            sortOrder := 1
            if s.Desc {
                sortOrder = -1
            }
            sortFields = append(sortFields, bson.E{Key: s.Id, Value: sortOrder})
        }
        findOptions.SetSort(sortFields)
    }
	collection := db.GetCollection("testexecutions")

	cursor, err := collection.Find(ctx, filter, findOptions)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    var executions []models.TestExecution
    if err := cursor.All(ctx, &executions); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    count, err := collection.CountDocuments(ctx, filter)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

	if len(executions) == 0 {
		executions = []models.TestExecution{}
	}

    c.JSON(http.StatusOK, gin.H{
        "data":     executions ,
        "totalRowCount":  count,
    })
}

// Handler function to get one execution with its cases and results embedded.
func ViewTestExecution(c *gin.Context) {

    id := c.Param("id")
    collection := db.GetCollection("testexecutions")
    viewCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    var execution models.TestExecution
    err1 := collection.FindOne(viewCtx, bson.M{"_id": id}).Decode(&execution)
    if err1 != nil {
        fmt.Println("Error is ", err1)
        c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
        return
    }

    caseCollection := db.GetCollection("testcases")
    cur, err := caseCollection.Find(viewCtx, bson.M{"testexecutionid": id})
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    defer cur.Close(viewCtx)

    var cases []models.TestCase
    if err := cur.All(viewCtx, &cases); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    caseIDs := []string{}
    for _, testCase := range cases {
        caseIDs = append(caseIDs, testCase.ID)
    }

    resultsByCase := map[string][]models.TestResult{}
    if len(caseIDs) > 0 {
        resultCollection := db.GetCollection("testresults")
        resultCur, err := resultCollection.Find(viewCtx, bson.M{"testcaseid": bson.M{"$in": caseIDs}})
        if err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
            return
        }
        defer resultCur.Close(viewCtx)

        var results []models.TestResult
        if err := resultCur.All(viewCtx, &results); err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
            return
        }
        for _, result := range results {
            resultsByCase[result.TestCaseID] = append(resultsByCase[result.TestCaseID], result)
        }
    }

    detail := ExecutionDetail{TestExecution: execution, Cases: []ExecutionCaseDetail{}}
    for _, testCase := range cases {
        results := resultsByCase[testCase.ID]
        if results == nil {
            results = []models.TestResult{}
        }
        detail.Cases = append(detail.Cases, ExecutionCaseDetail{TestCase: testCase, Results: results})
    }

    c.JSON(http.StatusOK, detail)

}

// Handler function to update a record.
func UpdateTestExecution(c *gin.Context) {
    var execution  models.TestExecution
    if err := c.ShouldBindJSON(&execution); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

    id := c.Param("id")

    collection := db.GetCollection("testexecutions")
	updatefilter := bson.M{"_id": id }
    // Prepare the update document using the $set operator
	update := bson.M{"$set": bson.M{
        "testsuiteid": execution.TestSuiteID,
        "status":      execution.Status,
        "startedat":   execution.StartedAt,
        "completedat": execution.CompletedAt,
        "environment": execution.Environment,
        "buildid":     execution.BuildID,
        "tags":        execution.Tags,
        "metadata":    execution.Metadata,
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
