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

// ---------------------------------------------------------------------------
// CTRF REPORT SHAPE
// ---------------------------------------------------------------------------

type CTRFTool struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type CTRFSummary struct {
	Tests   int   `json:"tests"`
	Passed  int   `json:"passed"`
	Failed  int   `json:"failed"`
	Skipped int   `json:"skipped"`
	Pending int   `json:"pending"`
	Other   int   `json:"other"`
	Start   int64 `json:"start"`
	Stop    int64 `json:"stop"`
}

type CTRFTest struct {
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Duration int64    `json:"duration"`
	Message  string   `json:"message,omitempty"`
	Trace    string   `json:"trace,omitempty"`
	Suite    string   `json:"suite,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type CTRFEnvironment struct {
	AppName         string `json:"appName,omitempty"`
	BuildNumber     string `json:"buildNumber,omitempty"`
	TestEnvironment string `json:"testEnvironment,omitempty"`
}

type CTRFResults struct {
	Tool        CTRFTool        `json:"tool"`
	Summary     CTRFSummary     `json:"summary"`
	Tests       []CTRFTest      `json:"tests"`
	Environment CTRFEnvironment `json:"environment"`
}

type CTRFReport struct {
	TestSuiteID string      `json:"testSuiteId"`
	Results     CTRFResults `json:"results"`
}

// ---------------------------------------------------------------------------
// STATUS MAPPING
// ---------------------------------------------------------------------------

func mapCTRFCaseStatus(status string) string {
	switch status {
	case "passed":
		return models.CasePassed
	case "failed":
		return models.CaseFailed
	default:
		// skipped, pending and other all count as not executed
		return models.CaseSkipped
	}
}

func mapCTRFResultStatus(status string) string {
	switch status {
	case "passed":
		return models.ResultPassed
	case "failed":
		return models.ResultFailed
	default:
		return models.ResultInfo
	}
}

// ---------------------------------------------------------------------------
// REPORT MAPPING
// ---------------------------------------------------------------------------

// mapCTRFReport turns one CTRF results object into an execution with one case
// and one result row per reported test. Pure, no storage access.
func mapCTRFReport(suiteID string, results CTRFResults, now time.Time) (models.TestExecution, []models.TestCase, []models.TestResult) {
	execution := models.TestExecution{
		ID:          uuid.NewString(),
		TestSuiteID: suiteID,
		Status:      models.ExecutionCompleted,
		Environment: results.Environment.TestEnvironment,
		BuildID:     results.Environment.BuildNumber,
		CreatedAt:   now,
	}
	if results.Summary.Failed > 0 {
		execution.Status = models.ExecutionFailed
	}
	if results.Summary.Start > 0 {
		startedAt := time.UnixMilli(results.Summary.Start).UTC()
		execution.StartedAt = &startedAt
	}
	if results.Summary.Stop > 0 {
		completedAt := time.UnixMilli(results.Summary.Stop).UTC()
		execution.CompletedAt = &completedAt
	}
	if results.Tool.Name != "" {
		execution.Metadata = map[string]interface{}{"tool": results.Tool.Name}
	}

	cases := []models.TestCase{}
	testResults := []models.TestResult{}
	for _, test := range results.Tests {
		testCase := models.TestCase{
			ID:              uuid.NewString(),
			TestExecutionID: execution.ID,
			Name:            test.Name,
			Status:          mapCTRFCaseStatus(test.Status),
			DurationMs:      test.Duration,
			Tags:            test.Tags,
			CreatedAt:       now,
		}
		cases = append(cases, testCase)

		errorDetails := test.Message
		if test.Trace != "" {
			if errorDetails != "" {
				errorDetails = errorDetails + "\n" + test.Trace
			} else {
				errorDetails = test.Trace
			}
		}
		testResults = append(testResults, models.TestResult{
			ID:           uuid.NewString(),
			TestCaseID:   testCase.ID,
			Name:         test.Name,
			Status:       mapCTRFResultStatus(test.Status),
			DurationMs:   test.Duration,
			ErrorDetails: errorDetails,
			CreatedAt:    now,
		})
	}

	return execution, cases, testResults
}

// ---------------------------------------------------------------------------
// HTTP HANDLER — machine callback, unauthenticated
// ---------------------------------------------------------------------------

// Handler function to ingest a CTRF report from a test runner.
func ReportCTRF(c *gin.Context) {
	var report CTRFReport

	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if report.TestSuiteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "testSuiteId is required"})
		return
	}
	fmt.Println("The CTRF callback is for suite ", report.TestSuiteID)

	suiteCollection := db.GetCollection("testsuites")
	ingestCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var suite models.TestSuite
	if err := suiteCollection.FindOne(ingestCtx, bson.M{"_id": report.TestSuiteID}).Decode(&suite); err != nil {
		fmt.Println("Error is ", err)
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
		return
	}

	execution, cases, results := mapCTRFReport(report.TestSuiteID, report.Results, time.Now().UTC())

	if _, err := db.GetCollection("testexecutions").InsertOne(ingestCtx, execution); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(cases) > 0 {
		caseDocs := make([]interface{}, 0, len(cases))
		for _, testCase := range cases {
			caseDocs = append(caseDocs, testCase)
		}
		if _, err := db.GetCollection("testcases").InsertMany(ingestCtx, caseDocs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		resultDocs := make([]interface{}, 0, len(results))
		for _, result := range results {
			resultDocs = append(resultDocs, result)
		}
		if _, err := db.GetCollection("testresults").InsertMany(ingestCtx, resultDocs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	fmt.Printf("Ingested %v cases and %v results for execution %v\n", len(cases), len(results), execution.ID)
	c.JSON(http.StatusOK, gin.H{
		"executionId": execution.ID,
		"cases":       len(cases),
		"results":     len(results),
	})
}
