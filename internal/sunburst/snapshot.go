package sunburst

import "github.com/ruby4mag/testtracker-go-backend-ui/internal/models"

// Snapshot is the in-memory bundle the tree is built from. The storage layer
// fills it with the six collections in their stored order; the builder never
// sorts, so that order is the order of the rendered arcs.
type Snapshot struct {
	Teams          []models.Team
	Applications   []models.Application
	TestSuites     []models.TestSuite
	TestExecutions []models.TestExecution
	TestCases      []models.TestCase
	TestResults    []models.TestResult
}

// groupBy buckets records under the parent id the accessor yields, keeping
// the relative order of records that share a parent. A lookup for a parent id
// nothing references returns a nil slice, never an error.
func groupBy[T any](records []T, parentID func(T) string) map[string][]T {
	grouped := make(map[string][]T, len(records))
	for _, record := range records {
		key := parentID(record)
		grouped[key] = append(grouped[key], record)
	}
	return grouped
}
