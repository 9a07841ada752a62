package sunburst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruby4mag/testtracker-go-backend-ui/internal/models"
)

func TestGradientColorSegments(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{100, "#28a745"},
		{97, "#28a745"},
		{95, "#28a745"},
		{90, "rgb(38, 217, 38)"},
		{85, "rgb(46, 184, 46)"},
		{70, "rgb(128, 217, 38)"},
		{60, "rgb(175, 223, 32)"},
		{50, "rgb(223, 223, 32)"},
		{40, "rgb(230, 179, 25)"},
		{30, "rgb(230, 128, 25)"},
		{15, "rgb(230, 76, 25)"},
		{0, "rgb(201, 29, 29)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, gradientColor(tc.p), "p=%v", tc.p)
	}
}

func TestColorForFixedColors(t *testing.T) {
	root := BuildTree("Test Results", Snapshot{})
	assert.Equal(t, "#495057", ColorFor(root))

	skipped := &Node{Name: "setup", Type: TypeTestResult, Status: "skipped", Value: 1}
	assert.Equal(t, "#6c757d", ColorFor(skipped))

	passed := &Node{Name: "ok", Type: TypeTestResult, Status: models.ResultPassed, Value: 1}
	assert.Equal(t, "#28a745", ColorFor(passed))
}

func TestColorForMixedCaseLandsOnYellow(t *testing.T) {
	// passed and failed average to 50, which sits at the bottom of the
	// 50-70 band rather than the top of the 30-50 one.
	node := &Node{
		Name: "Checkout",
		Type: TypeTestCase,
		Children: []*Node{
			{Name: "a", Type: TypeTestResult, Status: models.ResultPassed, Value: 1},
			{Name: "b", Type: TypeTestResult, Status: models.ResultFailed, Value: 1},
		},
	}
	assert.Equal(t, "rgb(223, 223, 32)", ColorFor(node))
}

func TestColorForFailedResult(t *testing.T) {
	node := &Node{Name: "boom", Type: TypeTestResult, Status: models.ResultFailed, Value: 1}
	assert.Equal(t, "rgb(201, 29, 29)", ColorFor(node))
}

func TestLabelFor(t *testing.T) {
	scored := &Node{
		Name: "Checkout",
		Type: TypeTestCase,
		Children: []*Node{
			{Name: "a", Type: TypeTestResult, Status: models.ResultPassed, Value: 1},
			{Name: "b", Type: TypeTestResult, Status: models.ResultFailed, Value: 1},
		},
	}
	assert.Equal(t, "Checkout (50.0%)", LabelFor(scored))

	skipped := &Node{Name: "flaky login", Type: TypeTestResult, Status: "skipped", Value: 1}
	assert.Equal(t, "flaky login (skipped)", LabelFor(skipped))

	bare := &Node{Name: "probe", Type: TypeTestResult, Value: 1}
	assert.Equal(t, "probe", LabelFor(bare))
}

func TestLabelForRoundsToOneDecimal(t *testing.T) {
	node := &Node{
		Name: "API",
		Type: TypeTestCase,
		Children: []*Node{
			{Name: "a", Type: TypeTestResult, Status: models.ResultPassed, Value: 1},
			{Name: "b", Type: TypeTestResult, Status: models.ResultPassed, Value: 1},
			{Name: "c", Type: TypeTestResult, Status: models.ResultFailed, Value: 1},
		},
	}
	assert.Equal(t, "API (66.7%)", LabelFor(node))
}
