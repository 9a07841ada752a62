package models

// TestExecution statuses
const (
	ExecutionPending   = "pending"
	ExecutionRunning   = "running"
	ExecutionCompleted = "completed"
	ExecutionAborted   = "aborted"
	ExecutionFailed    = "failed"
)

// TestCase statuses
const (
	CasePassed  = "passed"
	CaseFailed  = "failed"
	CaseSkipped = "skipped"
	CaseBlocked = "blocked"
	CaseNotRun  = "not_run"
)

// TestResult statuses
const (
	ResultPassed  = "passed"
	ResultFailed  = "failed"
	ResultError   = "error"
	ResultWarning = "warning"
	ResultInfo    = "info"
)
