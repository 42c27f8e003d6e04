package model

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// RunMetadata identifies and times one calculation run.
type RunMetadata struct {
	RunID          string `json:"run_id"`
	RunStartedAt   string `json:"run_started_at"`
	RunCompletedAt string `json:"run_completed_at"`
	RunDurationMs  int64  `json:"run_duration_ms"`
	RunOutcome     string `json:"run_outcome"`
}

// SimulationResponse is the /simulate payload: the deterministic
// projection plus its explanatory and compliance companions.
type SimulationResponse struct {
	RunMetadata RunMetadata    `json:"run_metadata"`
	Projections []YearRecord   `json:"projections"`
	Explanation []string       `json:"explanation"`
	Audit       []AuditFinding `json:"audit"`
	Reinsurance string         `json:"reinsurance"`
	Assumptions Assumptions    `json:"config"`
}

// AuditFinding is one compliance verdict over a full projection.
type AuditFinding struct {
	Area     string `json:"area"`
	Status   string `json:"status"`
	Analysis string `json:"analysis"`
	Goal     string `json:"goal"`
}

type StatusResponse struct {
	Status string `json:"status"`
	Engine string `json:"engine"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
