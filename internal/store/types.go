package store

// Run is one invocation of the demonstration driver.
type Run struct {
	ID         string   `json:"id"`
	Op         string   `json:"op"`   // "min" or "max"
	Args       []string `json:"args"` // argument literals as given
	Iterations int      `json:"iterations"`
}

// Step is the outcome of one iteration of a run.
type Step struct {
	RunID string   `json:"run_id"`
	Seq   int64    `json:"seq"`   // 1-based iteration number
	Value string   `json:"value"` // selected value after the increment
	State []string `json:"state"` // every argument after the increment
}
