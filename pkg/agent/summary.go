package agent

// RunSummary is the structured result every scheduled routine returns to its
// caller. Per-item failures land in Errors; they never abort the run.
type RunSummary struct {
	Success   bool     `json:"success"`
	Processed int      `json:"processed"`
	Created   int      `json:"created"`
	Updated   int      `json:"updated"`
	Escalated int      `json:"escalated"`
	Errors    []string `json:"errors"`
}

func NewRunSummary() *RunSummary {
	return &RunSummary{Success: true, Errors: []string{}}
}

// AddError records a per-item failure without failing the whole run.
func (s *RunSummary) AddError(msg string) {
	s.Errors = append(s.Errors, msg)
}
