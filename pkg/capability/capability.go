// Package capability implements the store's write-access policy. Every
// agent declares a constant attribution tag; repositories check that tag
// against a per-table allow-list before writing, so the tag doubles as the
// write permission and lands in audit rows as-is.
package capability

import "fmt"

// Capability identifies which agent is performing a store write.
type Capability string

const (
	EmailAgent    Capability = "email-agent"
	AgingAgent    Capability = "pipeline-aging-agent"
	MatchAgent    Capability = "job-match-agent"
	SkillAgent    Capability = "skill-demand-agent"
	LearningAgent Capability = "learning-agent"
	User          Capability = "user"
)

// writeAllowList maps table name to the capabilities permitted to write it.
var writeAllowList = map[string]map[Capability]bool{
	"applications": {
		EmailAgent: true,
		AgingAgent: true,
		User:       true,
	},
	"status_history": {
		EmailAgent: true,
		AgingAgent: true,
		User:       true,
	},
	"job_suggestions": {
		MatchAgent: true,
		User:       true,
	},
	"skill_demand": {
		SkillAgent: true,
	},
	"learning_tasks": {
		LearningAgent: true,
		User:          true,
	},
}

// AuthorizeWrite rejects writes from agents that are not allow-listed for
// the table.
func AuthorizeWrite(table string, c Capability) error {
	allowed, ok := writeAllowList[table]
	if !ok {
		return fmt.Errorf("no write policy declared for table %q", table)
	}
	if !allowed[c] {
		return fmt.Errorf("capability %q is not permitted to write table %q", c, table)
	}
	return nil
}
