package classify

import (
	"strings"

	"jobtrail-backend/internal/inbox/domain"
)

// Classifier buckets an email into exactly one event category by testing
// the lowercased subject+body against ordered pattern families.
type Classifier struct {
	catalog []CategoryPatterns
}

// NewClassifier builds a classifier over the given catalog. The catalog is
// injected so tests and deployments can substitute alternate pattern sets.
func NewClassifier(catalog []CategoryPatterns) *Classifier {
	return &Classifier{catalog: catalog}
}

// Classify returns the category of the first pattern family with any match,
// or UNKNOWN when nothing matches. No confidence score, no multi-label.
func (c *Classifier) Classify(subject, body string) domain.EventType {
	text := strings.ToLower(subject + " " + body)

	for _, family := range c.catalog {
		for _, p := range family.Patterns {
			if p.MatchString(text) {
				return family.Event
			}
		}
	}
	return domain.EventUnknown
}
