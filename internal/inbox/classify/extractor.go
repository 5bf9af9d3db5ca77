package classify

import (
	"regexp"
	"strings"
)

// Extractor pulls a company name and role title out of a subject line.
// The body is never used for extraction. Either capture may come back
// empty; callers must treat a missing company as an unrecoverable parse
// failure for that email, never default to an empty-string company.
type Extractor struct {
	companyPattern *regexp.Regexp
	rolePattern    *regexp.Regexp
}

// NewExtractor compiles the two subject-line captures.
func NewExtractor() *Extractor {
	return &Extractor{
		// Company: text following from/at/with up to a terminator word,
		// punctuation, or line end.
		companyPattern: regexp.MustCompile(`(?i)\b(?:from|at|with)\s+(.+?)(?:\s+(?:for|regarding|about|team)\b|\s*[-–|,:.]|$)`),
		// Role: text following for/role/position/job up to a terminator.
		rolePattern: regexp.MustCompile(`(?i)\b(?:for|role|position|job)[:\s]\s*(.+?)(?:\s+(?:at|with|from)\b|\s*[-–|,:.]|$)`),
	}
}

// Extract returns (company, role); empty strings mean the capture missed.
func (e *Extractor) Extract(subject string) (company, role string) {
	if m := e.companyPattern.FindStringSubmatch(subject); m != nil {
		company = strings.TrimSpace(m[1])
	}
	if m := e.rolePattern.FindStringSubmatch(subject); m != nil {
		role = strings.TrimSpace(m[1])
	}
	return company, role
}
