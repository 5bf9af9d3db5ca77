package domain

import "strings"

// Theme groups related skill keywords under one display name.
type Theme struct {
	Name     string
	Keywords []string
}

// SkillCatalog is the fixed keyword catalog the aggregator scans for,
// injected at construction so tests can substitute alternate catalogs.
// ExtraPatterns covers languages and tools outside the themed lists.
type SkillCatalog struct {
	Themes        []Theme
	ExtraPatterns []string
}

// Keywords returns every themed keyword in catalog order.
func (c *SkillCatalog) Keywords() []string {
	var out []string
	for _, theme := range c.Themes {
		out = append(out, theme.Keywords...)
	}
	return out
}

// CategoryFor returns the theme whose keyword list contains the skill as a
// best-effort substring match, or "" when nothing matches.
func (c *SkillCatalog) CategoryFor(skill string) string {
	needle := strings.ToLower(skill)
	for _, theme := range c.Themes {
		for _, kw := range theme.Keywords {
			lower := strings.ToLower(kw)
			if strings.Contains(lower, needle) || strings.Contains(needle, lower) {
				return theme.Name
			}
		}
	}
	return ""
}

// DefaultCatalog returns the built-in themed keyword catalog.
func DefaultCatalog() *SkillCatalog {
	return &SkillCatalog{
		Themes: []Theme{
			{Name: "Java Core", Keywords: []string{"Java", "Spring", "Spring Boot", "Hibernate", "Maven"}},
			{Name: "Go", Keywords: []string{"Golang", "Go", "gRPC"}},
			{Name: "Frontend", Keywords: []string{"React", "Angular", "Vue", "TypeScript", "JavaScript", "CSS"}},
			{Name: "Cloud", Keywords: []string{"AWS", "Azure", "GCP", "Terraform", "Cloud"}},
			{Name: "Containers", Keywords: []string{"Docker", "Kubernetes", "Helm"}},
			{Name: "Data", Keywords: []string{"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Kafka"}},
			{Name: "Python", Keywords: []string{"Python", "Django", "Flask", "Pandas"}},
			{Name: "DevOps", Keywords: []string{"CI/CD", "Jenkins", "GitHub Actions", "Ansible"}},
			{Name: "Mobile", Keywords: []string{"Android", "iOS", "Kotlin", "Swift", "Flutter"}},
			{Name: "Testing", Keywords: []string{"JUnit", "Selenium", "Cypress", "TDD"}},
		},
		ExtraPatterns: []string{
			`\b(rust|scala|elixir|ruby|php)\b`,
			`\b(graphql|rest api|websocket)\b`,
			`\b(machine learning|deep learning|nlp)\b`,
		},
	}
}
