package usecase

import "testing"

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		skills []string
		want   float64
	}{
		{
			name:   "half the skills present",
			text:   "Senior Go Developer. Experience with Docker and Kubernetes required.",
			skills: []string{"Go", "Docker", "React", "GraphQL"},
			want:   50,
		},
		{
			name:   "all skills present",
			text:   "go docker react graphql",
			skills: []string{"Go", "Docker", "React", "GraphQL"},
			want:   100,
		},
		{
			name:   "nothing matches",
			text:   "Forklift operator wanted",
			skills: []string{"Go", "Docker"},
			want:   0,
		},
		{
			name:   "no declared skills",
			text:   "Senior Go Developer",
			skills: nil,
			want:   0,
		},
		{
			name:   "case insensitive",
			text:   "POSTGRESQL and KAFKA experience",
			skills: []string{"postgresql", "kafka"},
			want:   100,
		},
		{
			name:   "blank entries ignored",
			text:   "Go developer",
			skills: []string{"Go", "  "},
			want:   50,
		},
		{
			name:   "empty text",
			text:   "",
			skills: []string{"Go"},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchScore(tt.text, tt.skills)
			if got != tt.want {
				t.Errorf("got %.1f, want %.1f", got, tt.want)
			}
		})
	}
}
