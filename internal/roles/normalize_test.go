package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"variant golang", "golang", "Go"},
		{"variant js", "js", "JavaScript"},
		{"variant k8s", "K8S", "Kubernetes"},
		{"variant nodejs", "NodeJS", "Node.js"},
		{"variant postgres", "postgres", "PostgreSQL"},
		{"mixed case kept", "PyTorch", "PyTorch"},
		{"short acronym kept", "ETL", "ETL"},
		{"lowercase word capitalized", "docker", "Docker"},
		{"lowercase phrase capitalized", "machine learning", "Machine Learning"},
		{"trimmed", "  python  ", "Python"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSkillName(tt.input))
		})
	}
}

func TestNormalizeSkills(t *testing.T) {
	skills := NormalizeSkills([]string{"golang", "Go", "  ", "python", "JS", "javascript"})

	assert.Equal(t, []string{"Go", "Python", "JavaScript"}, skills)
}

func TestNormalizeSkillsEmpty(t *testing.T) {
	assert.Nil(t, NormalizeSkills(nil))
	assert.Nil(t, NormalizeSkills([]string{}))
}
