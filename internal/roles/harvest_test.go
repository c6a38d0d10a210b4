package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHarvestSkills(t *testing.T) {
	text := `We are hiring a backend developer. You will write Go services,
operate PostgreSQL databases, and deploy with Docker and k8s.`

	skills := HarvestSkills(text)

	assert.Contains(t, skills, "Go")
	assert.Contains(t, skills, "PostgreSQL")
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "Kubernetes")
}

func TestHarvestSkillsOrderedByAppearance(t *testing.T) {
	skills := HarvestSkills("Docker first, then python, then SQL.")

	assert.Equal(t, []string{"Docker", "Python", "SQL"}, skills)
}

func TestHarvestSkillsWholeWordOnly(t *testing.T) {
	// "going" and "gosling" must not match Go.
	skills := HarvestSkills("We are going to hire Ryan Gosling.")

	assert.NotContains(t, skills, "Go")
}

func TestHarvestSkillsDeduplicatesVariants(t *testing.T) {
	skills := HarvestSkills("JavaScript or js, we use both names for javascript.")

	assert.Equal(t, []string{"JavaScript"}, skills)
}

func TestHarvestSkillsEmptyText(t *testing.T) {
	assert.Nil(t, HarvestSkills(""))
	assert.Nil(t, HarvestSkills("   \n  "))
}

func TestFindWord(t *testing.T) {
	tests := []struct {
		name string
		text string
		word string
		want int
	}{
		{"simple hit", "we use go here", "go", 7},
		{"start of text", "go is great", "go", 0},
		{"end of text", "written in go", "go", 11},
		{"embedded miss", "going going gone", "go", -1},
		{"punctuation boundary", "skills: go, python", "go", 8},
		{"no hit", "rust only", "go", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findWord(tt.text, tt.word))
		})
	}
}
