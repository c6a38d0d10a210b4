package roles

import "strings"

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node":       "Node.js",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"sql":        "SQL",
	"nosql":      "NoSQL",
	"aws":        "AWS",
	"gcp":        "GCP",
	"ci/cd":      "CI/CD",
	"ml":         "Machine Learning",
	"nlp":        "NLP",
	"rest":       "REST",
	"api":        "API",
	"html":       "HTML",
	"css":        "CSS",
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	if skillName == "" {
		return ""
	}

	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	// Check for exact match in normalization map (case-insensitive)
	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// Mixed case is assumed intentional (PyTorch, iOS)
	if normalized != strings.ToUpper(normalized) && normalized != strings.ToLower(normalized) {
		return normalized
	}

	// Short all-caps names are treated as acronyms and kept as-is
	if normalized == strings.ToUpper(normalized) && len(normalized) <= 4 && !strings.Contains(normalized, " ") {
		return normalized
	}

	// Otherwise capitalize each word
	words := strings.Fields(lower)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// NormalizeSkills normalizes and deduplicates a skill list, preserving the
// order of first appearance.
func NormalizeSkills(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(skills))
	seen := make(map[string]bool)

	for _, skill := range skills {
		canonical := NormalizeSkillName(skill)
		if canonical == "" {
			continue
		}
		key := strings.ToLower(canonical)
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, canonical)
	}

	return normalized
}
