// Package roles maps job role names to the skills recruiters expect for
// them. The built-in catalog backs keyword matching when a caller names a
// role without supplying an explicit skill list, and the harvester pulls a
// skill list out of raw job posting text.
package roles

import (
	"sort"
	"strings"
)

// catalog maps lowercase role names to canonical required skills.
var catalog = map[string][]string{
	"software engineer": {
		"Python", "Java", "Go", "SQL", "Git", "Algorithms", "Data Structures", "Testing",
	},
	"software developer": {
		"Python", "Java", "JavaScript", "SQL", "Git", "Debugging", "Testing",
	},
	"backend developer": {
		"Go", "Python", "SQL", "PostgreSQL", "REST", "Docker", "Microservices",
	},
	"frontend developer": {
		"JavaScript", "TypeScript", "React", "HTML", "CSS", "Testing",
	},
	"web developer": {
		"JavaScript", "HTML", "CSS", "React", "Node.js", "REST", "Git",
	},
	"full stack developer": {
		"JavaScript", "TypeScript", "React", "Node.js", "SQL", "REST", "Docker",
	},
	"data scientist": {
		"Python", "SQL", "Machine Learning", "Statistics", "Pandas", "NumPy", "Visualization",
	},
	"data analyst": {
		"SQL", "Python", "Excel", "Visualization", "Statistics", "Reporting",
	},
	"data engineer": {
		"Python", "SQL", "Spark", "Airflow", "ETL", "AWS", "Data Warehousing",
	},
	"devops engineer": {
		"Docker", "Kubernetes", "CI/CD", "Terraform", "AWS", "Linux", "Monitoring",
	},
	"machine learning engineer": {
		"Python", "Machine Learning", "PyTorch", "TensorFlow", "SQL", "Docker", "MLOps",
	},
	"mobile developer": {
		"Swift", "Kotlin", "React Native", "REST", "Git", "Testing",
	},
	"qa engineer": {
		"Testing", "Selenium", "Automation", "Python", "CI/CD", "Bug Tracking",
	},
	"product manager": {
		"Roadmapping", "Analytics", "Communication", "Agile", "Stakeholder Management", "SQL",
	},
}

// Lookup returns the required skills for a role. Matching is
// case-insensitive on the trimmed role name.
func Lookup(role string) ([]string, bool) {
	skills, ok := catalog[strings.ToLower(strings.TrimSpace(role))]
	if !ok {
		return nil, false
	}
	out := make([]string, len(skills))
	copy(out, skills)
	return out, true
}

// Roles returns the catalog's role names in sorted order.
func Roles() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve builds the skill list for a keyword match. Explicit skills always
// win; when none are given the catalog entry for jobRole is used. Both paths
// normalize and deduplicate. The result is nil when neither source has
// anything to offer.
func Resolve(jobRole string, explicit []string) []string {
	if len(explicit) > 0 {
		return NormalizeSkills(explicit)
	}
	if skills, ok := Lookup(jobRole); ok {
		return NormalizeSkills(skills)
	}
	return nil
}

// Merge combines two skill lists, normalizing and dropping duplicates while
// keeping base's ordering first.
func Merge(base, extra []string) []string {
	combined := make([]string, 0, len(base)+len(extra))
	combined = append(combined, base...)
	combined = append(combined, extra...)
	return NormalizeSkills(combined)
}
