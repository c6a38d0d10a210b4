package roles

import (
	"sort"
	"strings"
)

// HarvestSkills scans free text, typically an ingested job posting, for
// mentions of known skills. Matches are whole-word and case-insensitive, and
// the result lists canonical names ordered by first appearance.
func HarvestSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lowered := strings.ToLower(text)

	type hit struct {
		canonical string
		pos       int
	}

	// Several variants can name the same skill, so keep the earliest match
	// per canonical name.
	earliest := make(map[string]int)
	for variant, canonical := range skillUniverse() {
		pos := findWord(lowered, variant)
		if pos < 0 {
			continue
		}
		if prev, ok := earliest[canonical]; !ok || pos < prev {
			earliest[canonical] = pos
		}
	}

	hits := make([]hit, 0, len(earliest))
	for canonical, pos := range earliest {
		hits = append(hits, hit{canonical: canonical, pos: pos})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].pos != hits[j].pos {
			return hits[i].pos < hits[j].pos
		}
		return hits[i].canonical < hits[j].canonical
	})

	skills := make([]string, len(hits))
	for i, h := range hits {
		skills[i] = h.canonical
	}
	return skills
}

// skillUniverse collects every lowercase skill variant the package knows
// about, mapped to its canonical name.
func skillUniverse() map[string]string {
	universe := make(map[string]string)
	for _, skills := range catalog {
		for _, skill := range skills {
			universe[strings.ToLower(skill)] = skill
		}
	}
	for variant, canonical := range skillNormalizations {
		universe[variant] = canonical
	}
	return universe
}

// findWord returns the index of the first whole-word occurrence of word in
// text, or -1. Both arguments must already be lowercase. Word boundaries are
// checked manually so names like "c++" and "ci/cd" match correctly.
func findWord(text, word string) int {
	if word == "" {
		return -1
	}
	for start := 0; ; {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return -1
		}
		idx += start
		if isBoundary(text, idx-1) && isBoundary(text, idx+len(word)) {
			return idx
		}
		start = idx + 1
	}
}

// isBoundary reports whether the byte at i does not extend a skill token.
// Out-of-range indexes count as boundaries.
func isBoundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	c := text[i]
	switch {
	case c >= 'a' && c <= 'z':
		return false
	case c >= '0' && c <= '9':
		return false
	case c == '+' || c == '#':
		return false
	}
	return true
}
