package llm

import "strings"

// CleanJSONBlock recovers the JSON payload from a model response. It strips
// markdown code fences, then, when prose surrounds the payload, extracts the
// first balanced JSON object or array.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		// Handle generic ``` ... ``` blocks
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			// If first line looks like a language identifier (no spaces, short), skip it
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	// Already bare JSON
	if strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}") {
		return text
	}
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		return text
	}

	// Models sometimes pad JSON answers with prose. Recover whichever
	// payload starts first.
	objStart := strings.Index(text, "{")
	arrStart := strings.Index(text, "[")
	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		if arr := extractJSONArray(text); arr != "" {
			return arr
		}
	}
	if obj := extractJSONObject(text); obj != "" {
		return obj
	}

	return text
}

// extractJSONObject returns the first brace-balanced object in text, or "".
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	if start == -1 {
		return ""
	}

	level := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			level++
		case '}':
			level--
			if level == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// extractJSONArray returns the first bracket-balanced array in text, or "".
func extractJSONArray(text string) string {
	start := strings.Index(text, "[")
	if start == -1 {
		return ""
	}

	level := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '[':
			level++
		case ']':
			level--
			if level == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
