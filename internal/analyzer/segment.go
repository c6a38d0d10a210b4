package analyzer

import "strings"

// SectionBlock is one contiguous run of lines attributed to a single
// section label. Non-contiguous runs of the same label stay separate blocks.
type SectionBlock struct {
	Label SectionLabel
	Lines []string
}

// Segment scans the document once, left to right, splitting it into labeled
// blocks. A line containing a section heading closes the previous block and
// opens a new one under the matched label; unless the line is a bare
// keyword it also becomes the first line of the new block, since headings
// often carry data ("Education: B.Tech, XYZ University"). A blank line
// inside a named section closes the current entry without leaving the
// section, so consecutive jobs under one heading become separate blocks.
// A document with no recognizable headings comes back as a single unknown
// block; that is a normal outcome, not an error.
func (a *Analyzer) Segment(text string) []SectionBlock {
	var blocks []SectionBlock
	label := SectionUnknown
	var buffer []string

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		blocks = append(blocks, SectionBlock{Label: label, Lines: buffer})
		buffer = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if line == "" {
			if label != SectionUnknown {
				flush()
			}
			continue
		}

		if matched, ok := a.lex.matchHeader(line); ok {
			flush()
			label = matched
			if !a.lex.isPureHeader(line, matched) {
				buffer = append(buffer, line)
			}
			continue
		}

		buffer = append(buffer, line)
	}

	flush()
	return blocks
}
