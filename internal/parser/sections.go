package parser

import (
	"strings"

	"ResearchDigest/internal/model"
)

const sectionMarker = "## "

// SplitSections splits a report into second-level sections.
// Text before the first heading is dropped; a repeated heading replaces the earlier body.
func SplitSections(content string) *model.Sections {
	sections := model.NewSections()

	var (
		current string
		inside  bool
		body    []string
	)
	flush := func() {
		if inside {
			sections.Set(current, strings.TrimSpace(strings.Join(body, "\n")))
		}
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, sectionMarker) {
			flush()
			current = strings.TrimSpace(line[len(sectionMarker):])
			inside = true
			body = body[:0]
			continue
		}
		if inside {
			body = append(body, line)
		}
	}
	flush()

	return sections
}
