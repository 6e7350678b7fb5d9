package github

import (
	"strings"
	"unicode"
)

// allowedReadmeSections whitelists README headings worth ingesting. Anything
// else (installation, licence, badges, contribution guides) is noise that
// dilutes retrieval quality.
var allowedReadmeSections = []string{
	"features", "key features", "overview", "introduction", "about the project",
	"technology stack", "tech stack", "built with", "technologies used",
	"architecture", "how it works", "project structure",
}

// extractRelevantSections reduces a README to its high-value content: the
// bodies of all whitelisted "## " sections, joined by blank lines. A README
// with no "## " headings at all falls back to its first descriptive
// paragraph instead. Returns "" when nothing qualifies.
func extractRelevantSections(readme string) string {
	if strings.TrimSpace(readme) == "" {
		return ""
	}

	sections := strings.Split(readme, "\n## ")
	var relevant []string

	// The preamble paragraph only stands in for a description when there
	// are no sections to draw from.
	if !strings.Contains(readme, "## ") {
		if lead := firstDescriptiveLine(sections[0]); lead != "" {
			relevant = append(relevant, lead)
		}
	}

	for _, section := range sections[1:] {
		lines := strings.Split(section, "\n")
		heading := strings.ToLower(strings.TrimSpace(lines[0]))

		if !headingAllowed(heading) {
			continue
		}

		var body []string
		for _, line := range lines[1:] {
			if strings.TrimSpace(line) != "" {
				body = append(body, line)
			}
		}
		relevant = append(relevant, "### "+titleCase(heading)+"\n"+strings.Join(body, "\n"))
	}

	return strings.Join(relevant, "\n\n")
}

// firstDescriptiveLine returns the first non-empty line that is neither a
// heading, a badge image, nor a bare link.
func firstDescriptiveLine(preamble string) string {
	for _, line := range strings.Split(preamble, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "[") || strings.HasPrefix(line, "!") {
			continue
		}
		return line
	}
	return ""
}

// headingAllowed reports whether the lowercased heading contains any
// whitelisted section name.
func headingAllowed(heading string) bool {
	for _, allowed := range allowedReadmeSections {
		if strings.Contains(heading, allowed) {
			return true
		}
	}
	return false
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
