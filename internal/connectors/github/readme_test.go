package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRelevantSections(t *testing.T) {
	t.Run("keeps whitelisted sections and drops the rest", func(t *testing.T) {
		readme := `# caching-proxy
![build](https://example.com/badge.svg)

A caching reverse proxy with a built-in load balancer.

## Features
- LRU response cache
- Round-robin load balancing

## Installation
go install github.com/AlyyanAhmed21/caching-proxy@latest

## Tech Stack
Go, Redis
`
		got := extractRelevantSections(readme)

		assert.Contains(t, got, "### Features")
		assert.Contains(t, got, "- LRU response cache")
		assert.Contains(t, got, "### Tech Stack")
		assert.Contains(t, got, "Go, Redis")
		assert.NotContains(t, got, "Installation")
		assert.NotContains(t, got, "go install")
		assert.NotContains(t, got, "badge.svg")
	})

	t.Run("heading match is substring based", func(t *testing.T) {
		readme := "intro\n## Core Features of the Proxy\nfast\n## Random Notes\nskip me\n"

		got := extractRelevantSections(readme)

		assert.Contains(t, got, "### Core Features Of The Proxy")
		assert.Contains(t, got, "fast")
		assert.NotContains(t, got, "skip me")
	})

	t.Run("preamble is skipped when sections exist", func(t *testing.T) {
		readme := "# title\nA description in the preamble.\n## Features\nfast\n"

		got := extractRelevantSections(readme)

		assert.Contains(t, got, "### Features")
		assert.NotContains(t, got, "A description in the preamble.")
	})

	t.Run("readme without headings yields first paragraph", func(t *testing.T) {
		readme := "# title\n![badge](x)\n[link](y)\n\nA small experiment in socket programming.\nMore detail here.\n"

		got := extractRelevantSections(readme)

		assert.Equal(t, "A small experiment in socket programming.", got)
	})

	t.Run("nothing relevant yields empty string", func(t *testing.T) {
		readme := "# title\n## Installation\nsteps\n## License\nMIT\n"

		assert.Equal(t, "", extractRelevantSections(readme))
	})

	t.Run("empty readme", func(t *testing.T) {
		assert.Equal(t, "", extractRelevantSections(""))
		assert.Equal(t, "", extractRelevantSections("   \n\n"))
	})

	t.Run("blank lines are stripped from section bodies", func(t *testing.T) {
		readme := "desc\n## Architecture\n\nlayer one\n\nlayer two\n\n"

		got := extractRelevantSections(readme)

		assert.Contains(t, got, "### Architecture\nlayer one\nlayer two")
	})
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Tech Stack", titleCase("tech stack"))
	assert.Equal(t, "How It Works", titleCase("how it works"))
	assert.Equal(t, "", titleCase(""))
}
