package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFrontMatterAndBody(t *testing.T) {
	a := Article{
		Seed: "Foo",
		FrontMatter: FrontMatter{
			Title: "Foo news",
			Date:  "2025-06-01T12:30:45Z",
			Tags:  []string{"foo", "trending"},
			Sources: []SourceReference{
				{Title: "Wiki", URL: "https://en.wikipedia.org/wiki/Foo"},
			},
		},
	}

	data, err := a.Render()
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "---\n"))
	// Feldreihenfolge des Structs bleibt im YAML erhalten.
	assert.Less(t, strings.Index(content, "title:"), strings.Index(content, "date:"))
	assert.Less(t, strings.Index(content, "date:"), strings.Index(content, "tags:"))
	assert.Contains(t, content, "---\n**Topic:** Foo")

	for _, section := range outlineSections {
		assert.Contains(t, content, "## "+section)
	}
}

func TestRenderEmptySources(t *testing.T) {
	a := Article{Seed: "Foo", FrontMatter: FrontMatter{Title: "Foo news"}}

	data, err := a.Render()
	require.NoError(t, err)
	assert.Contains(t, string(data), "sources: []")
	assert.NotContains(t, string(data), "image:")
}
