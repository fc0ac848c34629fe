package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter ist der strukturierte Metadaten-Header eines Artikels.
// Die Feldreihenfolge im Struct bestimmt die Reihenfolge im YAML-Output.
type FrontMatter struct {
	Title   string            `yaml:"title"`
	Date    string            `yaml:"date"`
	Tags    []string          `yaml:"tags"`
	Draft   bool              `yaml:"draft"`
	Image   *Image            `yaml:"image,omitempty"`
	Sources []SourceReference `yaml:"sources"`
}

// Article ist die Ausgabeeinheit der Pipeline: Frontmatter plus Body-Skelett.
type Article struct {
	FrontMatter FrontMatter
	Seed        string
}

// Die festen Abschnitte des Body-Skeletts. Das eigentliche Ausformulieren
// der Texte passiert außerhalb dieser Pipeline.
var outlineSections = []string{"Overview", "Key Points", "Deep Dive", "FAQs", "Sources"}

// Render serialisiert den Artikel als Frontmatter-Block gefolgt vom Body.
func (a *Article) Render() ([]byte, error) {
	fm, err := yaml.Marshal(a.FrontMatter)
	if err != nil {
		return nil, fmt.Errorf("frontmatter konnte nicht serialisiert werden: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n")
	b.WriteString(fmt.Sprintf("**Topic:** %s\n\n", a.Seed))
	b.WriteString("*This article was generated from current trending searches and augmented with reputable sources. It is reviewed periodically for accuracy.*\n")
	for _, section := range outlineSections {
		b.WriteString(fmt.Sprintf("\n## %s\n", section))
	}
	return []byte(b.String()), nil
}
