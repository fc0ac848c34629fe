package services

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxSlugLen begrenzt die Länge der Identifier; längere Titel werden abgeschnitten.
const maxSlugLen = 80

var (
	// NFD-Zerlegung, kombinierende Zeichen entfernen, NFC-Rekomposition.
	// "Café" und "Cafe" ergeben damit denselben Slug.
	slugTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify erzeugt einen stabilen, dateisystemsicheren Identifier aus beliebigem Text.
// Die Funktion ist deterministisch und seiteneffektfrei; gleicher Titel ergibt über
// alle Läufe hinweg denselben Slug, das ist der Idempotenz-Schlüssel der Publikation.
func Slugify(text string) string {
	s, _, err := transform.String(slugTransform, text)
	if err != nil {
		s = text
	}
	s = strings.ToLower(s)
	s = nonAlnumRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "-")
	}
	return s
}
