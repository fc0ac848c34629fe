package providers

import "trend-writer/models"

// SourceProvider ist das Interface, das jeder Quellen-Provider
// (z.B. Wikipedia, Guardian, NYT) implementieren muss.
type SourceProvider interface {
	// Search führt eine Suche für einen gegebenen Term durch und gibt
	// standardisierte Quellen-Verweise zurück.
	Search(term string) ([]models.SourceReference, error)

	// Name gibt den eindeutigen Namen des Providers zurück (z.B. "wikipedia").
	Name() string
}

// ImageProvider liefert höchstens ein Bild für einen Term.
// Ein nil-Ergebnis ohne Fehler bedeutet: kein Treffer bei diesem Provider.
type ImageProvider interface {
	Search(term string) (*models.Image, error)
	Name() string
}

// TrendProvider liefert die aktuell trendenden Suchbegriffe einer Region.
type TrendProvider interface {
	Trending(region string) ([]string, error)
}

// RelatedProvider liefert verwandte Suchanfragen zu einem Begriff,
// getrennt nach steigenden ("rising") und insgesamt häufigen ("top") Queries.
type RelatedProvider interface {
	Related(term string) (rising []string, top []string, err error)
}
