package models

// SourceReference ist ein einzelner Quellen-Verweis für einen Artikel.
// Die URL dient als Dedup-Schlüssel (exakter String-Vergleich, keine Normalisierung).
type SourceReference struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	URL   string `json:"url" yaml:"url"`
}
