package services

import (
	"strings"

	"go.uber.org/zap"

	"trend-writer/providers"
)

// fallbackAngles sind die festen generischen Blickwinkel, die aus dem Seed-Begriff
// synthetisiert werden, wenn der Related-Provider nichts Brauchbares liefert.
var fallbackAngles = []string{"explained", "pros and cons", "vs alternatives", "latest news"}

// ExpansionService leitet aus einem Seed-Begriff die Subtopics ab.
type ExpansionService struct {
	Logger  *zap.Logger
	Related providers.RelatedProvider
}

// NewExpansionService erstellt eine neue Instanz des ExpansionService.
func NewExpansionService(logger *zap.Logger, related providers.RelatedProvider) *ExpansionService {
	return &ExpansionService{Logger: logger, Related: related}
}

// Expand holt verwandte Suchanfragen zum Seed, bevorzugt "rising" vor "top",
// filtert den Seed selbst heraus und de-dupliziert case-insensitiv. Liefert der
// Provider nichts oder schlägt er fehl, werden die festen generischen Blickwinkel
// synthetisiert, damit die Pipeline immer Subtopics hat. Fehler propagieren nie.
func (s *ExpansionService) Expand(seed string, limit int) []string {
	rising, top, err := s.Related.Related(seed)
	if err != nil {
		s.Logger.Warn("Related-Query-Abfrage fehlgeschlagen, nutze Fallback-Blickwinkel",
			zap.String("seed", seed), zap.Error(err))
		rising, top = nil, nil
	}

	seedKey := strings.ToLower(strings.TrimSpace(seed))
	seen := make(map[string]struct{})
	var subtopics []string
	for _, candidate := range append(append([]string{}, rising...), top...) {
		c := strings.TrimSpace(candidate)
		key := strings.ToLower(c)
		if c == "" || key == seedKey {
			continue
		}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		subtopics = append(subtopics, c)
	}

	if len(subtopics) == 0 {
		for _, angle := range fallbackAngles {
			subtopics = append(subtopics, seed+" "+angle)
		}
		s.Logger.Info("Keine verwandten Suchanfragen, generische Blickwinkel synthetisiert",
			zap.String("seed", seed))
	}

	if len(subtopics) > limit {
		subtopics = subtopics[:limit]
	}
	return subtopics
}
