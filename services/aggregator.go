package services

import (
	"go.uber.org/zap"

	"trend-writer/models"
	"trend-writer/providers"
)

// maxSourcesPerArticle kappt die zusammengeführte Quellenliste je Subtopic.
const maxSourcesPerArticle = 5

// AggregatorService führt die Quellen-Suche über alle Provider in fester
// Prioritäts-Reihenfolge zusammen.
type AggregatorService struct {
	Logger    *zap.Logger
	Providers []providers.SourceProvider
}

// NewAggregatorService erstellt eine neue Instanz des AggregatorService.
func NewAggregatorService(logger *zap.Logger, sourceProviders []providers.SourceProvider) *AggregatorService {
	return &AggregatorService{Logger: logger, Providers: sourceProviders}
}

// Aggregate fragt jeden Provider einzeln ab. Ein scheiternder Provider liefert
// eine leere Contribution und bricht niemals die Aggregation für die übrigen
// Provider ab. Die Beiträge werden in Provider-Reihenfolge konkateniert, per
// exaktem URL-Vergleich de-dupliziert (erste Fundstelle gewinnt) und gekappt.
func (s *AggregatorService) Aggregate(subtopic string) []models.SourceReference {
	var merged []models.SourceReference
	for _, provider := range s.Providers {
		refs, err := provider.Search(subtopic)
		if err != nil {
			s.Logger.Warn("Quellen-Provider fehlgeschlagen",
				zap.String("provider", provider.Name()),
				zap.String("term", subtopic), zap.Error(err))
			continue
		}
		merged = append(merged, refs...)
	}

	seen := make(map[string]struct{}, len(merged))
	var unique []models.SourceReference
	for _, ref := range merged {
		if ref.URL == "" {
			continue
		}
		if _, exists := seen[ref.URL]; exists {
			continue
		}
		seen[ref.URL] = struct{}{}
		unique = append(unique, ref)
	}

	if len(unique) > maxSourcesPerArticle {
		unique = unique[:maxSourcesPerArticle]
	}

	s.Logger.Debug("Quellen-Aggregation abgeschlossen",
		zap.String("term", subtopic), zap.Int("sources", len(unique)))
	return unique
}
