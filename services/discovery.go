package services

import (
	"strings"

	"go.uber.org/zap"

	"trend-writer/config"
	"trend-writer/providers"
)

// maxTrendingTerms begrenzt die Gesamtliste über alle Regionen hinweg.
const maxTrendingTerms = 20

// DiscoveryService sammelt die aktuellen Trend-Begriffe über alle konfigurierten Regionen.
type DiscoveryService struct {
	Config *config.Config
	Logger *zap.Logger
	Trends providers.TrendProvider
}

// NewDiscoveryService erstellt eine neue Instanz des DiscoveryService.
func NewDiscoveryService(cfg *config.Config, logger *zap.Logger, trends providers.TrendProvider) *DiscoveryService {
	return &DiscoveryService{Config: cfg, Logger: logger, Trends: trends}
}

// Discover holt die Trend-Begriffe je Region, fasst sie in Regions-Reihenfolge
// zusammen, de-dupliziert case-insensitiv unter Beibehaltung der ersten Fundstelle
// und kappt auf maxTrendingTerms. Eine leere Liste ist ein gültiges Ergebnis;
// scheiternde Regionen werden geloggt und übersprungen.
func (s *DiscoveryService) Discover() []string {
	var terms []string
	for _, region := range s.Config.Regions {
		found, err := s.Trends.Trending(region)
		if err != nil {
			s.Logger.Warn("Trend-Abfrage für Region fehlgeschlagen",
				zap.String("region", region), zap.Error(err))
			continue
		}
		for _, term := range found {
			if t := strings.TrimSpace(term); t != "" {
				terms = append(terms, t)
			}
		}
	}

	seen := make(map[string]struct{}, len(terms))
	var unique []string
	for _, term := range terms {
		key := strings.ToLower(term)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, term)
	}

	if len(unique) > maxTrendingTerms {
		unique = unique[:maxTrendingTerms]
	}

	s.Logger.Info("Trend-Discovery abgeschlossen",
		zap.Int("regions", len(s.Config.Regions)), zap.Int("terms", len(unique)))
	return unique
}
