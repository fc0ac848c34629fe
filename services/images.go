package services

import (
	"go.uber.org/zap"

	"trend-writer/models"
	"trend-writer/providers"
)

// ImageService löst ein Titelbild über eine geordnete Fallback-Kette auf.
type ImageService struct {
	Logger    *zap.Logger
	Providers []providers.ImageProvider
}

// NewImageService erstellt eine neue Instanz des ImageService.
func NewImageService(logger *zap.Logger, imageProviders []providers.ImageProvider) *ImageService {
	return &ImageService{Logger: logger, Providers: imageProviders}
}

// Resolve probiert die Provider strikt der Reihe nach; der erste brauchbare
// Treffer gewinnt und beendet die Suche. Fehler und leere Ergebnisse werden
// geloggt und führen zum nächsten Provider. Sind alle erschöpft, ist das
// Ergebnis nil; der Aufrufer muss ein fehlendes Bild tolerieren.
func (s *ImageService) Resolve(subtopic string) *models.Image {
	for _, provider := range s.Providers {
		img, err := provider.Search(subtopic)
		if err != nil {
			s.Logger.Warn("Bild-Provider fehlgeschlagen",
				zap.String("provider", provider.Name()),
				zap.String("term", subtopic), zap.Error(err))
			continue
		}
		if img == nil || img.URL == "" {
			s.Logger.Debug("Kein Bild von diesem Provider",
				zap.String("provider", provider.Name()), zap.String("term", subtopic))
			continue
		}
		s.Logger.Info("Bild gefunden",
			zap.String("provider", provider.Name()), zap.String("term", subtopic))
		return img
	}
	return nil
}
