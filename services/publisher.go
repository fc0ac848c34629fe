package services

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"trend-writer/config"
	"trend-writer/models"
	"trend-writer/storage"
)

// PublisherService baut aus einem Subtopic einen Artikel und schreibt ihn
// idempotent in den Record-Store.
type PublisherService struct {
	Config *config.Config
	Logger *zap.Logger
	Store  storage.Store

	// now ist in Tests austauschbar.
	now func() time.Time
}

// NewPublisherService erstellt eine neue Instanz des PublisherService.
func NewPublisherService(cfg *config.Config, logger *zap.Logger, store storage.Store) *PublisherService {
	return &PublisherService{Config: cfg, Logger: logger, Store: store, now: time.Now}
}

// Publish leitet den Titel ab, berechnet den Identifier und schreibt den
// Artikel genau dann, wenn noch kein Record unter diesem Identifier existiert.
// Existiert bereits einer, passiert nichts und der Rückgabewert ist leer;
// ein vorhandener Record wird niemals überschrieben. minWords ist nur ein
// Hinweis für spätere Textgenerierung und wird hier nicht durchgesetzt.
func (s *PublisherService) Publish(seed, subtopic string, sources []models.SourceReference, image *models.Image, minWords int) (string, error) {
	title := subtopic
	if strings.EqualFold(strings.TrimSpace(subtopic), strings.TrimSpace(seed)) {
		title = fmt.Sprintf("%s: What you need to know", seed)
	}

	id := Slugify(title)
	if id == "" {
		return "", fmt.Errorf("leerer Identifier für Titel %q", title)
	}

	log := s.Logger.With(zap.String("id", id), zap.String("title", title))

	exists, err := s.Store.Exists(id)
	if err != nil {
		return "", fmt.Errorf("existenz-prüfung fehlgeschlagen: %w", err)
	}
	if exists {
		log.Debug("Record existiert bereits, wird übersprungen.")
		return "", nil
	}

	article := models.Article{
		Seed: seed,
		FrontMatter: models.FrontMatter{
			Title:   title,
			Date:    s.now().UTC().Truncate(time.Second).Format(time.RFC3339),
			Tags:    []string{Slugify(seed), "trending"},
			Draft:   s.Config.HumanReview,
			Image:   image,
			Sources: sources,
		},
	}

	data, err := article.Render()
	if err != nil {
		return "", err
	}
	if err := s.Store.Write(id, data); err != nil {
		return "", fmt.Errorf("record konnte nicht geschrieben werden: %w", err)
	}

	log.Info("Artikel veröffentlicht",
		zap.Int("sources", len(sources)),
		zap.Bool("has_image", image != nil),
		zap.Int("min_words_hint", minWords))
	return s.Store.Location(id), nil
}
