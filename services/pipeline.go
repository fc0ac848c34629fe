package services

import (
	"context"

	"go.uber.org/zap"

	"trend-writer/config"
	"trend-writer/models"
	"trend-writer/providers"
	"trend-writer/storage"
)

// Pipeline kümmert sich um die Orchestrierung eines kompletten Laufs:
// Trends entdecken, Seed expandieren, je Subtopic Quellen und Bild sammeln
// und den Artikel veröffentlichen.
type Pipeline struct {
	Config     *config.Config
	Logger     *zap.Logger
	Discovery  *DiscoveryService
	Expansion  *ExpansionService
	Aggregator *AggregatorService
	Images     *ImageService
	Publisher  *PublisherService
}

// NewPipeline verdrahtet alle Services zu einer lauffähigen Pipeline.
func NewPipeline(cfg *config.Config, logger *zap.Logger,
	trends providers.TrendProvider, related providers.RelatedProvider,
	sourceProviders []providers.SourceProvider, imageProviders []providers.ImageProvider,
	store storage.Store,
) *Pipeline {
	return &Pipeline{
		Config:     cfg,
		Logger:     logger,
		Discovery:  NewDiscoveryService(cfg, logger, trends),
		Expansion:  NewExpansionService(logger, related),
		Aggregator: NewAggregatorService(logger, sourceProviders),
		Images:     NewImageService(logger, imageProviders),
		Publisher:  NewPublisherService(cfg, logger, store),
	}
}

// Run führt einen kompletten Lauf aus und gibt die Pfade der neu erstellten
// Records zurück. Eine leere Trend-Liste beendet den Lauf regulär ohne Fehler.
// Provider-Ausfälle einzelner Subtopics brechen die Schleife nie ab.
func (p *Pipeline) Run(ctx context.Context) ([]string, error) {
	terms := p.Discovery.Discover()
	if len(terms) == 0 {
		p.Logger.Info("Keine Trend-Begriffe gefunden, Lauf wird beendet.")
		return []string{}, nil
	}

	seed := terms[0]
	subtopics := p.Expansion.Expand(seed, p.Config.ArticlesPerCycle)
	p.Logger.Info("Seed expandiert",
		zap.String("seed", seed), zap.Int("subtopics", len(subtopics)))

	created := []string{}
	for _, subtopic := range subtopics {
		select {
		case <-ctx.Done():
			return created, ctx.Err()
		default:
		}

		var sources []models.SourceReference
		if p.Config.FetchSources {
			sources = p.Aggregator.Aggregate(subtopic)
		}

		var image *models.Image
		if p.Config.FetchImages {
			image = p.Images.Resolve(subtopic)
		}

		location, err := p.Publisher.Publish(seed, subtopic, sources, image, p.Config.MinWords)
		if err != nil {
			p.Logger.Error("Veröffentlichung fehlgeschlagen",
				zap.String("subtopic", subtopic), zap.Error(err))
			continue
		}
		if location != "" {
			created = append(created, location)
		}
	}

	p.Logger.Info("Lauf abgeschlossen", zap.Int("created", len(created)))
	return created, nil
}
