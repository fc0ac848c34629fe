package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"trend-writer/config"
	"trend-writer/providers"
	"trend-writer/providers/gtrends"
	"trend-writer/providers/guardian"
	"trend-writer/providers/nyt"
	"trend-writer/providers/pexels"
	"trend-writer/providers/unsplash"
	"trend-writer/providers/wikimedia"
	"trend-writer/providers/wikipedia"
	"trend-writer/services"
	"trend-writer/storage"
)

// Limits je Quellen-Provider; Wikipedia trägt als keyless Provider immer bei,
// die keyed News-Provider ergänzen Autorität, wenn Keys konfiguriert sind.
const (
	wikipediaSourceLimit = 2
	guardianSourceLimit  = 2
	nytSourceLimit       = 1
)

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	store, err := newStore(cfg)
	if err != nil {
		logging.Fatal("Record-Store konnte nicht erstellt werden", zap.Error(err))
	}

	trends := gtrends.NewFetcher(cfg, logging)

	// Quellen-Provider in fester Prioritäts-Reihenfolge; keyed Provider werden
	// ohne Key gar nicht erst instanziiert.
	var sourceProviders []providers.SourceProvider
	sourceProviders = append(sourceProviders, wikipedia.NewFetcher(cfg, logging, wikipediaSourceLimit))
	if cfg.GuardianAPIKey != "" {
		sourceProviders = append(sourceProviders, guardian.NewFetcher(cfg, logging, guardianSourceLimit))
	} else {
		logging.Info("Guardian übersprungen, kein API-Key konfiguriert.")
	}
	if cfg.NYTAPIKey != "" {
		sourceProviders = append(sourceProviders, nyt.NewFetcher(cfg, logging, nytSourceLimit))
	} else {
		logging.Info("NYT übersprungen, kein API-Key konfiguriert.")
	}

	// Bild-Provider als Fallback-Kette, von bevorzugt zu letzter Instanz.
	var imageProviders []providers.ImageProvider
	if cfg.PexelsAPIKey != "" {
		imageProviders = append(imageProviders, pexels.NewFetcher(cfg, logging))
	}
	if cfg.UnsplashAccessKey != "" {
		imageProviders = append(imageProviders, unsplash.NewFetcher(cfg, logging))
	}
	if cfg.AllowWikimediaImages {
		imageProviders = append(imageProviders, wikimedia.NewFetcher(cfg, logging))
	}

	pipeline := services.NewPipeline(cfg, logging, trends, trends, sourceProviders, imageProviders, store)

	created, err := pipeline.Run(context.Background())
	if err != nil {
		logging.Fatal("Lauf fehlgeschlagen", zap.Error(err))
	}

	report, err := json.MarshalIndent(map[string][]string{"created": created}, "", "  ")
	if err != nil {
		logging.Fatal("Report konnte nicht serialisiert werden", zap.Error(err))
	}
	fmt.Fprintln(os.Stdout, string(report))
}

// newStore wählt das Record-Store-Backend anhand der Konfiguration.
func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "fs":
		return storage.NewFSStore(cfg.ContentDir), nil
	case "s3":
		return storage.NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unbekanntes Storage-Backend: %q", cfg.StorageBackend)
	}
}
