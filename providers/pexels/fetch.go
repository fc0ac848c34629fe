package pexels

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"trend-writer/config"
	"trend-writer/models"
)

var httpClient = &http.Client{Timeout: 20 * time.Second}

// response bildet die relevanten Teile der Pexels-Such-Antwort ab.
type response struct {
	Photos []struct {
		URL          string `json:"url"`
		Photographer string `json:"photographer"`
		Src          struct {
			Large string `json:"large"`
		} `json:"src"`
	} `json:"photos"`
}

// Fetcher implementiert das ImageProvider-Interface für Pexels.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher erstellt einen neuen Pexels-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "pexels"
}

// Search sucht ein Bild auf Pexels. Kein Treffer ist kein Fehler.
func (f *Fetcher) Search(term string) (*models.Image, error) {
	params := url.Values{}
	params.Set("query", term)
	params.Set("per_page", "1")

	req, err := http.NewRequest(http.MethodGet, f.Config.PexelsBaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", f.Config.PexelsAPIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels request failed with status: %d", resp.StatusCode)
	}

	var pr response
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, err
	}

	if len(pr.Photos) == 0 || pr.Photos[0].Src.Large == "" {
		return nil, nil
	}

	photo := pr.Photos[0]
	return &models.Image{
		URL:        photo.Src.Large,
		CreditText: fmt.Sprintf("Photo by %s on Pexels", photo.Photographer),
		CreditURL:  photo.URL,
	}, nil
}
