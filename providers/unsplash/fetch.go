package unsplash

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

// response bildet die relevanten Teile der Unsplash-Such-Antwort ab.
type response struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
		User struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
	} `json:"results"`
}

// Fetcher implementiert das ImageProvider-Interface für Unsplash.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher erstellt einen neuen Unsplash-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "unsplash"
}

// Search sucht ein Bild auf Unsplash. Kein Treffer ist kein Fehler.
func (f *Fetcher) Search(term string) (*models.Image, error) {
	params := url.Values{}
	params.Set("query", term)
	params.Set("per_page", "1")

	req, err := http.NewRequest(http.MethodGet, f.Config.UnsplashBaseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+f.Config.UnsplashAccessKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash request failed with status: %d", resp.StatusCode)
	}

	var ur response
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return nil, err
	}

	if len(ur.Results) == 0 || ur.Results[0].URLs.Regular == "" {
		return nil, nil
	}

	result := ur.Results[0]
	return &models.Image{
		URL:        result.URLs.Regular,
		CreditText: fmt.Sprintf("Photo by %s on Unsplash", result.User.Name),
		CreditURL:  result.User.Links.HTML,
	}, nil
}
