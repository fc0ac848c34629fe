package guardian

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"trend-writer/config"
	"trend-writer/models"
)

var httpClient = &http.Client{Timeout: 15 * time.Second}

// response bildet die relevanten Teile der Guardian-Content-API-Antwort ab.
type response struct {
	Response struct {
		Results []struct {
			WebTitle string `json:"webTitle"`
			WebURL   string `json:"webUrl"`
		} `json:"results"`
	} `json:"response"`
}

// Fetcher implementiert das SourceProvider-Interface für die Guardian-Content-API.
// Er wird nur instanziiert, wenn ein API-Key konfiguriert ist.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
	Limit  int
}

// NewFetcher erstellt einen neuen Guardian-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger, limit int) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger, Limit: limit}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "guardian"
}

// Search führt die Suche auf der Guardian-Content-API aus.
func (f *Fetcher) Search(term string) ([]models.SourceReference, error) {
	params := url.Values{}
	params.Set("api-key", f.Config.GuardianAPIKey)
	params.Set("q", term)
	params.Set("page-size", strconv.Itoa(f.Limit))
	params.Set("show-fields", "headline,trailText")

	resp, err := httpClient.Get(f.Config.GuardianBaseURL + "/search?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("guardian request failed with status: %d", resp.StatusCode)
	}

	var gr response
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, err
	}

	var refs []models.SourceReference
	for _, result := range gr.Response.Results {
		refs = append(refs, models.SourceReference{Title: result.WebTitle, URL: result.WebURL})
		if len(refs) >= f.Limit {
			break
		}
	}

	f.Logger.Debug("Guardian-Suche abgeschlossen", zap.String("term", term), zap.Int("found", len(refs)))
	return refs, nil
}
