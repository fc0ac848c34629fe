package nyt

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

var httpClient = &http.Client{Timeout: 15 * time.Second}

// response bildet die relevanten Teile der Article-Search-Antwort ab.
type response struct {
	Response struct {
		Docs []struct {
			Headline struct {
				Main string `json:"main"`
			} `json:"headline"`
			WebURL string `json:"web_url"`
		} `json:"docs"`
	} `json:"response"`
}

// Fetcher implementiert das SourceProvider-Interface für die NYT-Article-Search-API.
// Er wird nur instanziiert, wenn ein API-Key konfiguriert ist.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
	Limit  int
}

// NewFetcher erstellt einen neuen NYT-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger, limit int) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger, Limit: limit}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "nyt"
}

// Search führt die Suche auf der NYT-Article-Search-API aus.
// Die API kennt keine page-size, daher wird das Limit clientseitig angewendet.
func (f *Fetcher) Search(term string) ([]models.SourceReference, error) {
	params := url.Values{}
	params.Set("q", term)
	params.Set("api-key", f.Config.NYTAPIKey)
	params.Set("page", "0")

	resp, err := httpClient.Get(f.Config.NYTBaseURL + "/articlesearch.json?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nyt request failed with status: %d", resp.StatusCode)
	}

	var nr response
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return nil, err
	}

	var refs []models.SourceReference
	for _, doc := range nr.Response.Docs {
		refs = append(refs, models.SourceReference{Title: doc.Headline.Main, URL: doc.WebURL})
		if len(refs) >= f.Limit {
			break
		}
	}

	f.Logger.Debug("NYT-Suche abgeschlossen", zap.String("term", term), zap.Int("found", len(refs)))
	return refs, nil
}
