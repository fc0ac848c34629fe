package wikipedia

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

// Fetcher implementiert das SourceProvider-Interface für die Wikipedia.
// Er ist keyless und damit immer verfügbar.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
	Limit  int
}

// NewFetcher erstellt einen neuen Wikipedia-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger, limit int) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger, Limit: limit}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "wikipedia"
}

// Search sucht Artikel-Titel via opensearch und löst dann jeden Titel
// über die REST-Summary-API in eine kanonische Seiten-URL auf.
func (f *Fetcher) Search(term string) ([]models.SourceReference, error) {
	log := f.Logger.With(zap.String("term", term))

	titles, err := f.openSearch(term)
	if err != nil {
		return nil, err
	}

	var refs []models.SourceReference
	for _, title := range titles {
		ref, err := f.pageSummary(title)
		if err != nil {
			// Einzelne Titel dürfen scheitern, die Suche insgesamt nicht.
			log.Debug("Summary-Abfrage fehlgeschlagen", zap.String("title", title), zap.Error(err))
			continue
		}
		if ref != nil {
			refs = append(refs, *ref)
		}
		if len(refs) >= f.Limit {
			break
		}
	}

	log.Debug("Wikipedia-Suche abgeschlossen", zap.Int("found", len(refs)))
	return refs, nil
}

// openSearch gibt die Titel der Treffer zurück. Die opensearch-Antwort ist
// ein JSON-Array der Form [query, [titles], [descriptions], [urls]].
func (f *Fetcher) openSearch(term string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "opensearch")
	params.Set("search", term)
	params.Set("limit", strconv.Itoa(f.Limit))
	params.Set("namespace", "0")
	params.Set("format", "json")

	resp, err := httpClient.Get(f.Config.WikipediaAPIURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia opensearch failed with status: %d", resp.StatusCode)
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("unerwartete opensearch-Antwort mit %d Elementen", len(raw))
	}

	var titles []string
	if err := json.Unmarshal(raw[1], &titles); err != nil {
		return nil, err
	}
	return titles, nil
}

// pageSummary löst einen Titel in die Desktop-Seiten-URL auf.
func (f *Fetcher) pageSummary(title string) (*models.SourceReference, error) {
	endpoint := fmt.Sprintf("%s/page/summary/%s", f.Config.WikipediaRESTURL, url.PathEscape(title))
	resp, err := httpClient.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia summary failed with status: %d", resp.StatusCode)
	}

	var sr summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, err
	}

	if sr.ContentURLs.Desktop.Page == "" {
		return nil, nil
	}
	return &models.SourceReference{Title: sr.Title, URL: sr.ContentURLs.Desktop.Page}, nil
}
