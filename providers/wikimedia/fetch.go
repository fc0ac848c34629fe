package wikimedia

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

const commonsURL = "https://commons.wikimedia.org/"

// response bildet die relevanten Teile der pageimages-Antwort ab.
type response struct {
	Query struct {
		Pages map[string]struct {
			Title    string `json:"title"`
			Original struct {
				Source string `json:"source"`
			} `json:"original"`
		} `json:"pages"`
	} `json:"query"`
}

// Fetcher implementiert das ImageProvider-Interface über Wikimedia Commons.
// Keyless und damit der garantiert verfügbare letzte Fallback der Bild-Kette.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher erstellt einen neuen Wikimedia-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "wikimedia"
}

// Search sucht das Titelbild des besten Seiten-Treffers. Kein Treffer ist kein Fehler.
func (f *Fetcher) Search(term string) (*models.Image, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "pageimages|pageterms")
	params.Set("piprop", "original")
	params.Set("format", "json")
	params.Set("generator", "search")
	params.Set("gsrsearch", term)
	params.Set("gsrlimit", "1")

	resp, err := httpClient.Get(f.Config.WikimediaAPIURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikimedia request failed with status: %d", resp.StatusCode)
	}

	var wr response
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, err
	}

	for _, page := range wr.Query.Pages {
		if page.Original.Source == "" {
			continue
		}
		return &models.Image{
			URL:        page.Original.Source,
			CreditText: fmt.Sprintf("Wikimedia Commons / %s", page.Title),
			CreditURL:  commonsURL,
		}, nil
	}
	return nil, nil
}
