package gtrends

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"trend-writer/config"
)

var httpClient = &http.Client{Timeout: 20 * time.Second}

// geoCodes übersetzt die Regionsnamen aus der Konfiguration in Google-Geo-Codes.
var geoCodes = map[string]string{
	"united_states":  "US",
	"united_kingdom": "GB",
	"germany":        "DE",
	"france":         "FR",
	"canada":         "CA",
	"australia":      "AU",
	"india":          "IN",
	"japan":          "JP",
	"brazil":         "BR",
	"mexico":         "MX",
}

// Fetcher kapselt die Logik zur Interaktion mit der Google-Trends-API.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher erstellt eine neue Instanz des Trends-Fetchers.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

// Trending holt die aktuellen Trend-Begriffe für eine Region.
func (f *Fetcher) Trending(region string) ([]string, error) {
	geo, ok := geoCodes[strings.ToLower(region)]
	if !ok {
		return nil, fmt.Errorf("unbekannte Region: %q", region)
	}

	log := f.Logger.With(zap.String("region", region), zap.String("geo", geo))
	log.Debug("Rufe dailytrends-API auf.")

	endpoint := fmt.Sprintf("%s/dailytrends?hl=en-US&tz=360&geo=%s&ns=15", f.Config.TrendsBaseURL, geo)
	body, err := f.get(endpoint)
	if err != nil {
		return nil, err
	}

	var dr dailyTrendsResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return nil, fmt.Errorf("dailytrends-Antwort konnte nicht geparst werden: %w", err)
	}

	var terms []string
	for _, day := range dr.Default.TrendingSearchesDays {
		for _, search := range day.TrendingSearches {
			if term := strings.TrimSpace(search.Title.Query); term != "" {
				terms = append(terms, term)
			}
		}
	}

	log.Debug("Trend-Begriffe geladen", zap.Int("count", len(terms)))
	return terms, nil
}

// Related holt verwandte Suchanfragen über den zweistufigen Widget-Flow:
// explore liefert ein Token, widgetdata/relatedsearches die eigentlichen Daten.
func (f *Fetcher) Related(term string) ([]string, []string, error) {
	log := f.Logger.With(zap.String("term", term))

	token, widgetReq, err := f.exploreToken(term)
	if err != nil {
		return nil, nil, err
	}

	endpoint := fmt.Sprintf("%s/widgetdata/relatedsearches?hl=en-US&tz=360&req=%s&token=%s",
		f.Config.TrendsBaseURL, url.QueryEscape(string(widgetReq)), url.QueryEscape(token))
	body, err := f.get(endpoint)
	if err != nil {
		return nil, nil, err
	}

	var rr relatedSearchesResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, nil, fmt.Errorf("relatedsearches-Antwort konnte nicht geparst werden: %w", err)
	}

	var top, rising []string
	if len(rr.Default.RankedList) > 0 {
		top = rankedQueries(rr.Default.RankedList[0].RankedKeyword)
	}
	if len(rr.Default.RankedList) > 1 {
		rising = rankedQueries(rr.Default.RankedList[1].RankedKeyword)
	}

	log.Debug("Verwandte Suchanfragen geladen", zap.Int("rising", len(rising)), zap.Int("top", len(top)))
	return rising, top, nil
}

// exploreToken fragt die explore-API an und gibt Token plus Request-Payload
// des RELATED_QUERIES-Widgets zurück.
func (f *Fetcher) exploreToken(term string) (string, json.RawMessage, error) {
	req := map[string]any{
		"comparisonItem": []map[string]string{
			{"keyword": term, "geo": "", "time": "today 12-m"},
		},
		"category": 0,
		"property": "",
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return "", nil, err
	}

	endpoint := fmt.Sprintf("%s/explore?hl=en-US&tz=360&req=%s", f.Config.TrendsBaseURL, url.QueryEscape(string(payload)))
	body, err := f.get(endpoint)
	if err != nil {
		return "", nil, err
	}

	var er exploreResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return "", nil, fmt.Errorf("explore-Antwort konnte nicht geparst werden: %w", err)
	}

	for _, widget := range er.Widgets {
		if widget.ID == "RELATED_QUERIES" {
			return widget.Token, widget.Request, nil
		}
	}
	return "", nil, fmt.Errorf("kein RELATED_QUERIES-Widget in der explore-Antwort")
}

// get führt einen GET-Request aus und entfernt das Anti-XSSI-Präfix ()]}'),
// das Google allen Trends-API-Antworten voranstellt.
func (f *Fetcher) get(endpoint string) ([]byte, error) {
	resp, err := httpClient.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trends request failed with status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if idx := bytes.IndexByte(data, '{'); idx > 0 {
		data = data[idx:]
	}
	return data, nil
}

func rankedQueries(keywords []rankedKeyword) []string {
	var out []string
	for _, kw := range keywords {
		if q := strings.TrimSpace(kw.Query); q != "" {
			out = append(out, q)
		}
	}
	return out
}
