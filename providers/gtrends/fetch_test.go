package gtrends

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trend-writer/config"
)

const dailyTrendsBody = `)]}',
{"default":{"trendingSearchesDays":[{"trendingSearches":[
  {"title":{"query":"Foo"}},
  {"title":{"query":" bar "}},
  {"title":{"query":""}}
]}]}}`

const exploreBody = `)]}'
{"widgets":[
  {"id":"TIMESERIES","token":"ts-token","request":{}},
  {"id":"RELATED_QUERIES","token":"rq-token","request":{"restriction":{"keyword":"Foo"}}}
]}`

const relatedSearchesBody = `)]}',
{"default":{"rankedList":[
  {"rankedKeyword":[{"query":"Foo facts"},{"query":"Foo news"}]},
  {"rankedKeyword":[{"query":"Foo rising"}]}
]}}`

func newTestFetcher(t *testing.T, handler http.Handler) *Fetcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewFetcher(&config.Config{TrendsBaseURL: srv.URL}, zap.NewNop())
}

func TestTrendingStripsPrefixAndParses(t *testing.T) {
	f := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dailytrends", r.URL.Path)
		assert.Equal(t, "US", r.URL.Query().Get("geo"))
		fmt.Fprint(w, dailyTrendsBody)
	}))

	terms, err := f.Trending("united_states")
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo", "bar"}, terms)
}

func TestTrendingUnknownRegion(t *testing.T) {
	f := NewFetcher(&config.Config{}, zap.NewNop())

	_, err := f.Trending("atlantis")
	assert.Error(t, err)
}

func TestTrendingNonOKStatus(t *testing.T) {
	f := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := f.Trending("united_states")
	assert.Error(t, err)
}

func TestRelatedTwoStepFlow(t *testing.T) {
	f := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/explore":
			fmt.Fprint(w, exploreBody)
		case "/widgetdata/relatedsearches":
			assert.Equal(t, "rq-token", r.URL.Query().Get("token"))
			fmt.Fprint(w, relatedSearchesBody)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	rising, top, err := f.Related("Foo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo rising"}, rising)
	assert.Equal(t, []string{"Foo facts", "Foo news"}, top)
}

func TestRelatedMissingWidget(t *testing.T) {
	f := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `)]}'
{"widgets":[{"id":"TIMESERIES","token":"ts","request":{}}]}`)
	}))

	_, _, err := f.Related("Foo")
	assert.Error(t, err)
}
