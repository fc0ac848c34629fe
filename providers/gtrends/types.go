package gtrends

import "encoding/json"

// dailyTrendsResponse bildet die relevanten Teile der dailytrends-Antwort ab.
type dailyTrendsResponse struct {
	Default struct {
		TrendingSearchesDays []struct {
			TrendingSearches []struct {
				Title struct {
					Query string `json:"query"`
				} `json:"title"`
			} `json:"trendingSearches"`
		} `json:"trendingSearchesDays"`
	} `json:"default"`
}

// exploreResponse enthält die Widget-Liste mit Tokens für Folge-Requests.
type exploreResponse struct {
	Widgets []struct {
		ID      string          `json:"id"`
		Token   string          `json:"token"`
		Request json.RawMessage `json:"request"`
	} `json:"widgets"`
}

// relatedSearchesResponse bildet die relatedsearches-Widgetdaten ab.
// rankedList[0] enthält die "top"-Queries, rankedList[1] die "rising"-Queries.
type relatedSearchesResponse struct {
	Default struct {
		RankedList []struct {
			RankedKeyword []rankedKeyword `json:"rankedKeyword"`
		} `json:"rankedList"`
	} `json:"default"`
}

type rankedKeyword struct {
	Query string `json:"query"`
}
