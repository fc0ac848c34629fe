package wikipedia

// summaryResponse bildet die relevanten Teile der REST-Summary-Antwort ab.
type summaryResponse struct {
	Title       string `json:"title"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}
