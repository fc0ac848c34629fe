package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config enthält alle Konfigurationsparameter aus Umgebungsvariablen.
type Config struct {
	// Pipeline-Steuerung
	Regions          []string `envconfig:"REGIONS" default:"united_states"`
	ArticlesPerCycle int      `envconfig:"ARTICLES_PER_CYCLE" default:"5"`
	FetchSources     bool     `envconfig:"FETCH_SOURCES" default:"true"`
	FetchImages      bool     `envconfig:"FETCH_IMAGES" default:"true"`
	HumanReview      bool     `envconfig:"HUMAN_REVIEW" default:"false"`
	MinWords         int      `envconfig:"MIN_WORDS" default:"900"`

	// API-Keys; Provider ohne Key werden beim Start übersprungen
	GuardianAPIKey    string `envconfig:"GUARDIAN_API_KEY"`
	NYTAPIKey         string `envconfig:"NYT_API_KEY"`
	PexelsAPIKey      string `envconfig:"PEXELS_API_KEY"`
	UnsplashAccessKey string `envconfig:"UNSPLASH_ACCESS_KEY"`

	// Wikimedia Commons als letzter Bild-Fallback (keyless)
	AllowWikimediaImages bool `envconfig:"ALLOW_WIKIMEDIA_IMAGES" default:"true"`

	// Basis-URLs, überschreibbar für Tests
	TrendsBaseURL    string `envconfig:"TRENDS_BASE_URL" default:"https://trends.google.com/trends/api"`
	WikipediaAPIURL  string `envconfig:"WIKIPEDIA_API_URL" default:"https://en.wikipedia.org/w/api.php"`
	WikipediaRESTURL string `envconfig:"WIKIPEDIA_REST_URL" default:"https://en.wikipedia.org/api/rest_v1"`
	WikimediaAPIURL  string `envconfig:"WIKIMEDIA_API_URL" default:"https://en.wikipedia.org/w/api.php"`
	GuardianBaseURL  string `envconfig:"GUARDIAN_BASE_URL" default:"https://content.guardianapis.com"`
	NYTBaseURL       string `envconfig:"NYT_BASE_URL" default:"https://api.nytimes.com/svc/search/v2"`
	PexelsBaseURL    string `envconfig:"PEXELS_BASE_URL" default:"https://api.pexels.com/v1"`
	UnsplashBaseURL  string `envconfig:"UNSPLASH_BASE_URL" default:"https://api.unsplash.com"`

	// Record-Store: "fs" schreibt nach ContentDir, "s3" in einen Bucket
	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"fs"`
	ContentDir     string `envconfig:"CONTENT_DIR" default:"site/content"`

	S3Key    string `envconfig:"S3_KEY"`
	S3Secret string `envconfig:"S3_SECRET"`
	S3URL    string `envconfig:"S3_URL"`
	S3Region string `envconfig:"S3_REGION"`
	S3Bucket string `envconfig:"S3_BUCKET"`
	S3Prefix string `envconfig:"S3_PREFIX"`
}

// Load lädt die Konfiguration aus den Umgebungsvariablen.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
