package models

// Image repräsentiert ein Titelbild samt Bildnachweis.
type Image struct {
	URL        string `json:"url" yaml:"url"`
	CreditText string `json:"credit_text" yaml:"credit_text"`
	CreditURL  string `json:"credit_url,omitempty" yaml:"credit_url,omitempty"`
}
