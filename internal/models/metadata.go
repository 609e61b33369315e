package models

// PageMetadata is everything the page head needs.
type PageMetadata struct {
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Keywords       []string         `json:"keywords,omitempty"`
	OpenGraph      *OpenGraph       `json:"openGraph,omitempty"`
	StructuredData []StructuredData `json:"structuredData,omitempty"`
	// Fallback is set when the metadata is the fixed per-locale default.
	Fallback bool `json:"fallback"`
}

// OpenGraph holds the og:* tags. URL and Locale are empty when the source has none.
type OpenGraph struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url,omitempty"`
	Locale      string    `json:"locale,omitempty"`
	Images      []OGImage `json:"images,omitempty"`
}

type OGImage struct {
	URL string `json:"url"`
}

// StructuredData is one named structured data field, rendered as a script block.
type StructuredData struct {
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}
