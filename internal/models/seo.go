package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Open Graph keys looked up in SeoMeta.DefaultMeta.
const (
	OGTitle          = "og:title"
	OGDescription    = "og:description"
	OGURL            = "og:url"
	OGLocale         = "og:locale"
	OGImageKey       = "og:image"
	OGImageSecureURL = "og:image:secure_url"
)

// SeoMeta is the optional SEO fragment of a course document.
//
// DefaultMeta is a list and not a map: the API repeats keys and consumers
// take the first match.
type SeoMeta struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Keywords    Keywords      `json:"keywords"`
	DefaultMeta []MetaTag     `json:"defaultMeta"`
	Schema      []SchemaEntry `json:"schema"`
}

// MetaTag is one {value, content} pair, value being the tag key such as "og:title".
type MetaTag struct {
	Value   string `json:"value"`
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`
}

// SchemaEntry is a structured data block, usually JSON-LD.
type SchemaEntry struct {
	MetaName  string `json:"meta_name"`
	MetaValue string `json:"meta_value"`
	Type      string `json:"type"`
}

// Keywords decodes either a list of strings or a single comma separated string.
type Keywords []string

func (k *Keywords) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*k = nil
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		var out Keywords
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		*k = out
		return nil
	}

	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*k = list
	return nil
}
