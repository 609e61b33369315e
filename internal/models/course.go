package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// CourseDocument is the root content entity returned by the content API for one locale.
type CourseDocument struct {
	ID          int64           `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Media       []MediaItem     `json:"media"`
	Checklist   []ChecklistItem `json:"checklist"`
	CtaText     CtaText         `json:"cta_text"`
	Sections    []Section       `json:"sections"`
	Seo         *SeoMeta        `json:"seo,omitempty"`
}

// Valid reports whether the document carries the identifying slug.
// Documents without it are treated as if the fetch had failed.
func (d *CourseDocument) Valid() bool {
	return d != nil && strings.TrimSpace(d.Slug) != ""
}

// UnmarshalJSON decodes a course document, accepting the API's habit of
// sending "seo": [] when no SEO fragment exists.
func (d *CourseDocument) UnmarshalJSON(b []byte) error {
	type alias CourseDocument
	aux := struct {
		*alias
		Seo json.RawMessage `json:"seo"`
	}{alias: (*alias)(d)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	seo, err := decodeSeo(aux.Seo)
	if err != nil {
		return fmt.Errorf("failed to decode seo: %w", err)
	}
	d.Seo = seo

	return nil
}

func decodeSeo(raw json.RawMessage) (*SeoMeta, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		// null, [] and scalars all mean no SEO fragment
		return nil, nil
	}

	var seo SeoMeta
	if err := json.Unmarshal(raw, &seo); err != nil {
		return nil, err
	}
	return &seo, nil
}

// MediaResourceType is the kind of a media resource.
type MediaResourceType string

const (
	MediaVideo MediaResourceType = "video"
	MediaImage MediaResourceType = "image"
)

// Media tags used by the page.
const (
	MediaNameThumbnail      = "thumbnail"
	MediaNamePreviewGallery = "preview_gallery"
)

// MediaItem is an image or video attached to the course.
// Name is a free-form tag and several items may share it.
type MediaItem struct {
	Name          string            `json:"name"`
	ResourceType  MediaResourceType `json:"resource_type"`
	ResourceValue string            `json:"resource_value"`
	ThumbnailURL  string            `json:"thumbnail_url,omitempty"`
}

// ChecklistItem is a line of the "what you get" list next to the call to action.
type ChecklistItem struct {
	ID                 FlexString `json:"id"`
	Icon               string     `json:"icon"`
	Text               string     `json:"text"`
	Color              string     `json:"color"`
	ListPageVisibility bool       `json:"list_page_visibility"`
}

// CtaText is the call to action label.
type CtaText struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// UnmarshalJSON accepts an object, a bare string (used as the name), null or an empty list.
func (c *CtaText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case '"':
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		*c = CtaText{Name: name}
		return nil
	case '{':
		type alias CtaText
		var v alias
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*c = CtaText(v)
		return nil
	default:
		*c = CtaText{}
		return nil
	}
}

// FlexString decodes a JSON string or number into a string.
// The content API is not consistent about the type of list item ids.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}

	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*s = FlexString(n.String())
	return nil
}

func (s FlexString) String() string {
	return string(s)
}
