// Package metadata derives page head metadata from a course document.
package metadata

import (
	"fmt"
	"strings"

	"github.com/coursepage/site/internal/models"
)

type fallbackText struct {
	title       string
	description string
}

var fallbacks = map[models.Locale]fallbackText{
	models.LocaleEnglish: {title: "10 Minute School", description: "A learning platform."},
	models.LocaleBengali: {title: "১০ মিনিট স্কুল", description: "একটি লার্নিং প্ল্যাটফর্ম।"},
}

// Fallback returns the fixed metadata for a locale. Unknown locales get the English pair.
func Fallback(locale models.Locale) models.PageMetadata {
	f, ok := fallbacks[locale]
	if !ok {
		f = fallbacks[models.LocaleEnglish]
	}
	return models.PageMetadata{
		Title:       f.title,
		Description: f.description,
		Fallback:    true,
	}
}

// Derive projects doc into page metadata.
//
// A nil document, a document without seo, or seo with neither title nor
// description yields Fallback(locale) and nothing else. Derive performs no I/O
// and returns equal values for equal inputs.
func Derive(doc *models.CourseDocument, locale models.Locale) models.PageMetadata {
	seo, err := seoOf(doc)
	if err != nil {
		return Fallback(locale)
	}

	md := models.PageMetadata{
		Title:       seo.Title,
		Description: seo.Description,
		OpenGraph: &models.OpenGraph{
			Title:       firstMeta(seo.DefaultMeta, models.OGTitle, seo.Title),
			Description: firstMeta(seo.DefaultMeta, models.OGDescription, seo.Description),
			URL:         firstMeta(seo.DefaultMeta, models.OGURL, ""),
			Locale:      firstMeta(seo.DefaultMeta, models.OGLocale, ""),
			Images:      images(seo.DefaultMeta),
		},
		StructuredData: structuredData(seo.Schema),
	}
	if len(seo.Keywords) > 0 {
		md.Keywords = append([]string(nil), seo.Keywords...)
	}

	return md
}

// seoOf returns the usable seo fragment of doc or models.ErrSeoAbsent.
func seoOf(doc *models.CourseDocument) (*models.SeoMeta, error) {
	if doc == nil || doc.Seo == nil {
		return nil, models.ErrSeoAbsent
	}
	if strings.TrimSpace(doc.Seo.Title) == "" && strings.TrimSpace(doc.Seo.Description) == "" {
		return nil, fmt.Errorf("%w: blank title and description", models.ErrSeoAbsent)
	}
	return doc.Seo, nil
}

func firstMeta(tags []models.MetaTag, key, def string) string {
	for _, t := range tags {
		if t.Value == key {
			return t.Content
		}
	}
	return def
}

func images(tags []models.MetaTag) []models.OGImage {
	var out []models.OGImage
	for _, t := range tags {
		if t.Value == models.OGImageKey || t.Value == models.OGImageSecureURL {
			out = append(out, models.OGImage{URL: t.Content})
		}
	}
	return out
}

// structuredData keeps schema entries with a value. Each gets a distinct name:
// its meta_name the first time that name is seen, otherwise structured-data-<n>
// with n starting at the entry's position among kept entries.
func structuredData(schema []models.SchemaEntry) []models.StructuredData {
	var out []models.StructuredData
	used := make(map[string]bool)

	for _, s := range schema {
		if strings.TrimSpace(s.MetaValue) == "" {
			continue
		}

		name := strings.TrimSpace(s.MetaName)
		for n := len(out); name == "" || used[name]; n++ {
			name = fmt.Sprintf("structured-data-%d", n)
		}
		used[name] = true

		out = append(out, models.StructuredData{
			Name:  name,
			Type:  s.Type,
			Value: s.MetaValue,
		})
	}
	return out
}
