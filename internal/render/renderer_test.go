package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/coursepage/site/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	r, err := NewRenderer(models.DefaultLocales, logger)
	require.NoError(t, err)
	return r
}

func testDocument() *models.CourseDocument {
	return &models.CourseDocument{
		Slug:        "ielts-course",
		Title:       "IELTS Course by Munzereen Shahid",
		Description: `<p>Get ready for IELTS</p><script>alert(1)</script>`,
		Media: []models.MediaItem{
			{Name: models.MediaNamePreviewGallery, ResourceType: models.MediaVideo, ResourceValue: "zrlYnaZftEQ"},
			{Name: models.MediaNameThumbnail, ResourceType: models.MediaImage, ResourceValue: "https://cdn.example.com/thumb.jpg"},
		},
		Checklist: []models.ChecklistItem{{ID: "1", Icon: "https://cdn.example.com/i.png", Text: "Total enrolled 32995"}},
		CtaText:   models.CtaText{Name: "Enroll", Value: "enroll"},
		Sections: []models.Section{
			models.NewSection(models.KindInstructors, "Course instructor", models.Instructor{Name: "Munzereen Shahid", Slug: "munzereen-shahid", HasInstructorPage: true}),
			models.NewSection(models.KindFAQ, "Frequently asked questions", models.FAQ{Question: "How do I pay?", Answer: "<p>bKash</p>"}),
			models.NewSection(models.KindFAQ, "Ignored FAQ", models.FAQ{Question: "Duplicate?"}),
			models.NewSection[models.Pointer](models.KindPointers, "Empty pointers"),
		},
	}
}

func render(t *testing.T, r *Renderer, p Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, p))
	return buf.String()
}

func TestRenderer_Page_Sections(t *testing.T) {
	r := newTestRenderer(t)
	doc := testDocument()

	html := render(t, r, Page{
		Locale:   models.LocaleEnglish,
		Path:     "/en",
		Document: doc,
		Metadata: models.PageMetadata{Title: "IELTS", Description: "Prepare"},
	})

	assert.Contains(t, html, `<html lang="en">`)
	assert.Contains(t, html, "IELTS Course by Munzereen Shahid")
	assert.Contains(t, html, "<p>Get ready for IELTS</p>")
	assert.NotContains(t, html, "alert(1)")
	assert.Contains(t, html, "https://img.youtube.com/vi/zrlYnaZftEQ/maxresdefault.jpg")
	assert.Contains(t, html, "Total enrolled 32995")
	assert.Contains(t, html, "What you get in this course")

	assert.Contains(t, html, "Munzereen Shahid")
	assert.Contains(t, html, "How do I pay?")
	assert.Contains(t, html, "<p>bKash</p>")
	assert.NotContains(t, html, "Duplicate?")
	assert.NotContains(t, html, "Failed to load course data.")
}

func TestRenderer_Page_Placeholders(t *testing.T) {
	r := newTestRenderer(t)

	html := render(t, r, Page{
		Locale:   models.LocaleEnglish,
		Path:     "/en",
		Document: testDocument(),
	})

	for _, placeholder := range []string{
		"No course features information available.",
		"No download information available.",
		"No key points information available.",
		"No exclusive features information available.",
		"No testimonials information available.",
	} {
		assert.Contains(t, html, placeholder)
	}
	assert.Contains(t, html, "About Course")
	assert.NotContains(t, html, "No FAQ information available.")
	assert.NotContains(t, html, "No instructor information available for this course.")
}

func TestRenderer_Page_FixedOrder(t *testing.T) {
	r := newTestRenderer(t)
	doc := testDocument()
	// reversed order_idx must not change the page order
	for i := range doc.Sections {
		doc.Sections[i].OrderIdx = len(doc.Sections) - i
	}

	html := render(t, r, Page{Locale: models.LocaleEnglish, Path: "/en", Document: doc})

	header := strings.Index(html, "course-header")
	instructors := strings.Index(html, `class="instructors"`)
	faq := strings.Index(html, `class="faq"`)
	require.True(t, header >= 0 && instructors >= 0 && faq >= 0)
	assert.Less(t, header, instructors)
	assert.Less(t, instructors, faq)
}

func TestRenderer_Page_Fallback(t *testing.T) {
	r := newTestRenderer(t)

	html := render(t, r, Page{
		Locale:   models.LocaleBengali,
		Path:     "/bn",
		Metadata: models.PageMetadata{Title: "১০ মিনিট স্কুল", Description: "একটি লার্নিং প্ল্যাটফর্ম।", Fallback: true},
	})

	assert.Contains(t, html, "Failed to load course data.")
	assert.Contains(t, html, "<title>১০ মিনিট স্কুল</title>")
	assert.Contains(t, html, "লগ-ইন")
	assert.NotContains(t, html, "information available")
}

func TestRenderer_Page_Navbar(t *testing.T) {
	r := newTestRenderer(t)

	tests := []struct {
		name       string
		locale     models.Locale
		path       string
		doc        *models.CourseDocument
		wantSwitch string
		wantLabel  string
		wantCta    string
	}{
		{
			name:       "bn with api cta",
			locale:     models.LocaleBengali,
			path:       "/bn",
			doc:        testDocument(),
			wantSwitch: `href="/en"`,
			wantLabel:  "English",
			wantCta:    "Enroll",
		},
		{
			name:       "en keeps the rest of the path",
			locale:     models.LocaleEnglish,
			path:       "/en/",
			doc:        &models.CourseDocument{Slug: "ielts-course"},
			wantSwitch: `href="/bn/"`,
			wantLabel:  "বাংলা",
			wantCta:    "Login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, r, Page{Locale: tt.locale, Path: tt.path, Document: tt.doc})

			assert.Contains(t, html, tt.wantSwitch)
			assert.Contains(t, html, tt.wantLabel)
			assert.Contains(t, html, tt.wantCta)
		})
	}
}

func TestRenderer_Page_Head(t *testing.T) {
	r := newTestRenderer(t)

	html := render(t, r, Page{
		Locale:   models.LocaleEnglish,
		Path:     "/en",
		Document: testDocument(),
		Metadata: models.PageMetadata{
			Title:       "IELTS Course | 10 Minute School",
			Description: "Prepare for IELTS",
			Keywords:    []string{"ielts", "english"},
			OpenGraph: &models.OpenGraph{
				Title:  "OG title",
				URL:    "https://10minuteschool.com/product/ielts-course",
				Images: []models.OGImage{{URL: "https://cdn.example.com/og.jpg"}},
			},
			StructuredData: []models.StructuredData{
				{Name: "ld-json", Type: "ld-json", Value: `{"@type":"Product","name":"</script><b>x"}`},
			},
		},
	})

	assert.Contains(t, html, "<title>IELTS Course | 10 Minute School</title>")
	assert.Contains(t, html, `<meta name="description" content="Prepare for IELTS">`)
	assert.Contains(t, html, `<meta name="keywords" content="ielts, english">`)
	assert.Contains(t, html, `<meta property="og:title" content="OG title">`)
	assert.Contains(t, html, `<meta property="og:url" content="https://10minuteschool.com/product/ielts-course">`)
	assert.Contains(t, html, `<meta property="og:image" content="https://cdn.example.com/og.jpg">`)
	assert.NotContains(t, html, `og:locale`)
	assert.Contains(t, html, `<script type="application/ld+json" id="ld-json">`)
	assert.Contains(t, html, `<\/script><b>x`)
	assert.Equal(t, 1, strings.Count(html, "</script>"))
}

func TestRenderer_NotFound(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.NotFound(&buf, models.LocaleBengali, "/bn/unknown"))
	html := buf.String()

	assert.Contains(t, html, "404")
	assert.Contains(t, html, "পেজটি পাওয়া যায়নি")
	assert.Contains(t, html, `href="/bn"`)
	assert.Contains(t, html, `href="/en/unknown"`)
}

func TestJSONLD(t *testing.T) {
	assert.Equal(t, `{"a":1}`, string(jsonLD(` {"a":1} `)))
	assert.Equal(t, `"not json"`, string(jsonLD("not json")))
	assert.Equal(t, `"<\/script>"`, string(jsonLD(`"</script>"`)))
}

func TestMediaSrc(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/t.jpg", mediaSrc(models.MediaItem{ResourceType: models.MediaVideo, ResourceValue: "abc", ThumbnailURL: "https://cdn.example.com/t.jpg"}))
	assert.Equal(t, "https://img.youtube.com/vi/abc/maxresdefault.jpg", mediaSrc(models.MediaItem{ResourceType: models.MediaVideo, ResourceValue: "abc"}))
	assert.Equal(t, "https://cdn.example.com/i.jpg", mediaSrc(models.MediaItem{ResourceType: models.MediaImage, ResourceValue: "https://cdn.example.com/i.jpg"}))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", languageName(models.LocaleEnglish))
	assert.Equal(t, "বাংলা", languageName(models.LocaleBengali))
}
