// Package render turns a course document and its metadata into the HTML page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/coursepage/site/internal/locale"
	"github.com/coursepage/site/internal/models"
	"github.com/coursepage/site/internal/sections"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is everything needed to render the course page for one request.
type Page struct {
	Locale models.Locale
	// Path is the request path, used to build the language switch link.
	Path     string
	Document *models.CourseDocument
	Metadata models.PageMetadata
}

// Renderer renders pages from the embedded templates.
type Renderer struct {
	tmpl    *template.Template
	locales []models.Locale
	slots   []slot
	logger  *zap.Logger
}

// NewRenderer parses the embedded templates.
// locales are the targets offered by the language switch.
func NewRenderer(locales []models.Locale, logger *zap.Logger) (*Renderer, error) {
	rt := newRichText()
	tmpl, err := template.New("").Funcs(rt.funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{
		tmpl:    tmpl,
		locales: locales,
		slots:   bodySlots,
		logger:  logger,
	}, nil
}

type navView struct {
	Locale   models.Locale
	Home     string
	Links    []navLink
	Search   string
	CtaText  string
	Switches []switchView
	Text     text
}

type switchView struct {
	Href  string
	Label string
	Lang  string
}

type pageView struct {
	Lang     string
	Meta     models.PageMetadata
	Nav      navView
	Text     text
	Fallback bool
	Body     []template.HTML
}

// Page writes the full course page. When p.Document is nil the body is
// replaced by the fallback message while the head and navigation still render.
func (r *Renderer) Page(w io.Writer, p Page) error {
	view := pageView{
		Lang: htmlLang(p.Locale),
		Meta: p.Metadata,
		Nav:  r.nav(p.Locale, p.Path, p.Document),
		Text: textFor(p.Locale),
	}

	if p.Document == nil {
		view.Fallback = true
	} else {
		body, err := r.body(p.Document, view.Text)
		if err != nil {
			return err
		}
		view.Body = body
	}

	return r.tmpl.ExecuteTemplate(w, "page", view)
}

// NotFound writes the localized 404 page.
func (r *Renderer) NotFound(w io.Writer, loc models.Locale, path string) error {
	t := textFor(loc)
	view := pageView{
		Lang: htmlLang(loc),
		Meta: models.PageMetadata{Title: t.NotFoundTitle},
		Nav:  r.nav(loc, path, nil),
		Text: t,
	}
	return r.tmpl.ExecuteTemplate(w, "not_found", view)
}

func (r *Renderer) nav(loc models.Locale, path string, doc *models.CourseDocument) navView {
	t := textFor(loc)
	v := navView{
		Locale:  loc,
		Home:    "/" + string(loc),
		Links:   t.Nav,
		Search:  t.SearchPlaceholder,
		CtaText: t.Login,
		Text:    t,
	}
	if doc != nil && doc.CtaText.Name != "" {
		v.CtaText = doc.CtaText.Name
	}

	for _, other := range r.locales {
		if other == loc {
			continue
		}
		v.Switches = append(v.Switches, switchView{
			Href:  locale.SwitchPath(path, loc, other),
			Label: languageName(other),
			Lang:  htmlLang(other),
		})
	}
	return v
}

// body renders every slot in order, each either as its section or as its placeholder.
func (r *Renderer) body(doc *models.CourseDocument, t text) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(r.slots))
	var buf bytes.Buffer

	for _, s := range r.slots {
		buf.Reset()

		data, err := s.find(doc)
		if err != nil {
			r.logger.Debug("section not rendered",
				zap.String("slot", s.template),
				zap.Error(err),
			)
			err = r.tmpl.ExecuteTemplate(&buf, "placeholder", s.placeholder)
		} else {
			err = r.tmpl.ExecuteTemplate(&buf, s.template, slotView{Data: data, Text: t})
		}
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", s.template, err)
		}

		out = append(out, template.HTML(buf.String()))
	}
	return out, nil
}

// slotView is the data passed to a section template.
type slotView struct {
	Data any
	Text text
}

// slot is one position of the page body.
type slot struct {
	template    string
	placeholder string
	find        func(doc *models.CourseDocument) (any, error)
}

// sectionSlot binds a section kind to the template that renders it.
func sectionSlot[V any](tmpl string, k models.Kind[V], placeholder string) slot {
	return slot{
		template:    tmpl,
		placeholder: placeholder,
		find: func(doc *models.CourseDocument) (any, error) {
			return sections.Lookup(doc.Sections, k)
		},
	}
}

type headerView struct {
	Title       string
	Description string
	Thumbnail   *models.MediaItem
	Gallery     []models.MediaItem
	Checklist   []models.ChecklistItem
	CtaText     string
}

var headerSlot = slot{
	template:    "header",
	placeholder: "No course information available.",
	find: func(doc *models.CourseDocument) (any, error) {
		h := headerView{
			Title:       doc.Title,
			Description: doc.Description,
			Gallery:     sections.Media(doc, models.MediaNamePreviewGallery),
			Checklist:   sections.VisibleChecklist(doc),
			CtaText:     doc.CtaText.Name,
		}
		if m, ok := sections.FirstMedia(doc, models.MediaNameThumbnail); ok {
			h.Thumbnail = &m
		}
		return h, nil
	},
}

// bodySlots is the fixed page order. It does not follow order_idx.
var bodySlots = []slot{
	headerSlot,
	sectionSlot("instructors", models.KindInstructors, "No instructor information available for this course."),
	sectionSlot("features", models.KindFeatures, "No course features information available."),
	sectionSlot("group_join_engagement", models.KindGroupJoinEngagement, "No download information available."),
	sectionSlot("pointers", models.KindPointers, "No key points information available."),
	sectionSlot("feature_explanations", models.KindFeatureExplanations, "No exclusive features information available."),
	sectionSlot("about", models.KindAbout, `No "About Course" information available.`),
	sectionSlot("testimonials", models.KindTestimonials, "No testimonials information available."),
	sectionSlot("faq", models.KindFAQ, "No FAQ information available."),
}
