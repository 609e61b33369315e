package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/coursepage/site/internal/cache"
	"github.com/coursepage/site/internal/locale"
	"github.com/coursepage/site/internal/metadata"
	"github.com/coursepage/site/internal/models"
	"github.com/coursepage/site/internal/render"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps the Content Fetcher.
type CourseService interface {
	// Method FetchCourse resolve the course document for a locale.
	//
	// The result is either a document or an absence with its cause; it never fails the request.
	FetchCourse(ctx context.Context, locale models.Locale) models.CourseLookup
	// Method CacheState report how the cache would currently serve a locale.
	CacheState(ctx context.Context, locale models.Locale) cache.State
}

// PageRenderer is the interface that wraps HTML page rendering.
type PageRenderer interface {
	Page(w io.Writer, p render.Page) error
	NotFound(w io.Writer, loc models.Locale, path string) error
}

// PageHandler handles HTTP requests for the localized course page
type PageHandler struct {
	BaseHandler
	service  CourseService
	renderer PageRenderer
	resolver *locale.Resolver
}

// NewPageHandler creates a new page handler
func NewPageHandler(svc CourseService, renderer PageRenderer, resolver *locale.Resolver, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
		renderer:    renderer,
		resolver:    resolver,
	}
}

// RegisterRoutes registers the page routes
func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/{locale}", h.GetPage)
	r.Get("/{locale}/*", h.GetNested)
}

// GetPage handles GET /{locale}
//
// An unknown locale segment is a 404. A locale whose document cannot be
// resolved gets the page with the fallback body and fallback metadata, status 503.
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	loc := models.Locale(chi.URLParam(r, "locale"))
	if !loc.In(h.resolver.Locales()) {
		h.NotFound(w, r)
		return
	}

	lookup := h.service.FetchCourse(r.Context(), loc)

	status := http.StatusOK
	if !lookup.Found() {
		status = http.StatusServiceUnavailable
	}

	page := render.Page{
		Locale:   loc,
		Path:     r.URL.Path,
		Document: lookup.Document,
		Metadata: metadata.Derive(lookup.Document, loc),
	}
	h.respondHTML(w, status, func(w io.Writer) error {
		return h.renderer.Page(w, page)
	})
}

// GetNested handles GET /{locale}/*
//
// "/<locale>/" is the page itself; anything deeper is not a page of this site.
func (h *PageHandler) GetNested(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "*") == "" {
		h.GetPage(w, r)
		return
	}
	h.NotFound(w, r)
}

// NotFound renders the 404 page in the locale of the path, or the default locale
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.resolver.PathLocale(r.URL.Path)
	if !ok {
		loc = h.resolver.Default()
	}

	h.respondHTML(w, http.StatusNotFound, func(w io.Writer) error {
		return h.renderer.NotFound(w, loc, r.URL.Path)
	})
}
