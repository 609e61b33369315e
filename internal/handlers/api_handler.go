package handlers

import (
	"net/http"

	"github.com/coursepage/site/internal/locale"
	"github.com/coursepage/site/internal/metadata"
	"github.com/coursepage/site/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// APIHandler handles the JSON view of the content pipeline
type APIHandler struct {
	BaseHandler
	service  CourseService
	resolver *locale.Resolver
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(svc CourseService, resolver *locale.Resolver, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
		resolver:    resolver,
	}
}

// RegisterRoutes registers all API handler routes
func (h *APIHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Route("/v1", func(r chi.Router) {
			r.Get("/course", h.GetCourse)
		})
	})
}

// CourseResponse is the JSON view of one locale's course
type CourseResponse struct {
	Locale   models.Locale          `json:"locale"`
	Found    bool                   `json:"found"`
	Cache    string                 `json:"cache"`
	Document *models.CourseDocument `json:"document,omitempty"`
	Metadata models.PageMetadata    `json:"metadata"`
}

// GetCourse handles GET /api/v1/course
// @Summary Get the normalized course document
// @Description Get the course document, the derived page metadata and the cache state for a locale
// @Tags course
// @Produce json
// @Param lang query string false "Locale: en (English) or bn (Bengali), default: the default locale"
// @Success 200 {object} CourseResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} CourseResponse
// @Router /api/v1/course [get]
func (h *APIHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	loc := models.Locale(r.URL.Query().Get("lang"))
	if loc == "" {
		loc = h.resolver.Default()
	}
	if !loc.In(h.resolver.Locales()) {
		h.respondError(w, http.StatusBadRequest, "unsupported lang")
		return
	}

	state := h.service.CacheState(r.Context(), loc)
	lookup := h.service.FetchCourse(r.Context(), loc)

	resp := CourseResponse{
		Locale:   loc,
		Found:    lookup.Found(),
		Cache:    state.String(),
		Document: lookup.Document,
		Metadata: metadata.Derive(lookup.Document, loc),
	}

	status := http.StatusOK
	if !resp.Found {
		status = http.StatusServiceUnavailable
	}
	h.respondJSON(w, status, resp)
}

// Health handles GET /api/health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
