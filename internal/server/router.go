// Package server assembles the HTTP router from the handlers and the middleware chain.
package server

import (
	"net/http"
	"time"

	_ "github.com/coursepage/site/docs"
	"github.com/coursepage/site/internal/handlers"
	"github.com/coursepage/site/internal/locale"
	"github.com/coursepage/site/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Options configures NewRouter.
type Options struct {
	Pages    *handlers.PageHandler
	API      *handlers.APIHandler
	Resolver *locale.Resolver
	Logger   *zap.Logger

	AllowedOrigins []string
	// RequestsPerMinute is the per-IP rate limit; zero disables it.
	RequestsPerMinute int
	// StaticDir serves /images/* and /static/* when set.
	StaticDir string
}

// NewRouter builds the router.
//
// The locale redirect runs after logging and recovery so redirects show up in
// the access log, and before routing so every unprefixed path is redirected.
func NewRouter(opts Options) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(opts.Logger))
	r.Use(middleware.RecoveryMiddleware(opts.Logger))
	if opts.RequestsPerMinute > 0 {
		r.Use(httprate.LimitByIP(opts.RequestsPerMinute, time.Minute))
	}
	r.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	r.Use(middleware.LocaleRedirectMiddleware(opts.Resolver, opts.Logger))

	r.Group(func(r chi.Router) {
		r.Use(middleware.CORSMiddleware(opts.AllowedOrigins))
		opts.API.RegisterRoutes(r)
	})

	// Swagger documentation for the JSON API
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if opts.StaticDir != "" {
		files := http.FileServer(http.Dir(opts.StaticDir))
		r.Handle("/images/*", files)
		r.Handle("/static/*", files)
	}

	opts.Pages.RegisterRoutes(r)
	r.NotFound(opts.Pages.NotFound)

	return r
}
