// Package locale decides whether a request path needs a locale prefix.
package locale

import (
	"net/url"
	"path"
	"strings"

	"github.com/coursepage/site/internal/models"
)

// DefaultReservedPrefixes are never rewritten.
var DefaultReservedPrefixes = []string{"/api", "/images", "/static", "/swagger"}

// Decision is the outcome of resolving a request path.
// A zero Target means the request passes through untouched.
type Decision struct {
	Target string
}

// Redirect reports whether the request must be redirected to Target.
func (d Decision) Redirect() bool {
	return d.Target != ""
}

// Passthrough is the decision that leaves the path alone.
var Passthrough = Decision{}

// Resolver maps request paths onto locale-prefixed paths.
type Resolver struct {
	locales          []models.Locale
	defaultLocale    models.Locale
	reservedPrefixes []string
}

// NewResolver creates a resolver for the given locales.
// reserved may be nil to use DefaultReservedPrefixes.
func NewResolver(locales []models.Locale, defaultLocale models.Locale, reserved []string) *Resolver {
	if reserved == nil {
		reserved = DefaultReservedPrefixes
	}
	return &Resolver{
		locales:          locales,
		defaultLocale:    defaultLocale,
		reservedPrefixes: reserved,
	}
}

// Resolve returns Passthrough for static assets, reserved internal routes and
// paths that already carry a supported locale, and a redirect to the
// default-locale prefixed path otherwise.
//
// The root path maps to "/<default>" without a trailing slash; any other
// path keeps its trailing slash, so resolving a redirect target again is
// always Passthrough.
func (r *Resolver) Resolve(p string) Decision {
	if p == "" {
		p = "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	if isAsset(p) || r.isReserved(p) {
		return Passthrough
	}
	if _, ok := r.PathLocale(p); ok {
		return Passthrough
	}

	if p == "/" {
		return Decision{Target: "/" + string(r.defaultLocale)}
	}
	return Decision{Target: "/" + string(r.defaultLocale) + p}
}

// ResolveURL is Resolve for a request URL. The decision is taken on the
// decoded path and the redirect target keeps the original percent-encoding,
// so an encoded "?", "#" or "/" stays part of the path.
func (r *Resolver) ResolveURL(u *url.URL) Decision {
	d := r.Resolve(u.Path)
	if !d.Redirect() {
		return d
	}

	escaped := u.EscapedPath()
	if escaped == "" || escaped == "/" {
		return d
	}
	if !strings.HasPrefix(escaped, "/") {
		escaped = "/" + escaped
	}
	return Decision{Target: "/" + string(r.defaultLocale) + escaped}
}

// PathLocale returns the supported locale the path starts with.
func (r *Resolver) PathLocale(p string) (models.Locale, bool) {
	for _, l := range r.locales {
		prefix := "/" + string(l)
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return l, true
		}
	}
	return "", false
}

// Locales returns the supported locales.
func (r *Resolver) Locales() []models.Locale {
	return r.locales
}

// Default returns the default locale.
func (r *Resolver) Default() models.Locale {
	return r.defaultLocale
}

func (r *Resolver) isReserved(p string) bool {
	for _, prefix := range r.reservedPrefixes {
		prefix = strings.TrimSuffix(prefix, "/")
		if prefix == "" {
			continue
		}
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}

// isAsset reports whether the last path segment has a file extension.
func isAsset(p string) bool {
	last := path.Base(p)
	if last == "/" || last == "." {
		return false
	}
	return path.Ext(last) != ""
}

// SwitchPath rewrites a locale-prefixed path into the same path under another locale.
// Paths without the from prefix are returned as "/<to>".
func SwitchPath(p string, from, to models.Locale) string {
	prefix := "/" + string(from)
	switch {
	case p == prefix:
		return "/" + string(to)
	case strings.HasPrefix(p, prefix+"/"):
		return "/" + string(to) + strings.TrimPrefix(p, prefix)
	default:
		return "/" + string(to)
	}
}
