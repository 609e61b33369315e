package middleware

import (
	"net/http"

	"github.com/coursepage/site/internal/locale"
	"go.uber.org/zap"
)

// LocaleRedirectMiddleware sends every path without a supported locale prefix
// to the same path under the default locale. Assets and reserved routes pass through.
// The query string is kept and the redirect is temporary (307) so the method is preserved.
func LocaleRedirectMiddleware(resolver *locale.Resolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := resolver.ResolveURL(r.URL)
			if !decision.Redirect() {
				next.ServeHTTP(w, r)
				return
			}

			target := decision.Target
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}

			logger.Debug("locale redirect",
				zap.String("request_id", GetRequestID(r.Context())),
				zap.String("from", r.URL.Path),
				zap.String("to", target),
			)

			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
		})
	}
}
