package middleware

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
)

// writeError answers with JSON under /api and with a minimal HTML page elsewhere.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, "<!DOCTYPE html><html><head><title>%d</title></head><body><h1>%s</h1></body></html>",
		status, html.EscapeString(message))
}
