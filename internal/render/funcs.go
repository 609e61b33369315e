package render

import (
	"encoding/json"
	"html/template"
	"net/url"
	"strings"

	"github.com/coursepage/site/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

// richText turns HTML fragments from the content API into markup that is safe
// to embed in the page.
type richText struct {
	policy *bluemonday.Policy
}

func newRichText() *richText {
	p := bluemonday.UGCPolicy()
	p.AllowStyles("color", "background-color", "text-align").Globally()
	return &richText{policy: p}
}

func (r *richText) HTML(s string) template.HTML {
	return template.HTML(r.policy.Sanitize(s))
}

func (r *richText) funcs() template.FuncMap {
	return template.FuncMap{
		"richText": r.HTML,
		"mediaSrc": mediaSrc,
		"youtube":  youtubeURL,
		"jsonLD":   jsonLD,
		"join":     strings.Join,
	}
}

// mediaSrc returns the image shown for a media item: the thumbnail of a video,
// falling back to the YouTube poster frame, or the image itself.
func mediaSrc(m models.MediaItem) string {
	if m.ResourceType == models.MediaVideo {
		if m.ThumbnailURL != "" {
			return m.ThumbnailURL
		}
		return "https://img.youtube.com/vi/" + url.PathEscape(m.ResourceValue) + "/maxresdefault.jpg"
	}
	return m.ResourceValue
}

// youtubeURL accepts a video id or a full URL.
func youtubeURL(v string) string {
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(v)
}

// jsonLD prepares a structured data value for a script block.
// Values that are not JSON are emitted as a JSON string.
func jsonLD(v string) template.JS {
	v = strings.TrimSpace(v)
	if !json.Valid([]byte(v)) {
		b, _ := json.Marshal(v)
		v = string(b)
	}
	return template.JS(strings.ReplaceAll(v, "</", `<\/`))
}
