package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/coursepage/site/internal/models"
	"go.uber.org/zap"
)

// maxBodySize caps how much of a content API response is read.
const maxBodySize = 8 * 1024 * 1024 // 8MB

// HTTPError carries status and a body snippet for non-2xx responses.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, snippet(e.Body, 300))
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	// cut on a rune boundary
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max] + "…"
}

// ContentAPIOptions configures the content API client.
type ContentAPIOptions struct {
	// URL is the product endpoint; the locale is sent in the "lang" query parameter.
	URL            string
	PlatformHeader string
	Platform       string
	Timeout        time.Duration
}

type courseRepository struct {
	endpoint *url.URL
	opts     ContentAPIOptions
	client   *http.Client
	logger   *zap.Logger
}

// NewCourseRepository creates a content API backed course repository.
// client may be nil to use a client bounded by opts.Timeout.
func NewCourseRepository(opts ContentAPIOptions, client *http.Client, logger *zap.Logger) (*courseRepository, error) {
	endpoint, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid content api url: %w", err)
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, fmt.Errorf("invalid content api url %q: scheme and host are required", opts.URL)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	return &courseRepository{
		endpoint: endpoint,
		opts:     opts,
		client:   client,
		logger:   logger,
	}, nil
}

// envelope is the top level shape of a content API response.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Method GetCourse is a CourseRepository implementation issuing one GET to the content API.
//
// Transport failures, timeouts, non-2xx statuses and undecodable bodies are
// returned wrapped in models.ErrContentUnavailable. A decoded document
// without a slug is returned wrapped in models.ErrContentInvalid.
// There are no retries.
func (r *courseRepository) GetCourse(ctx context.Context, locale models.Locale) (*models.CourseDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	u := *r.endpoint
	q := u.Query()
	q.Set("lang", string(locale))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", models.ErrContentUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.opts.PlatformHeader != "" {
		req.Header.Set(r.opts.PlatformHeader, r.opts.Platform)
	}

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrContentUnavailable, err)
	}
	body, err := readAndClose(resp.Body)

	r.logger.Debug("content api response",
		zap.String("locale", string(locale)),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", time.Since(start)),
	)

	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", models.ErrContentUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		herr := &HTTPError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       body,
		}
		return nil, fmt.Errorf("%w: %w", models.ErrContentUnavailable, herr)
	}

	return decodeCourse(body)
}

func decodeCourse(body []byte) (*models.CourseDocument, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: json parse error: %v body=%s", models.ErrContentUnavailable, err, snippet(body, 300))
	}

	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || data[0] != '{' {
		// missing, null and [] are what the API sends for an unknown product
		return nil, fmt.Errorf("%w: response has no data object", models.ErrContentInvalid)
	}

	var doc models.CourseDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode course: %v", models.ErrContentUnavailable, err)
	}
	if !doc.Valid() {
		return nil, fmt.Errorf("%w: course has empty slug", models.ErrContentInvalid)
	}

	return &doc, nil
}

// readAndClose reads at most maxBodySize bytes and always closes the body.
func readAndClose(rc io.ReadCloser) ([]byte, error) {
	defer rc.Close()

	body, err := io.ReadAll(io.LimitReader(rc, maxBodySize+1))
	if err != nil {
		return body, err
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxBodySize)
	}
	return body, nil
}
