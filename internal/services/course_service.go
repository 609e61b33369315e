package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursepage/site/internal/cache"
	"github.com/coursepage/site/internal/models"
	"go.uber.org/zap"
)

// CourseRepository is the interface that wraps access to the content API
type CourseRepository interface {
	// Method GetCourse retrieve the course document for one locale.
	//
	// Failures are returned wrapped in models.ErrContentUnavailable (transport, status, decoding)
	// or models.ErrContentInvalid (document without a slug), together with "nil" value.
	GetCourse(ctx context.Context, locale models.Locale) (*models.CourseDocument, error)
}

// CourseCache is the revalidating cache the service reads through
type CourseCache interface {
	Get(ctx context.Context, key string, load cache.Loader[*models.CourseDocument]) (*models.CourseDocument, cache.State, error)
	State(ctx context.Context, key string) cache.State
}

type courseService struct {
	repo    CourseRepository
	cache   CourseCache
	locales []models.Locale
	logger  *zap.Logger
}

// NewCourseService creates a new course service
func NewCourseService(repo CourseRepository, cache CourseCache, locales []models.Locale, logger *zap.Logger) *courseService {
	return &courseService{
		repo:    repo,
		cache:   cache,
		locales: locales,
		logger:  logger,
	}
}

// FetchCourse resolves the course document for a locale.
//
// The result never carries an error to branch on: a missing document is reported
// by CourseLookup.Found, and Cause keeps the classified failure for logging.
// Unsupported locales are rejected before any network call.
// Successful documents are served from the cache for the revalidation window;
// failures are never cached.
func (s *courseService) FetchCourse(ctx context.Context, locale models.Locale) models.CourseLookup {
	if !locale.In(s.locales) {
		return models.CourseLookup{Cause: fmt.Errorf("%w: %q", models.ErrLocaleUnsupported, locale)}
	}

	doc, state, err := s.cache.Get(ctx, cacheKey(locale), func(ctx context.Context) (*models.CourseDocument, error) {
		doc, err := s.repo.GetCourse(ctx, locale)
		if err != nil {
			return nil, err
		}
		if !doc.Valid() {
			return nil, fmt.Errorf("%w: course has empty slug", models.ErrContentInvalid)
		}
		return doc, nil
	})
	if err != nil {
		s.logFailure(locale, err)
		return models.CourseLookup{Cause: err}
	}

	s.logger.Debug("course resolved",
		zap.String("locale", string(locale)),
		zap.String("cache", state.String()),
	)

	return models.CourseLookup{Document: doc}
}

// CacheState reports how the cache would currently serve a locale
func (s *courseService) CacheState(ctx context.Context, locale models.Locale) cache.State {
	return s.cache.State(ctx, cacheKey(locale))
}

func (s *courseService) logFailure(locale models.Locale, err error) {
	fields := []zap.Field{zap.String("locale", string(locale)), zap.Error(err)}

	switch {
	case errors.Is(err, models.ErrContentInvalid):
		s.logger.Warn("content api returned an invalid course", fields...)
	case errors.Is(err, context.Canceled):
		s.logger.Debug("course fetch cancelled", fields...)
	default:
		s.logger.Error("failed to fetch course", fields...)
	}
}

func cacheKey(locale models.Locale) string {
	return "course:" + string(locale)
}
