package models

import "errors"

// Failure kinds of the content pipeline. None of them reach rendering code as
// errors: the fetcher, the section finder and the metadata deriver turn them
// into absence and keep the cause for logging only.
var (
	ErrLocaleUnsupported  = errors.New("locale not supported")
	ErrContentUnavailable = errors.New("content unavailable")
	ErrContentInvalid     = errors.New("content invalid")
	ErrSectionAbsent      = errors.New("section absent")
	ErrSeoAbsent          = errors.New("seo metadata absent")
)

// CourseLookup is the outcome of resolving the course document for a locale.
//
// Callers branch on Found only. Cause is set when Document is nil and exists
// so the failure can be logged with its classification.
type CourseLookup struct {
	Document *CourseDocument
	Cause    error
}

// Found reports whether a valid document was resolved.
func (l CourseLookup) Found() bool {
	return l.Document != nil
}
