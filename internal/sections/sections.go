// Package sections looks up typed content sections and media in a course document.
//
// Lookups never fail: a section that is missing, empty or undecodable is simply absent,
// and callers render a placeholder for it.
package sections

import (
	"fmt"

	"github.com/coursepage/site/internal/models"
)

// Typed is a section whose values are known to be of type V.
type Typed[V any] struct {
	Type        models.SectionType
	Name        string
	Description string
	BgColor     string
	OrderIdx    int
	Values      []V
}

// First returns the first value. Callers check presence with Find before.
func (t Typed[V]) First() V {
	return t.Values[0]
}

// Find returns the first section of kind k when it has at least one value.
//
// Only the first section of a type is considered: a later duplicate never
// replaces an empty or broken first one.
func Find[V any](secs []models.Section, k models.Kind[V]) (Typed[V], bool) {
	t, err := Lookup(secs, k)
	return t, err == nil
}

// Lookup is Find with the reason for absence, for logging.
func Lookup[V any](secs []models.Section, k models.Kind[V]) (Typed[V], error) {
	for i := range secs {
		s := &secs[i]
		if s.Type != k.Type {
			continue
		}
		if s.Invalid != nil {
			return Typed[V]{}, fmt.Errorf("%w: %w", models.ErrSectionAbsent, s.Invalid)
		}
		values, ok := models.ValuesOf(s, k)
		if !ok || len(values) == 0 {
			return Typed[V]{}, fmt.Errorf("%w: %s has no values", models.ErrSectionAbsent, k.Type)
		}
		return Typed[V]{
			Type:        s.Type,
			Name:        s.Name,
			Description: s.Description,
			BgColor:     s.BgColor,
			OrderIdx:    s.OrderIdx,
			Values:      values,
		}, nil
	}
	return Typed[V]{}, fmt.Errorf("%w: no %s section", models.ErrSectionAbsent, k.Type)
}

// Media returns the media items tagged with name, in document order.
func Media(doc *models.CourseDocument, name string) []models.MediaItem {
	if doc == nil {
		return nil
	}
	var out []models.MediaItem
	for _, m := range doc.Media {
		if m.Name == name {
			out = append(out, m)
		}
	}
	return out
}

// FirstMedia returns the first media item tagged with name.
func FirstMedia(doc *models.CourseDocument, name string) (models.MediaItem, bool) {
	items := Media(doc, name)
	if len(items) == 0 {
		return models.MediaItem{}, false
	}
	return items[0], true
}

// VisibleChecklist returns the checklist items that are not empty.
func VisibleChecklist(doc *models.CourseDocument) []models.ChecklistItem {
	if doc == nil {
		return nil
	}
	out := make([]models.ChecklistItem, 0, len(doc.Checklist))
	for _, c := range doc.Checklist {
		if c.Text != "" {
			out = append(out, c)
		}
	}
	return out
}
