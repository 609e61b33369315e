package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SectionType is the discriminator of a Section.
type SectionType string

const (
	SectionInstructors         SectionType = "instructors"
	SectionFeatures            SectionType = "features"
	SectionPointers            SectionType = "pointers"
	SectionAbout               SectionType = "about"
	SectionFeatureExplanations SectionType = "feature_explanations"
	SectionTestimonials        SectionType = "testimonials"
	SectionFAQ                 SectionType = "faq"
	SectionGroupJoinEngagement SectionType = "group_join_engagement"
	SectionOffers              SectionType = "offers"
)

// Section is one tagged block of course content.
//
// Values holds a []V whose element type is fixed by Type through the Kind
// table below; unknown types hold []json.RawMessage. When the values of a
// known type cannot be decoded, Values is an empty []V and Invalid records
// why, so the section reads as absent without failing the whole document.
type Section struct {
	Type        SectionType `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	BgColor     string      `json:"bg_color"`
	OrderIdx    int         `json:"order_idx"`
	Values      any         `json:"values"`
	Invalid     error       `json:"-"`
}

func (s *Section) UnmarshalJSON(b []byte) error {
	var raw struct {
		Type        SectionType     `json:"type"`
		Name        string          `json:"name"`
		Description string          `json:"description"`
		BgColor     string          `json:"bg_color"`
		OrderIdx    int             `json:"order_idx"`
		Values      json.RawMessage `json:"values"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*s = Section{
		Type:        raw.Type,
		Name:        raw.Name,
		Description: raw.Description,
		BgColor:     raw.BgColor,
		OrderIdx:    raw.OrderIdx,
	}

	k, ok := kinds[raw.Type]
	if !ok {
		k = opaqueKind
	}

	values, err := k.decode(raw.Values)
	if err != nil {
		s.Invalid = fmt.Errorf("section %q values: %w", raw.Type, err)
	}
	s.Values = values

	return nil
}

// Len returns the number of values in the section.
func (s *Section) Len() int {
	if s == nil || s.Values == nil {
		return 0
	}
	if l, ok := s.Values.(interface{ count() int }); ok {
		return l.count()
	}
	return 0
}

// Kind binds a section discriminator to the element type of its values.
type Kind[V any] struct {
	Type SectionType
}

// valueList wraps []V so Section.Len works without reflection.
type valueList[V any] []V

func (l valueList[V]) count() int { return len(l) }

func (k Kind[V]) decode(raw json.RawMessage) (any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return valueList[V]{}, nil
	}

	var values []V
	if err := json.Unmarshal(raw, &values); err != nil {
		return valueList[V]{}, err
	}
	return valueList[V](values), nil
}

// ValuesOf returns the typed values of s when it is of kind k.
func ValuesOf[V any](s *Section, k Kind[V]) ([]V, bool) {
	if s == nil || s.Type != k.Type {
		return nil, false
	}
	values, ok := s.Values.(valueList[V])
	if !ok {
		return nil, false
	}
	return values, true
}

// NewSection builds a section of kind k holding values.
func NewSection[V any](k Kind[V], name string, values ...V) Section {
	if values == nil {
		values = []V{}
	}
	return Section{
		Type:   k.Type,
		Name:   name,
		Values: valueList[V](values),
	}
}

type valueDecoder interface {
	decode(json.RawMessage) (any, error)
}

var (
	KindInstructors         = Kind[Instructor]{Type: SectionInstructors}
	KindFeatures            = Kind[Feature]{Type: SectionFeatures}
	KindPointers            = Kind[Pointer]{Type: SectionPointers}
	KindAbout               = Kind[About]{Type: SectionAbout}
	KindFeatureExplanations = Kind[FeatureExplanation]{Type: SectionFeatureExplanations}
	KindTestimonials        = Kind[Testimonial]{Type: SectionTestimonials}
	KindFAQ                 = Kind[FAQ]{Type: SectionFAQ}
	KindGroupJoinEngagement = Kind[GroupJoinEngagement]{Type: SectionGroupJoinEngagement}
	KindOffers              = Kind[json.RawMessage]{Type: SectionOffers}
)

var opaqueKind = Kind[json.RawMessage]{}

var kinds = map[SectionType]valueDecoder{
	SectionInstructors:         KindInstructors,
	SectionFeatures:            KindFeatures,
	SectionPointers:            KindPointers,
	SectionAbout:               KindAbout,
	SectionFeatureExplanations: KindFeatureExplanations,
	SectionTestimonials:        KindTestimonials,
	SectionFAQ:                 KindFAQ,
	SectionGroupJoinEngagement: KindGroupJoinEngagement,
	SectionOffers:              KindOffers,
}

// Instructor is a value of an instructors section.
type Instructor struct {
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	Image             string `json:"image"`
	Description       string `json:"description"`
	ShortDescription  string `json:"short_description"`
	HasInstructorPage bool   `json:"has_instructor_page"`
}

// Feature is a value of a features section.
type Feature struct {
	ID       FlexString `json:"id"`
	Icon     string     `json:"icon"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
}

// Pointer is a value of a pointers section.
type Pointer struct {
	ID    FlexString `json:"id"`
	Icon  string     `json:"icon"`
	Color string     `json:"color"`
	Text  string     `json:"text"`
}

// About is a value of an about section. Title and Description hold HTML.
type About struct {
	ID          FlexString `json:"id"`
	Icon        string     `json:"icon"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
}

// FeatureExplanation is a value of a feature_explanations section.
type FeatureExplanation struct {
	ID             FlexString `json:"id"`
	Title          string     `json:"title"`
	Checklist      []string   `json:"checklist"`
	FileType       string     `json:"file_type"`
	FileURL        string     `json:"file_url"`
	VideoThumbnail string     `json:"video_thumbnail"`
}

// Testimonial is a value of a testimonials section.
type Testimonial struct {
	ID           FlexString `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Testimonial  string     `json:"testimonial"`
	ProfileImage string     `json:"profile_image"`
	Thumb        string     `json:"thumb"`
	VideoType    string     `json:"video_type"`
	VideoURL     string     `json:"video_url"`
}

// FAQ is a value of a faq section. Answer holds HTML.
type FAQ struct {
	ID       FlexString `json:"id"`
	Question string     `json:"question"`
	Answer   string     `json:"answer"`
}

// GroupJoinEngagement is a value of a group_join_engagement section.
type GroupJoinEngagement struct {
	ID               FlexString    `json:"id"`
	Title            string        `json:"title"`
	TitleColor       string        `json:"title_color"`
	Description      string        `json:"description"`
	DescriptionColor string        `json:"description_color"`
	Thumbnail        string        `json:"thumbnail"`
	TopLeftIconImg   string        `json:"top_left_icon_img"`
	Background       EngagementBg  `json:"background"`
	CTA              EngagementCTA `json:"cta"`
}

type EngagementBg struct {
	Image          string `json:"image"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

type EngagementCTA struct {
	Text       string `json:"text"`
	ClickedURL string `json:"clicked_url"`
	Color      string `json:"color"`
}
