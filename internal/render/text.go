package render

import (
	"github.com/coursepage/site/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// siteURL is the main site the navigation links point to.
const siteURL = "https://10minuteschool.com"

// navLink is a static navigation entry.
type navLink struct {
	Href  string
	Label string
}

// text holds the interface strings that do not come from the content API.
type text struct {
	Login             string
	SearchPlaceholder string
	ChecklistHeading  string
	CoursePreview     string
	WatchVideo        string
	FailedToLoad      string
	NotFoundTitle     string
	NotFoundBody      string
	HomeLink          string
	Nav               []navLink
}

var texts = map[models.Locale]text{
	models.LocaleEnglish: {
		Login:             "Login",
		SearchPlaceholder: "Search for skills, courses, or programs...",
		ChecklistHeading:  "What you get in this course",
		CoursePreview:     "Course preview",
		WatchVideo:        "Watch video",
		FailedToLoad:      "Failed to load course data.",
		NotFoundTitle:     "Page Not Found",
		NotFoundBody:      "Oops! The page you are looking for does not exist. It might have been moved or deleted.",
		HomeLink:          "Go Back to Homepage",
		Nav: []navLink{
			{Href: siteURL + "/academic/", Label: "Class 6-12"},
			{Href: siteURL + "/skills/", Label: "Skills"},
			{Href: siteURL + "/admission/", Label: "Admission Test"},
			{Href: siteURL + "/online-batch/", Label: "Online Batch"},
			{Href: siteURL + "/english-centre/", Label: "English Center"},
		},
	},
	models.LocaleBengali: {
		Login:             "লগ-ইন",
		SearchPlaceholder: "স্কিলস কোর্স, কিংবা স্কুল প্রোগ্রাম সার্চ করুন...",
		ChecklistHeading:  "এই কোর্সে যা থাকছে",
		CoursePreview:     "কোর্স প্রিভিউ",
		WatchVideo:        "ভিডিও দেখুন",
		FailedToLoad:      "Failed to load course data.",
		NotFoundTitle:     "পেজটি পাওয়া যায়নি",
		NotFoundBody:      "দুঃখিত! আপনি যে পেজটি খুঁজছেন সেটি নেই। হয়তো সরিয়ে ফেলা হয়েছে।",
		HomeLink:          "হোমপেজে ফিরে যান",
		Nav: []navLink{
			{Href: siteURL + "/academic/", Label: "ক্লাস ৬-১২"},
			{Href: siteURL + "/skills/", Label: "স্কিলস"},
			{Href: siteURL + "/admission/", Label: "ভর্তি পরীক্ষা"},
			{Href: siteURL + "/online-batch/", Label: "অনলাইন ব্যাচ"},
			{Href: siteURL + "/english-centre/", Label: "ইংলিশ সেন্টার"},
		},
	},
}

func textFor(locale models.Locale) text {
	if t, ok := texts[locale]; ok {
		return t
	}
	return texts[models.LocaleEnglish]
}

// languageName returns the name of a locale in its own language, e.g. "বাংলা" for bn.
func languageName(locale models.Locale) string {
	tag, err := language.Parse(string(locale))
	if err != nil {
		return string(locale)
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return string(locale)
}

// htmlLang returns the canonical BCP 47 form of a locale for the lang attribute.
func htmlLang(locale models.Locale) string {
	tag, err := language.Parse(string(locale))
	if err != nil {
		return string(locale)
	}
	return tag.String()
}
