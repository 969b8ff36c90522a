// Package i18n holds the bilingual (English/Hindi) text used by every surface
// of the dashboard and the rules for choosing which language to show.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is a display language code.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// Text is a string available in both display languages.
type Text struct {
	En string `json:"en"`
	Hi string `json:"hi"`
}

// In returns the text for lang. Missing Hindi text falls back to English.
func (t Text) In(lang Language) string {
	if lang == Hindi && t.Hi != "" {
		return t.Hi
	}
	return t.En
}

// Parse accepts "en"/"hi" as well as the language names.
func Parse(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english":
		return English, nil
	case "hi", "hindi", "हिंदी":
		return Hindi, nil
	}
	return "", fmt.Errorf("unsupported language %q (want en or hi)", s)
}

// Toggle returns the other language, like the header button does.
func (l Language) Toggle() Language {
	if l == Hindi {
		return English
	}
	return Hindi
}

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.Hindi,
})

// Negotiate picks the display language for a request. An explicit choice
// (query parameter or flag) wins when it parses; otherwise the
// Accept-Language header is matched against the supported languages.
func Negotiate(explicit, acceptLanguage string) Language {
	if explicit != "" {
		if l, err := Parse(explicit); err == nil {
			return l
		}
	}
	if acceptLanguage == "" {
		return English
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return English
	}
	if idx == 1 {
		return Hindi
	}
	return English
}
