package templates

import (
	"net/url"
	"strings"

	admini18n "github.com/tidemarkhq/tidemark/internal/services/admin/i18n"
	"golang.org/x/text/language"
)

// LanguageOption represents a supported language option in the admin UI.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext, loc Localizer) []LanguageOption {
	supported := admini18n.Supported()
	activeTag := normalizeTag(page.Lang)
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		label := strings.TrimSpace(languageLabel(loc, tag))
		if label == "" {
			label = tag.String()
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  label,
			Active: tag == activeTag,
		})
	}
	return options
}

// ActiveLanguageLabel returns the label for the active language selection.
func ActiveLanguageLabel(page PageContext, loc Localizer) string {
	options := LanguageOptions(page, loc)
	for _, option := range options {
		if option.Active {
			return option.Label
		}
	}
	if len(options) == 0 {
		return ""
	}
	return options[0].Label
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	path := strings.TrimSpace(page.CurrentPath)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(page.CurrentQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(admini18n.LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// languageLabel maps a language tag to a localized display label.
func languageLabel(loc Localizer, tag language.Tag) string {
	switch tag.String() {
	case "pt-BR":
		return T(loc, "nav.lang_pt_br")
	default:
		return T(loc, "nav.lang_en")
	}
}

// normalizeTag coerces unknown tags to the default supported language.
func normalizeTag(value string) language.Tag {
	parsed, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return admini18n.Default()
	}
	for _, tag := range admini18n.Supported() {
		if tag.String() == parsed.String() {
			return tag
		}
	}
	return admini18n.Default()
}
