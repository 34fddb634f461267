// ABOUTME: Translation result domain model
// ABOUTME: Holds the provider's detected source language and translated text

package domain

import "strings"

// Translation is a translated profile description
type Translation struct {
	// SourceLang is the language the provider detected, e.g. "DE"
	SourceLang string `json:"sourceLang"`

	// Text is the translated description
	Text string `json:"text"`
}

// NormalizeTargetLang drops any region or script subtag: "en-US" becomes "en".
func NormalizeTargetLang(tag string) string {
	lang, _, _ := strings.Cut(tag, "-")
	return lang
}
