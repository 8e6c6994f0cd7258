package entity

import (
	"regexp"
	"strings"
)

// Language represents the two sides of a study card using ISO-style codes.
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeTopicAnswer lowercases and trims s and collapses whitespace runs
// into a single space, so "Good  Morning " matches "good morning".
func NormalizeTopicAnswer(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

// NormalizeTopicName is the lookup key for a topic name.
func NormalizeTopicName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
