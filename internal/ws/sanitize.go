package ws

import (
	"regexp"
	"strings"
)

var (
	scriptRe = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	tagRe    = regexp.MustCompile(`<[^>]*>`)
)

// SanitizeContent вырезает из текста сообщения разметку и скрипты.
// Сообщение, опустевшее после очистки, считается невалидным.
func SanitizeContent(content string) string {
	content = scriptRe.ReplaceAllString(content, "")
	content = tagRe.ReplaceAllString(content, "")
	return strings.TrimSpace(content)
}
