package ai

import (
	"regexp"
	"strings"
)

var listMarker = regexp.MustCompile(`^\s*(?:[-–—•*·]|\(?\d+[.)]|[.)])\s*`)

const edgeQuotes = "«»\"“”‘’'"

// splitCandidates режет ответ модели на строки-кандидаты:
// без маркеров списка, '#', кавычек по краям, ровно одна точка в конце.
func splitCandidates(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		l := strings.TrimSpace(line)
		if l == "" {
			continue
		}

		l = listMarker.ReplaceAllString(l, "")
		l = strings.ReplaceAll(l, "#", "")
		l = strings.TrimSpace(strings.Trim(strings.TrimSpace(l), edgeQuotes))
		l = strings.TrimRight(l, ".")
		l = strings.TrimSpace(strings.Trim(l, edgeQuotes))
		if l == "" {
			continue
		}
		out = append(out, l+".")
	}
	return out
}
