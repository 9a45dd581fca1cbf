package phrases

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	dashReplacer = strings.NewReplacer("—", " ", "-", " ")
	quoteChars   = regexp.MustCompile(`[«»"“”‘’#]`)
	spaceRuns    = regexp.MustCompile(`\s+`)
)

// Normalize приводит текст к канонической форме для сравнения:
// нижний регистр, тире -> пробел, без кавычек и '#', одиночные пробелы.
func Normalize(text string) string {
	t := cases.Lower(language.Russian).String(strings.TrimSpace(text))
	t = dashReplacer.Replace(t)
	t = quoteChars.ReplaceAllString(t, "")
	t = spaceRuns.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// words — токены нормализованного текста без крайних точек
func words(text string) []string {
	return strings.Fields(strings.Trim(Normalize(text), "."))
}
