package phrases

import "strings"

// StyleRules — неизменяемый набор стилевых ограничений.
type StyleRules struct {
	MinWords  int
	MaxWords  int
	Forbidden []string
}

var defaultForbidden = []string{
	"сегодня", "вперед", "вперёд", "сделай", "сделать", "давай", "шаг", "не упусти",
	"отличный день", "классное", "вдохновляющее",
}

func DefaultStyleRules() StyleRules {
	return StyleRules{
		MinWords:  5,
		MaxWords:  9,
		Forbidden: append([]string(nil), defaultForbidden...),
	}
}

// Conforms проверяет длину, финальную точку, отсутствие '!' и запрещённых слов.
func (r StyleRules) Conforms(text string) bool {
	t := Normalize(text)

	n := len(strings.Fields(t))
	if n < r.MinWords || n > r.MaxWords {
		return false
	}
	if !strings.HasSuffix(t, ".") {
		return false
	}
	if strings.Contains(text, "!") {
		return false
	}
	for _, bad := range r.Forbidden {
		if strings.Contains(t, Normalize(bad)) {
			return false
		}
	}
	return true
}
