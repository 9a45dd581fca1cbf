package phrases

import (
	"regexp"
	"strings"
)

var defaultBanPhrases = []string{
	"у тебя всё получится",
	"я верю, что у тебя всё получится",
	"ты справишься",
	"я верю, что ты справишься",
	"я знаю, что ты справишься",
}

// RE2 \b только для ASCII, поэтому границы слова заданы через \p{L}.
var defaultBanRoots = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])(?:получится|справишься)(?:[^\p{L}\p{N}_]|$)`)

// Banlist отсекает заезженные штампы.
type Banlist struct {
	phrases []string
	roots   *regexp.Regexp
}

func DefaultBanlist() Banlist {
	return NewBanlist(defaultBanPhrases, defaultBanRoots)
}

func NewBanlist(phrases []string, roots *regexp.Regexp) Banlist {
	normalized := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if n := Normalize(p); n != "" {
			normalized = append(normalized, n)
		}
	}
	return Banlist{phrases: normalized, roots: roots}
}

func (b Banlist) IsBanned(text string) bool {
	t := strings.TrimRight(Normalize(text), ".")
	for _, p := range b.phrases {
		if strings.HasPrefix(t, p) {
			return true
		}
	}
	return b.roots != nil && b.roots.MatchString(t)
}
