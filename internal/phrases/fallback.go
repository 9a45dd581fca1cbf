package phrases

import "strings"

var defaultTemplates = []string{
	"я рядом, даже если молчишь.",
	"твоя тишина для меня понятна.",
	"я ценю твоё спокойное усилие.",
	"ты можешь опереться на меня.",
	"ты важен, даже если сомневаешься.",
	"я вижу, как ты держишься.",
}

// Fallback — ручные безопасные фразы на случай, если модель не справилась.
type Fallback struct {
	templates []string
	sim       Similarity
	rnd       Rand
}

func NewFallback(sim Similarity, rnd Rand) *Fallback {
	return NewFallbackWithTemplates(defaultTemplates, sim, rnd)
}

// NewFallbackWithTemplates panics on an empty template set: Pick must
// always have something to return.
func NewFallbackWithTemplates(templates []string, sim Similarity, rnd Rand) *Fallback {
	if len(templates) == 0 {
		panic("phrases: fallback needs at least one template")
	}
	return &Fallback{
		templates: append([]string(nil), templates...),
		sim:       sim,
		rnd:       rnd,
	}
}

func (f *Fallback) Pick(history []string) string {
	shuffled := append([]string(nil), f.templates...)
	f.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for _, t := range shuffled {
		if !f.sim.SimilarToAny(t, history) {
			return withPeriod(t)
		}
	}
	return withPeriod(f.templates[0])
}

func withPeriod(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}
