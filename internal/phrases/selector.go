package phrases

// Selector фильтрует пачку кандидатов и выбирает один свежий.
type Selector struct {
	style        StyleRules
	bans         Banlist
	sim          Similarity
	historyLimit int
	rnd          Rand
}

func NewSelector(style StyleRules, bans Banlist, sim Similarity, historyLimit int, rnd Rand) *Selector {
	return &Selector{
		style:        style,
		bans:         bans,
		sim:          sim,
		historyLimit: historyLimit,
		rnd:          rnd,
	}
}

// Accepted returns the filtered, in-batch deduplicated candidates in
// their original order.
func (s *Selector) Accepted(candidates, history []string) []string {
	recent := history
	if s.historyLimit > 0 && len(recent) > s.historyLimit {
		recent = recent[len(recent)-s.historyLimit:]
	}

	var ok []string
	for _, c := range candidates {
		if !s.style.Conforms(c) {
			continue
		}
		if s.bans.IsBanned(c) {
			continue
		}
		if s.sim.SimilarToAny(c, recent) {
			continue
		}
		ok = append(ok, c)
	}

	// взаимно похожие внутри пачки: побеждает первый
	unique := make([]string, 0, len(ok))
	for _, c := range ok {
		if s.sim.SimilarToAny(c, unique) {
			continue
		}
		unique = append(unique, c)
	}
	return unique
}

// PickFresh возвращает случайного выжившего кандидата или false.
func (s *Selector) PickFresh(candidates, history []string) (string, bool) {
	unique := s.Accepted(candidates, history)
	if len(unique) == 0 {
		return "", false
	}
	return unique[s.rnd.IntN(len(unique))], true
}
