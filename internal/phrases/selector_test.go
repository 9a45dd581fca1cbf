package phrases

import (
	"math/rand/v2"
	"testing"
)

func newTestSelector(historyLimit int, seed uint64) *Selector {
	return NewSelector(
		DefaultStyleRules(),
		DefaultBanlist(),
		NewSimilarity(DefaultThreshold),
		historyLimit,
		rand.New(rand.NewPCG(seed, seed+1)),
	)
}

func TestPickFreshDropsExclamation(t *testing.T) {
	s := newTestSelector(200, 1)

	got, ok := s.PickFresh([]string{
		"я рядом, даже если молчишь.",
		"Я рядом, даже если молчишь!!",
	}, nil)
	if !ok {
		t.Fatal("expected a candidate")
	}
	if got != "я рядом, даже если молчишь." {
		t.Errorf("got %q", got)
	}
}

func TestPickFreshRejectsHistoryDuplicate(t *testing.T) {
	s := newTestSelector(200, 1)

	got, ok := s.PickFresh(
		[]string{"Ты важен, даже если сомневаешься."},
		[]string{"ты важен, даже если сомневаешься."},
	)
	if ok {
		t.Errorf("expected no candidate, got %q", got)
	}
}

func TestPickFreshOnlyLooksAtRecentHistory(t *testing.T) {
	s := newTestSelector(1, 1)

	history := []string{
		"ты важен, даже если сомневаешься.",
		"твоя тишина для меня понятна.",
	}
	got, ok := s.PickFresh([]string{"Ты важен, даже если сомневаешься."}, history)
	if !ok || got != "Ты важен, даже если сомневаешься." {
		t.Errorf("got %q, %v", got, ok)
	}
}

func TestAcceptedDeduplicatesWithinBatch(t *testing.T) {
	s := newTestSelector(200, 1)

	got := s.Accepted([]string{
		"ты важен, даже если сомневаешься.",
		"Ты важен, даже если сомневаешься.",
		"у тебя всё получится.",
		"я вижу в тебе спокойную силу.",
	}, nil)

	want := []string{"ты важен, даже если сомневаешься.", "я вижу в тебе спокойную силу."}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPickFreshNeverReturnsInvalid(t *testing.T) {
	batch := []string{
		"сегодня отличный день для тебя, правда.",
		"ты справишься со всем спокойно и тихо.",
		"я рядом, даже если молчишь.",
		"я рядом, даже если ты молчишь.",
		"твоя тишина для меня понятна.",
		"Сделай глубокий вдох прямо сейчас.",
		"я ценю твоё спокойное усилие!",
	}
	style := DefaultStyleRules()
	bans := DefaultBanlist()

	seen := map[string]bool{}
	for seed := uint64(0); seed < 50; seed++ {
		got, ok := newTestSelector(200, seed).PickFresh(batch, nil)
		if !ok {
			t.Fatal("expected a candidate")
		}
		if !style.Conforms(got) || bans.IsBanned(got) {
			t.Fatalf("invalid pick %q", got)
		}
		seen[got] = true
	}

	sim := NewSimilarity(DefaultThreshold)
	for a := range seen {
		for b := range seen {
			if a != b && sim.TooSimilar(a, b) {
				t.Errorf("mutually similar picks %q / %q", a, b)
			}
		}
	}
}

func TestPickFreshEmpty(t *testing.T) {
	if got, ok := newTestSelector(200, 1).PickFresh(nil, nil); ok {
		t.Errorf("expected nothing, got %q", got)
	}
}
