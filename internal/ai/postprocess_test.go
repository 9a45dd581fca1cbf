package ai

import (
	"slices"
	"testing"
)

func TestSplitCandidates(t *testing.T) {
	reply := `
1. я рядом, даже если молчишь
2) «ты важен, даже если сомневаешься.»
- я вижу в тебе спокойную силу..

• #твоя тишина для меня понятна
(5) "я ценю твоё спокойное усилие"
Я рядом, даже если молчишь!!
-
`
	want := []string{
		"я рядом, даже если молчишь.",
		"ты важен, даже если сомневаешься.",
		"я вижу в тебе спокойную силу.",
		"твоя тишина для меня понятна.",
		"я ценю твоё спокойное усилие.",
		"Я рядом, даже если молчишь!!.",
	}

	got := splitCandidates(reply)
	if !slices.Equal(got, want) {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestSplitCandidatesEmpty(t *testing.T) {
	if got := splitCandidates("  \n\n "); len(got) != 0 {
		t.Errorf("got %q, want none", got)
	}
}
