package affirmation

import "context"

type CandidateGenerator interface {
	Generate(ctx context.Context, n int) ([]string, error)
}

type HistoryStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, entries []string) error
}

type Picker interface {
	PickFresh(candidates, history []string) (string, bool)
}

type FallbackProvider interface {
	Pick(history []string) string
}
