package affirmation

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
)

const (
	DefaultBatchSize = 12
	DefaultAttempts  = 2
)

type Options struct {
	BatchSize int
	Attempts  int
}

// Source — откуда взялась фраза.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

type Statement struct {
	Text    string
	Source  Source
	Attempt int
}

type Service struct {
	generator CandidateGenerator
	history   HistoryStore
	picker    Picker
	fallback  FallbackProvider
	opts      Options
	log       *logger.ZapLogger
}

func NewService(
	generator CandidateGenerator,
	history HistoryStore,
	picker Picker,
	fallback FallbackProvider,
	opts Options,
	log *logger.ZapLogger,
) *Service {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Attempts <= 0 {
		opts.Attempts = DefaultAttempts
	}
	return &Service{
		generator: generator,
		history:   history,
		picker:    picker,
		fallback:  fallback,
		opts:      opts,
		log:       log,
	}
}

// GenerateText — см. Generate, только текст.
func (s *Service) GenerateText(ctx context.Context) (string, error) {
	st, err := s.Generate(ctx)
	if err != nil {
		return "", err
	}
	return st.Text, nil
}

// Generate выбирает свежую фразу и дописывает её в историю. Ошибка
// генератора прерывает прогон; отсутствие кандидатов уводит в фолбек.
func (s *Service) Generate(ctx context.Context) (Statement, error) {
	history, err := s.history.Load(ctx)
	if err != nil {
		return Statement{}, err
	}

	for attempt := 1; attempt <= s.opts.Attempts; attempt++ {
		candidates, err := s.generator.Generate(ctx, s.opts.BatchSize)
		if err != nil {
			return Statement{}, fmt.Errorf("attempt %d: %w", attempt, err)
		}

		choice, ok := s.picker.PickFresh(candidates, history)
		if !ok {
			s.log.Log(logger.LogEntry{
				Level:   "info",
				Message: fmt.Sprintf("attempt %d: no fresh candidate among %d", attempt, len(candidates)),
				Service: "affirmation",
			})
			continue
		}

		s.log.Log(logger.LogEntry{
			Level:   "info",
			Message: fmt.Sprintf("attempt %d: picked from %d candidates", attempt, len(candidates)),
			Service: "affirmation",
		})
		return s.remember(ctx, history, Statement{Text: choice, Source: SourceModel, Attempt: attempt})
	}

	text := s.fallback.Pick(history)
	s.log.Log(logger.LogEntry{Level: "warn", Message: "using fallback: " + text, Service: "affirmation"})
	return s.remember(ctx, history, Statement{Text: text, Source: SourceFallback})
}

func (s *Service) remember(ctx context.Context, history []string, st Statement) (Statement, error) {
	history = append(history, st.Text)
	if err := s.history.Save(ctx, history); err != nil {
		return Statement{}, err
	}
	return st, nil
}
