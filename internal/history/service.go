package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
)

const DefaultLimit = 200

// Service хранит не больше limit последних фраз. Ошибки хранилища
// не валят прогон: наружу уходит только отмена контекста.
type Service struct {
	store Store
	limit int
	log   *logger.ZapLogger
}

func NewService(store Store, limit int, log *logger.ZapLogger) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{store: store, limit: limit, log: log}
}

func (s *Service) Limit() int { return s.limit }

// Load returns the stored history, or an empty one when it is missing or
// unreadable. The error is non-nil only when ctx is done.
func (s *Service) Load(ctx context.Context) ([]string, error) {
	entries, err := s.store.Load(ctx)
	if err == nil {
		return entries, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if errors.Is(err, ErrNotFound) {
		s.log.Log(logger.LogEntry{Level: "info", Message: "history is empty, starting fresh", Service: "history"})
	} else {
		s.log.Log(logger.LogEntry{Level: "warn", Message: "history unreadable, starting fresh", Service: "history", Error: err})
	}
	return []string{}, nil
}

// Save keeps the most recent limit entries. Storage failures are logged
// and dropped; the error is non-nil only when ctx is done.
func (s *Service) Save(ctx context.Context, entries []string) error {
	if err := s.store.Save(ctx, Tail(entries, s.limit)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: fmt.Sprintf("history not saved (%d entries)", len(entries)),
			Service: "history",
			Error:   err,
		})
	}
	return nil
}

// Tail возвращает копию последних limit элементов.
func Tail(entries []string, limit int) []string {
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return append([]string{}, entries...)
}
