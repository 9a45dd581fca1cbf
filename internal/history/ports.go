package history

import (
	"context"
	"errors"
)

// ErrNotFound — истории ещё нет (первый запуск).
var ErrNotFound = errors.New("history not found")

// Store — низкоуровневое хранилище списка отправленных фраз.
type Store interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, entries []string) error
}
