package ai

import "context"

// Completer — один запрос к модели: системная инструкция + пользовательская.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
