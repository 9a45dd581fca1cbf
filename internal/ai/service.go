package ai

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Generator просит у модели пачку сырых кандидатов. Стиль и баны
// здесь не проверяются.
type Generator struct {
	completer Completer
}

func NewGenerator(c Completer) *Generator {
	return &Generator{completer: c}
}

func (g *Generator) Generate(ctx context.Context, n int) ([]string, error) {
	start := time.Now()

	reply, err := g.completer.Complete(ctx, systemPrompt, userPrompt(n))
	if err != nil {
		return nil, fmt.Errorf("generate %d candidates: %w", n, err)
	}

	candidates := splitCandidates(reply)
	log.Printf("[ai][%.1fs] asked=%d got=%d", time.Since(start).Seconds(), n, len(candidates))
	return candidates, nil
}
