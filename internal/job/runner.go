package job

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/google/uuid"

	"github.com/Vovarama1992/daily_support/internal/affirmation"
	"github.com/Vovarama1992/daily_support/internal/schedule"
)

// ErrBusy — прогон уже идёт.
var ErrBusy = errors.New("run already in progress")

type Pipeline interface {
	Generate(ctx context.Context) (affirmation.Statement, error)
}

type Sender interface {
	Send(ctx context.Context, text string) error
}

type Notifier interface {
	Notify(ctx context.Context, runID string, err error, details string) error
}

type Status string

const (
	StatusSent        Status = "sent"
	StatusOutside     Status = "outside_window"
	StatusAlreadyRan  Status = "already_ran"
)

type Result struct {
	RunID     string
	Status    Status
	Statement affirmation.Statement
	At        time.Time
}

type Runner struct {
	gate     *schedule.Gate
	pipeline Pipeline
	sender   Sender
	notifier Notifier
	log      *logger.ZapLogger

	mu      sync.Mutex
	lastRun string
}

func NewRunner(gate *schedule.Gate, pipeline Pipeline, sender Sender, notifier Notifier, log *logger.ZapLogger) *Runner {
	return &Runner{
		gate:     gate,
		pipeline: pipeline,
		sender:   sender,
		notifier: notifier,
		log:      log,
	}
}

// RunOnce проверяет окно (если не force), генерирует текст и отправляет.
// Параллельные вызовы получают ErrBusy; force не расходует дневную попытку.
func (r *Runner) RunOnce(ctx context.Context, force bool) (Result, error) {
	if !r.mu.TryLock() {
		return Result{}, ErrBusy
	}
	defer r.mu.Unlock()

	now := r.gate.Now()
	res := Result{RunID: uuid.NewString(), At: now}

	if !force {
		if !r.gate.IsSendTime(now) {
			res.Status = StatusOutside
			r.info(res.RunID, r.gate.SkipMessage(now))
			return res, nil
		}
		// плановый прогон — одна попытка в день, даже неудачная
		if r.lastRun == r.gate.Day(now) {
			res.Status = StatusAlreadyRan
			return res, nil
		}
		r.lastRun = r.gate.Day(now)
	}

	st, err := r.pipeline.Generate(ctx)
	if err != nil {
		return res, r.fail(ctx, res.RunID, fmt.Errorf("generate: %w", err), "генерация текста")
	}
	res.Statement = st

	if err := r.sender.Send(ctx, st.Text); err != nil {
		return res, r.fail(ctx, res.RunID, fmt.Errorf("deliver: %w", err), "текст: "+st.Text)
	}

	res.Status = StatusSent
	r.info(res.RunID, fmt.Sprintf("Message sent (%s): %s", st.Source, st.Text))
	return res, nil
}

// Loop — фоновый режим: проверка окна по тикеру до отмены ctx.
func (r *Runner) Loop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := r.RunOnce(ctx, false); err != nil && !errors.Is(err, ErrBusy) {
			r.log.Log(logger.LogEntry{Level: "error", Message: "scheduled run failed", Service: "job", Error: err})
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (r *Runner) fail(ctx context.Context, runID string, err error, details string) error {
	r.log.Log(logger.LogEntry{Level: "error", Message: "run " + runID + " failed", Service: "job", Error: err})
	if r.notifier != nil {
		_ = r.notifier.Notify(ctx, runID, err, details)
	}
	return err
}

func (r *Runner) info(runID, msg string) {
	r.log.Log(logger.LogEntry{Level: "info", Message: "[" + runID + "] " + msg, Service: "job"})
}
