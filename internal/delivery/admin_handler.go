package delivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/daily_support/internal/job"
)

type HistoryReader interface {
	Load(ctx context.Context) ([]string, error)
}

type RunTrigger interface {
	RunOnce(ctx context.Context, force bool) (job.Result, error)
}

type AdminHandler struct {
	history HistoryReader
	runner  RunTrigger
	log     *logger.ZapLogger
}

func NewAdminHandler(history HistoryReader, runner RunTrigger, log *logger.ZapLogger) *AdminHandler {
	return &AdminHandler{history: history, runner: runner, log: log}
}

func (h *AdminHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.history.Load(r.Context())
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "history load", Service: "delivery", Error: err})
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(entries),
		"entries": entries,
	})
}

// Run — внеочередная отправка, окно времени игнорируется.
func (h *AdminHandler) Run(w http.ResponseWriter, r *http.Request) {
	res, err := h.runner.RunOnce(r.Context(), true)
	if errors.Is(err, job.ErrBusy) {
		http.Error(w, "run already in progress", http.StatusConflict)
		return
	}
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "forced run failed", Service: "delivery", Error: err})
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"run_id": res.RunID,
		"status": res.Status,
		"text":   res.Statement.Text,
		"source": res.Statement.Source,
		"at":     res.At.Format(time.RFC3339),
	})
}
