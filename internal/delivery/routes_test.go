package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/Vovarama1992/daily_support/internal/affirmation"
	"github.com/Vovarama1992/daily_support/internal/job"
)

type fakeHistory struct{ entries []string }

func (f *fakeHistory) Load(context.Context) ([]string, error) { return f.entries, nil }

type fakeRunner struct {
	res job.Result
	err error
}

func (f *fakeRunner) RunOnce(context.Context, bool) (job.Result, error) { return f.res, f.err }

func newTestRouter(password string, runner RunTrigger) http.Handler {
	log := logger.NewZapLogger(zap.NewNop().Sugar())
	auth := NewAuthService("secret", password, time.Hour)
	hist := &fakeHistory{entries: []string{"я рядом, даже если молчишь."}}
	return NewRouter(NewAuthHandler(auth), NewAdminHandler(hist, runner, log), auth)
}

func do(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/auth/login", `{"password":"hunter2"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login status %d: %s", rec.Code, rec.Body)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("login body %s: %v", rec.Body, err)
	}
	return resp.Token
}

func TestPing(t *testing.T) {
	rec := do(t, newTestRouter("", &fakeRunner{}), http.MethodGet, "/ping", "", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Errorf("got %d %q", rec.Code, rec.Body)
	}
}

func TestAdminDisabledWithoutPassword(t *testing.T) {
	h := newTestRouter("", &fakeRunner{})
	if rec := do(t, h, http.MethodPost, "/auth/login", `{"password":""}`, ""); rec.Code != http.StatusNotFound {
		t.Errorf("login status = %d", rec.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h := newTestRouter("hunter2", &fakeRunner{})
	if rec := do(t, h, http.MethodPost, "/auth/login", `{"password":"nope"}`, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestHistoryRequiresToken(t *testing.T) {
	h := newTestRouter("hunter2", &fakeRunner{})

	if rec := do(t, h, http.MethodGet, "/history", "", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/history", "", "garbage"); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d", rec.Code)
	}

	rec := do(t, h, http.MethodGet, "/history", "", login(t, h))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "я рядом, даже если молчишь.") {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestForcedRun(t *testing.T) {
	runner := &fakeRunner{res: job.Result{
		RunID:     "run-1",
		Status:    job.StatusSent,
		Statement: affirmation.Statement{Text: "твоя тишина для меня понятна.", Source: affirmation.SourceModel},
	}}
	h := newTestRouter("hunter2", runner)
	token := login(t, h)

	rec := do(t, h, http.MethodPost, "/run", "", token)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "твоя тишина") {
		t.Errorf("got %d %s", rec.Code, rec.Body)
	}

	runner.err = job.ErrBusy
	if rec := do(t, h, http.MethodPost, "/run", "", token); rec.Code != http.StatusConflict {
		t.Errorf("busy status = %d", rec.Code)
	}
}
