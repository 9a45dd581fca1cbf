package delivery

import (
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func NewRouter(hAuth *AuthHandler, hAdmin *AdminHandler, authSvc *AuthService) chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	// без пароля админка выключена целиком
	if !authSvc.Enabled() {
		return r
	}

	// --- auth ---
	r.With(httputil.RecoverMiddleware, httprate.LimitByIP(10, time.Minute)).
		Post("/auth/login", hAuth.Login)

	// --- protected ---
	r.Group(func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			AuthMiddleware(authSvc),
		)

		pr.Get("/history", hAdmin.GetHistory)
		pr.Post("/run", hAdmin.Run)
	})

	return r
}
