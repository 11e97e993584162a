package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/passgen/passgen-go/internal/middleware"
	"github.com/passgen/passgen-go/internal/service"
)

// Routes wires services into a router. Presets may be nil, in which case the
// preset routes are not mounted.
//
// RateLimit guards the public API. PageRateLimit guards the endpoint the page
// calls on every slider step and toggle; it must allow a full slider sweep in
// one burst or the page falls behind its own controls.
type Routes struct {
	Generator     *service.GeneratorService
	Presets       *service.PresetService
	RateLimit     func(http.Handler) http.Handler
	PageRateLimit func(http.Handler) http.Handler
	JWTSecret     string
	TokenMaxAge   time.Duration
}

// Router builds the HTTP handler.
func (rt Routes) Router() http.Handler {
	genHandler := NewGeneratorHandler(rt.Generator)
	pageHandler := NewPageHandler(rt.Generator)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/", pageHandler.HandleIndex)

	r.Group(func(r chi.Router) {
		if rt.PageRateLimit != nil {
			r.Use(rt.PageRateLimit)
		}
		r.Post("/generate", genHandler.HandleGenerate)
	})

	r.Group(func(r chi.Router) {
		if rt.RateLimit != nil {
			r.Use(rt.RateLimit)
		}
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	if rt.Presets != nil {
		presetHandler := NewPresetHandler(rt.Presets)

		r.Get("/api/v1/presets", presetHandler.HandleList)
		r.Get("/api/v1/presets/{name}", presetHandler.HandleGet)

		r.Group(func(r chi.Router) {
			r.Use(middleware.PresetAuth(rt.JWTSecret, rt.TokenMaxAge))
			r.Put("/api/v1/presets/{name}", presetHandler.HandlePut)
			r.Delete("/api/v1/presets/{name}", presetHandler.HandleDelete)
		})
	}

	return r
}
