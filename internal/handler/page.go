package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/service"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Min      int
	Max      int
	Config   crypto.Config
	Password string
}

// PageHandler serves the generator page.
type PageHandler struct {
	service *service.GeneratorService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(svc *service.GeneratorService) *PageHandler {
	return &PageHandler{service: svc}
}

// HandleIndex handles GET / requests. The first password is generated on the
// server so the field is filled before any script runs.
func (h *PageHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Generate(r.Context(), model.GenerateRequest{})
	if err != nil {
		slog.Error("initial generate failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	data := pageData{
		Min:      crypto.MinLength,
		Max:      crypto.MaxLength,
		Config:   crypto.DefaultConfig(),
		Password: resp.Password,
	}
	if err := indexTemplate.Execute(w, data); err != nil {
		slog.Error("render index failed", "error", err)
	}
}
