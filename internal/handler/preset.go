package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/passgen/passgen-go/internal/middleware"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/service"
)

// PresetHandler handles HTTP requests for stored presets.
type PresetHandler struct {
	service *service.PresetService
}

// NewPresetHandler creates a new PresetHandler.
func NewPresetHandler(svc *service.PresetService) *PresetHandler {
	return &PresetHandler{service: svc}
}

// HandleList handles GET /api/v1/presets requests.
func (h *PresetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	presets, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("list presets failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, presets)
}

// HandleGet handles GET /api/v1/presets/{name} requests.
func (h *PresetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetPreset(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// HandlePut handles PUT /api/v1/presets/{name} requests.
func (h *PresetHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	var req model.PresetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.service.Save(r.Context(), chi.URLParam(r, "name"), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	sub, _ := middleware.SubjectFromContext(r.Context())
	slog.Info("preset saved", "name", p.Name, "by", sub)
	writeJSON(w, http.StatusOK, p)
}

// HandleDelete handles DELETE /api/v1/presets/{name} requests.
func (h *PresetHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.service.Delete(r.Context(), name); err != nil {
		h.writeError(w, err)
		return
	}

	sub, _ := middleware.SubjectFromContext(r.Context())
	slog.Info("preset deleted", "name", name, "by", sub)
	w.WriteHeader(http.StatusNoContent)
}

func (h *PresetHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPresetNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case isValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	default:
		slog.Error("preset request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
