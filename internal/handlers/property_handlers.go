package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/homevista/homevista-backend/internal/domain"
	"github.com/homevista/homevista-backend/pkg/logger"
)

func (h *Handlers) ListProperties(w http.ResponseWriter, r *http.Request) {
	if err := h.properties.ReloadIfEmpty(r.Context()); err != nil {
		logger.ErrorContext(r.Context(), "Property store self-heal reload failed", "error", err)
	}

	location := r.URL.Query().Get("location")
	writeJSON(w, http.StatusOK, h.properties.List(r.Context(), location))
}

func (h *Handlers) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	property, err := h.properties.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *Handlers) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var data domain.Property
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	property, err := h.properties.Create(r.Context(), data)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Property added",
		"property": property,
	})
}

func (h *Handlers) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	property, err := h.properties.Update(r.Context(), id, patch)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Property updated",
		"property": property,
	})
}

func (h *Handlers) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	if err := h.properties.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Property deleted"})
}

func propertyID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property id")
		return 0, false
	}
	return id, true
}
