package handlers

import (
	"encoding/json"
	"net/http"
)

// Recommend echoes the input and returns the placeholder recommendation
// set. There is no model behind this endpoint.
func (h *Handlers) Recommend(w http.ResponseWriter, r *http.Request) {
	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"input":           input,
		"recommendations": h.properties.Recommend(r.Context(), input),
	})
}

// PredictPrice returns the placeholder prediction. There is no model behind
// this endpoint either.
func (h *Handlers) PredictPrice(w http.ResponseWriter, r *http.Request) {
	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"input":           input,
		"predicted_price": h.properties.PredictPrice(r.Context(), input),
	})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	summary := h.admin.Dashboard(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":           "OK",
		"properties_count": summary.TotalProperties,
		"users_count":      summary.TotalUsers,
	})
}
