package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func (h *Handlers) GetChatThread(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(r.URL.Query().Get("property_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "property_id is required")
		return
	}
	email := r.URL.Query().Get("email")

	thread, err := h.chat.GetThread(r.Context(), propertyID, email)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, thread)
}

func (h *Handlers) PostChatMessage(w http.ResponseWriter, r *http.Request) {
	var in struct {
		PropertyID int64  `json:"property_id"`
		Email      string `json:"email"`
		Message    string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	if in.PropertyID == 0 {
		writeError(w, http.StatusBadRequest, "property_id is required")
		return
	}

	messages, err := h.chat.PostMessage(r.Context(), in.PropertyID, in.Email, in.Message)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"messages": messages})
}

func (h *Handlers) ListChatSessions(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	sessions, err := h.chat.ListSessions(r.Context(), email)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}
