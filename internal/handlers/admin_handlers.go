package handlers

import (
	"encoding/json"
	"net/http"
)

// RequireAdmin gates the admin surface with a plain credential comparison.
// This is a literal stand-in, not authentication.
func (h *Handlers) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get("X-Admin-Email")
		password := r.Header.Get("X-Admin-Password")
		if email != h.config.Admin.Email || password != h.config.Admin.Password {
			writeError(w, http.StatusUnauthorized, "Invalid admin credentials")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.Dashboard(r.Context()))
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"users": h.admin.ListUsers(r.Context()),
	})
}

func (h *Handlers) BanUser(w http.ResponseWriter, r *http.Request) {
	email, ok := banTarget(w, r)
	if !ok {
		return
	}

	if err := h.admin.Ban(r.Context(), email); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User banned"})
}

func (h *Handlers) UnbanUser(w http.ResponseWriter, r *http.Request) {
	email, ok := banTarget(w, r)
	if !ok {
		return
	}

	if err := h.admin.Unban(r.Context(), email); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User unbanned"})
}

func banTarget(w http.ResponseWriter, r *http.Request) (string, bool) {
	var in struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return "", false
	}
	return in.Email, true
}
