package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homevista/homevista-backend/internal/domain"
	"github.com/homevista/homevista-backend/internal/service"
	"github.com/homevista/homevista-backend/pkg/config"
)

type Handlers struct {
	auth       service.AuthService
	properties service.PropertyService
	chat       service.ChatService
	admin      service.AdminService
	config     *config.Config
}

func New(
	auth service.AuthService,
	properties service.PropertyService,
	chat service.ChatService,
	admin service.AdminService,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		auth:       auth,
		properties: properties,
		chat:       chat,
		admin:      admin,
		config:     cfg,
	}
}

// Router assembles the API routes. authLimit, when non-nil, wraps the
// credential-accepting endpoints (register/login) with rate limiting.
func (h *Handlers) Router(authLimit func(http.Handler) http.Handler) chi.Router {
	if authLimit == nil {
		authLimit = func(next http.Handler) http.Handler { return next }
	}

	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authLimit)
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})
	r.Post("/logout", h.Logout)

	r.Route("/properties", func(r chi.Router) {
		r.Get("/", h.ListProperties)
		r.Post("/", h.CreateProperty)
		r.Get("/{id}", h.GetProperty)
		r.Put("/{id}", h.UpdateProperty)
		r.Delete("/{id}", h.DeleteProperty)
	})

	r.Route("/chat", func(r chi.Router) {
		r.Get("/", h.GetChatThread)
		r.Post("/", h.PostChatMessage)
		r.Get("/sessions", h.ListChatSessions)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(h.RequireAdmin)
		r.Get("/dashboard", h.Dashboard)
		r.Get("/users", h.ListUsers)
		r.Post("/ban", h.BanUser)
		r.Post("/unban", h.UnbanUser)
	})

	r.Post("/recommend", h.Recommend)
	r.Post("/predict_price", h.PredictPrice)
	r.Get("/health", h.Health)

	return r
}

// Helper functions for common response patterns
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeDomainError maps the core's error kinds to HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrMissingParameter):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
