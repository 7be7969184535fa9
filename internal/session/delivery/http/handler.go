package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bookhaven/storefront/internal/session/domain"
	"github.com/bookhaven/storefront/internal/session/usecase/command"
	"github.com/bookhaven/storefront/internal/session/usecase/query"
	"github.com/bookhaven/storefront/pkg/logger"
)

// SessionHandler handles HTTP requests for sessions using CQRS pattern
type SessionHandler struct {
	openHandler   *command.OpenSessionHandler
	loginHandler  *command.LoginUserHandler
	logoutHandler *command.LogoutUserHandler
	viewHandler   *command.UpdateViewHandler
	getHandler    *query.GetSessionHandler

	repo domain.SessionRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	activeSessions prometheus.Gauge
	loginCounter   prometheus.Counter
}

// NewSessionHandlerWithDI creates a new session handler using dependency injection
func NewSessionHandlerWithDI(
	openHandler *command.OpenSessionHandler,
	loginHandler *command.LoginUserHandler,
	logoutHandler *command.LogoutUserHandler,
	viewHandler *command.UpdateViewHandler,
	getHandler *query.GetSessionHandler,
	repo domain.SessionRepository,
) *SessionHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_session_requests_total",
			Help: "Total number of session requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_session_request_duration_seconds",
			Help:    "Duration of session requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "storefront_session_request_duration_summary",
			Help: "Summary of session request durations with percentiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	activeSessions := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_sessions_active",
			Help: "Number of open storefront sessions",
		},
	)

	loginCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_logins_total",
			Help: "Total number of successful logins",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(activeSessions)
	prometheus.MustRegister(loginCounter)

	return &SessionHandler{
		openHandler:    openHandler,
		loginHandler:   loginHandler,
		logoutHandler:  logoutHandler,
		viewHandler:    viewHandler,
		getHandler:     getHandler,
		repo:           repo,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
		activeSessions: activeSessions,
		loginCounter:   loginCounter,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *SessionHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/session", h.metricsMiddleware("/api/session", h.OpenSession)).Methods("POST")
	router.HandleFunc("/api/session", h.metricsMiddleware("/api/session", h.GetSession)).Methods("GET")
	router.HandleFunc("/api/session", h.metricsMiddleware("/api/session", h.CloseSession)).Methods("DELETE")
	router.HandleFunc("/api/session/view", h.metricsMiddleware("/api/session/view", h.UpdateView)).Methods("PATCH")
	router.HandleFunc("/api/auth/login", h.metricsMiddleware("/api/auth/login", h.Login)).Methods("POST")
	router.HandleFunc("/api/auth/logout", h.metricsMiddleware("/api/auth/logout", h.Logout)).Methods("POST")
	router.HandleFunc("/api/auth/me", h.metricsMiddleware("/api/auth/me", AuthMiddleware(h.Me))).Methods("GET")
}

// OpenSession handles POST /api/session
func (h *SessionHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.openHandler.Handle(command.OpenSessionCommand{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to open session")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to open session",
		})
		return
	}

	if count, err := h.repo.Count(); err == nil {
		h.activeSessions.Set(float64(count))
	}

	logger.Logger.Info().Str("sessionId", session.ID).Msg("Session opened")

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Session opened",
		Data: map[string]interface{}{
			"id":   session.ID,
			"view": session.View(),
		},
	})
}

// GetSession handles GET /api/session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	snapshot, err := h.getHandler.Handle(query.GetSessionQuery{SessionID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Session not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    snapshot,
	})
}

// CloseSession handles DELETE /api/session
func (h *SessionHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Session not found",
		})
		return
	}

	if count, err := h.repo.Count(); err == nil {
		h.activeSessions.Set(float64(count))
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Session closed",
	})
}

// UpdateView handles PATCH /api/session/view
func (h *SessionHandler) UpdateView(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	var req struct {
		CartOpen       *bool   `json:"cartOpen"`
		LoginOpen      *bool   `json:"loginOpen"`
		SelectedBookID *string `json:"selectedBookId"`
		SamplingBookID *string `json:"samplingBookId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	view, err := h.viewHandler.Handle(command.UpdateViewCommand{
		SessionID:      id,
		CartOpen:       req.CartOpen,
		LoginOpen:      req.LoginOpen,
		SelectedBookID: req.SelectedBookID,
		SamplingBookID: req.SamplingBookID,
	})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Session not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// Login handles POST /api/auth/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	var req struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.loginHandler.Handle(command.LoginUserCommand{
		SessionID: id,
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
	})
	if err != nil {
		logger.Logger.Warn().Err(err).Str("sessionId", id).Msg("Login rejected")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.loginCounter.Inc()
	logger.Logger.Info().Str("email", result.User.Email).Msg("User logged in")

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Login successful",
		Data:    result,
	})
}

// Logout handles POST /api/auth/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	if err := h.logoutHandler.Handle(command.LogoutUserCommand{SessionID: id}); err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Session not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Logged out",
	})
}

// Me handles GET /api/auth/me
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	email, _ := r.Context().Value(EmailKey).(string)
	name, _ := r.Context().Value(NameKey).(string)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: domain.User{
			Email: email,
			Name:  name,
		},
	})
}

func sessionID(r *http.Request) string {
	return r.Header.Get("X-Session-ID")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
