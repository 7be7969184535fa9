package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bookhaven/storefront/internal/recommend/usecase/command"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// RecommendHandler handles HTTP requests for AI recommendations
type RecommendHandler struct {
	recommendHandler *command.RecommendBooksHandler
	clearHandler     *command.ClearRecommendationsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	emptyResults   prometheus.Counter
}

// NewRecommendHandlerWithDI creates a new recommend handler using dependency injection
func NewRecommendHandlerWithDI(
	recommendHandler *command.RecommendBooksHandler,
	clearHandler *command.ClearRecommendationsHandler,
) *RecommendHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_recommend_request_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "storefront_recommend_request_duration_summary",
			Help: "Summary of recommendation request durations with percentiles",
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

	emptyResults := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_recommend_empty_results_total",
			Help: "Total number of recommendation requests that returned no books",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(emptyResults)

	return &RecommendHandler{
		recommendHandler: recommendHandler,
		clearHandler:     clearHandler,
		requestCounter:   requestCounter,
		requestLatency:   requestLatency,
		requestSummary:   requestSummary,
		emptyResults:     emptyResults,
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

func (h *RecommendHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
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

func (h *RecommendHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/recommendations", h.metricsMiddleware("/api/recommendations", h.Recommend)).Methods("POST")
	router.HandleFunc("/api/recommendations", h.metricsMiddleware("/api/recommendations", h.Clear)).Methods("DELETE")
}

// Recommend handles POST /api/recommendations
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "query is required",
		})
		return
	}

	books, err := h.recommendHandler.Handle(r.Context(), command.RecommendBooksCommand{
		SessionID: id,
		Query:     req.Query,
	})
	if err != nil {
		switch {
		case errors.Is(err, command.ErrRequestInFlight):
			respondJSON(w, http.StatusConflict, Response{
				Success: false,
				Error:   err.Error(),
			})
		case errors.Is(err, sessiondomain.ErrSessionNotFound):
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Session not found",
			})
		default:
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   err.Error(),
			})
		}
		return
	}

	if len(books) == 0 {
		h.emptyResults.Inc()
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"books": books,
			"query": req.Query,
		},
	})
}

// Clear handles DELETE /api/recommendations
func (h *RecommendHandler) Clear(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	if err := h.clearHandler.Handle(command.ClearRecommendationsCommand{SessionID: id}); err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Session not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Recommendations cleared",
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
