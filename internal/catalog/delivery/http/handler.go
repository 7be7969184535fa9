package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bookhaven/storefront/internal/catalog/domain"
	"github.com/bookhaven/storefront/internal/catalog/usecase/query"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
	"github.com/bookhaven/storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for the catalog using CQRS pattern
type CatalogHandler struct {
	searchHandler *query.SearchBooksHandler
	getHandler    *query.GetBookHandler
	sampleHandler *query.GetSampleHandler
	statsHandler  *query.GetStatsHandler

	repo     domain.BookRepository
	sessions sessiondomain.SessionRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalBooks     prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler (manual DI)
func NewCatalogHandler(repo domain.BookRepository, sessions sessiondomain.SessionRepository) *CatalogHandler {
	return newCatalogHandler(
		query.NewSearchBooksHandler(repo),
		query.NewGetBookHandler(repo),
		query.NewGetSampleHandler(repo),
		query.NewGetStatsHandler(repo),
		repo, sessions,
	)
}

// NewCatalogHandlerWithDI creates a new catalog handler using dependency injection
func NewCatalogHandlerWithDI(
	searchHandler *query.SearchBooksHandler,
	getHandler *query.GetBookHandler,
	sampleHandler *query.GetSampleHandler,
	statsHandler *query.GetStatsHandler,
	repo domain.BookRepository,
	sessions sessiondomain.SessionRepository,
) *CatalogHandler {
	return newCatalogHandler(searchHandler, getHandler, sampleHandler, statsHandler, repo, sessions)
}

func newCatalogHandler(
	searchHandler *query.SearchBooksHandler,
	getHandler *query.GetBookHandler,
	sampleHandler *query.GetSampleHandler,
	statsHandler *query.GetStatsHandler,
	repo domain.BookRepository,
	sessions sessiondomain.SessionRepository,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_requests_total",
			Help: "Total number of catalog requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "storefront_catalog_request_duration_summary",
			Help: "Summary of catalog request durations with percentiles",
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

	totalBooks := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_catalog_books",
			Help: "Number of books in the canonical catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalBooks)

	return &CatalogHandler{
		searchHandler:  searchHandler,
		getHandler:     getHandler,
		sampleHandler:  sampleHandler,
		statsHandler:   statsHandler,
		repo:           repo,
		sessions:       sessions,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
		totalBooks:     totalBooks,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
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

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/books", h.metricsMiddleware("/api/books", h.ListBooks)).Methods("GET")
	router.HandleFunc("/api/books/home", h.metricsMiddleware("/api/books/home", h.Home)).Methods("GET")
	router.HandleFunc("/api/books/stats", h.metricsMiddleware("/api/books/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/books/{id}", h.metricsMiddleware("/api/books/{id}", h.GetBook)).Methods("GET")
	router.HandleFunc("/api/books/{id}/sample", h.metricsMiddleware("/api/books/{id}/sample", h.GetSample)).Methods("GET")
}

// ListBooks handles GET /api/books
func (h *CatalogHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	q := r.URL.Query().Get("q")

	result, err := h.searchHandler.Handle(query.SearchBooksQuery{
		Query:  q,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to search catalog")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to search catalog",
		})
		return
	}

	// Remember the filter for the session snapshot, when a session is attached.
	if id := sessionID(r); id != "" {
		if session, err := h.sessions.FindByID(id); err == nil {
			session.SetActiveQuery(q)
		}
	}

	count, _ := h.repo.Count()
	h.totalBooks.Set(float64(count))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"books":  result.Books,
			"total":  result.Total,
			"limit":  limit,
			"offset": offset,
		},
	})
}

// Home handles GET /api/books/home: the home action resets the filter
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	if id := sessionID(r); id != "" {
		if session, err := h.sessions.FindByID(id); err == nil {
			session.SetActiveQuery("")
		}
	}

	result, err := h.searchHandler.Handle(query.SearchBooksQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to load catalog")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load catalog",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"books": result.Books,
			"total": result.Total,
		},
	})
}

// GetBook handles GET /api/books/{id}
func (h *CatalogHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	book, err := h.getHandler.Handle(query.GetBookQuery{ID: vars["id"]})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Book not found",
		})
		return
	}

	// Fetching details is how the client opens the detail view.
	if id := sessionID(r); id != "" {
		if session, err := h.sessions.FindByID(id); err == nil {
			session.UpdateView(func(v sessiondomain.ViewState) sessiondomain.ViewState {
				return v.WithSelectedBook(book.ID)
			})
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    book,
	})
}

// GetSample handles GET /api/books/{id}/sample
func (h *CatalogHandler) GetSample(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		page = 1
	}

	sample, err := h.sampleHandler.Handle(query.GetSampleQuery{
		BookID: vars["id"],
		Page:   page,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrBookNotFound) {
			status = http.StatusNotFound
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if id := sessionID(r); id != "" {
		if session, err := h.sessions.FindByID(id); err == nil {
			session.UpdateView(func(v sessiondomain.ViewState) sessiondomain.ViewState {
				return v.WithSamplingBook(sample.BookID)
			})
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    sample,
	})
}

// GetStats handles GET /api/books/stats
func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(query.GetStatsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get catalog stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get statistics",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// sessionID extracts the session id header, if any
func sessionID(r *http.Request) string {
	return r.Header.Get("X-Session-ID")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
