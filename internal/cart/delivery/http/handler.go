package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
	"github.com/bookhaven/storefront/internal/cart/usecase/command"
	"github.com/bookhaven/storefront/internal/cart/usecase/query"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
	"github.com/bookhaven/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for the cart using CQRS pattern
type CartHandler struct {
	addHandler     *command.AddItemHandler
	updateHandler  *command.UpdateQuantityHandler
	removeHandler  *command.RemoveItemHandler
	getCartHandler *query.GetCartHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	itemsAdded     prometheus.Counter
}

// NewCartHandler creates a new cart handler (manual DI)
func NewCartHandler(sessions sessiondomain.SessionRepository, books catalogdomain.BookRepository) *CartHandler {
	return newCartHandler(
		command.NewAddItemHandler(sessions, books),
		command.NewUpdateQuantityHandler(sessions),
		command.NewRemoveItemHandler(sessions),
		query.NewGetCartHandler(sessions),
	)
}

// NewCartHandlerWithDI creates a new cart handler using dependency injection
func NewCartHandlerWithDI(
	addHandler *command.AddItemHandler,
	updateHandler *command.UpdateQuantityHandler,
	removeHandler *command.RemoveItemHandler,
	getCartHandler *query.GetCartHandler,
) *CartHandler {
	return newCartHandler(addHandler, updateHandler, removeHandler, getCartHandler)
}

func newCartHandler(
	addHandler *command.AddItemHandler,
	updateHandler *command.UpdateQuantityHandler,
	removeHandler *command.RemoveItemHandler,
	getCartHandler *query.GetCartHandler,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_requests_total",
			Help: "Total number of cart requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_cart_request_duration_seconds",
			Help:    "Duration of cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "storefront_cart_request_duration_summary",
			Help: "Summary of cart request durations with percentiles",
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

	itemsAdded := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_cart_items_added_total",
			Help: "Total number of items added to carts",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(itemsAdded)

	return &CartHandler{
		addHandler:     addHandler,
		updateHandler:  updateHandler,
		removeHandler:  removeHandler,
		getCartHandler: getCartHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
		itemsAdded:     itemsAdded,
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

func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
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

func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/api/cart/items/{bookId}", h.metricsMiddleware("/api/cart/items/{bookId}", h.UpdateQuantity)).Methods("PATCH")
	router.HandleFunc("/api/cart/items/{bookId}", h.metricsMiddleware("/api/cart/items/{bookId}", h.RemoveItem)).Methods("DELETE")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	cart, err := h.getCartHandler.Handle(query.GetCartQuery{SessionID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Session not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    cart,
	})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	var req struct {
		BookID string `json:"bookId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BookID == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "bookId is required",
		})
		return
	}

	if err := h.addHandler.Handle(command.AddItemCommand{
		SessionID: id,
		BookID:    req.BookID,
	}); err != nil {
		status := http.StatusNotFound
		var msg string
		switch {
		case errors.Is(err, sessiondomain.ErrSessionNotFound):
			msg = "Session not found"
		case errors.Is(err, catalogdomain.ErrBookNotFound):
			msg = "Book not found"
		default:
			status = http.StatusInternalServerError
			msg = "Failed to add item"
			logger.Logger.Error().Err(err).Str("bookId", req.BookID).Msg("Failed to add item to cart")
		}
		respondJSON(w, status, Response{Success: false, Error: msg})
		return
	}

	h.itemsAdded.Inc()

	cart, err := h.getCartHandler.Handle(query.GetCartQuery{SessionID: id})
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to read cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    cart,
	})
}

// UpdateQuantity handles PATCH /api/cart/items/{bookId}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	vars := mux.Vars(r)

	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.updateHandler.Handle(command.UpdateQuantityCommand{
		SessionID: id,
		BookID:    vars["bookId"],
		Delta:     req.Delta,
	}); err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Session not found",
		})
		return
	}

	cart, _ := h.getCartHandler.Handle(query.GetCartQuery{SessionID: id})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity updated",
		Data:    cart,
	})
}

// RemoveItem handles DELETE /api/cart/items/{bookId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	vars := mux.Vars(r)

	if err := h.removeHandler.Handle(command.RemoveItemCommand{
		SessionID: id,
		BookID:    vars["bookId"],
	}); err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Session not found",
		})
		return
	}

	cart, _ := h.getCartHandler.Handle(query.GetCartQuery{SessionID: id})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed",
		Data:    cart,
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
