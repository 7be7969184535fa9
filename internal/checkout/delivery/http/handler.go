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
	"github.com/bookhaven/storefront/internal/checkout/domain"
	"github.com/bookhaven/storefront/internal/checkout/usecase/command"
	"github.com/bookhaven/storefront/internal/checkout/usecase/query"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
	"github.com/bookhaven/storefront/pkg/logger"
)

// CheckoutHandler handles HTTP requests for the checkout flow
type CheckoutHandler struct {
	openHandler    *command.OpenCheckoutHandler
	buyNowHandler  *command.BuyNowHandler
	contactHandler *command.SubmitContactHandler
	backHandler    *command.BackToReviewHandler
	paymentHandler *command.SubmitPaymentHandler
	dismissHandler *command.DismissCheckoutHandler
	getHandler     *query.GetCheckoutHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	ordersPlaced   prometheus.Counter
}

// NewCheckoutHandlerWithDI creates a new checkout handler using dependency injection
func NewCheckoutHandlerWithDI(
	openHandler *command.OpenCheckoutHandler,
	buyNowHandler *command.BuyNowHandler,
	contactHandler *command.SubmitContactHandler,
	backHandler *command.BackToReviewHandler,
	paymentHandler *command.SubmitPaymentHandler,
	dismissHandler *command.DismissCheckoutHandler,
	getHandler *query.GetCheckoutHandler,
) *CheckoutHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkout_requests_total",
			Help: "Total number of checkout requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_checkout_request_duration_seconds",
			Help:    "Duration of checkout requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "storefront_checkout_request_duration_summary",
			Help: "Summary of checkout request durations with percentiles",
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

	ordersPlaced := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_checkout_payments_submitted_total",
			Help: "Total number of payments submitted for processing",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(ordersPlaced)

	return &CheckoutHandler{
		openHandler:    openHandler,
		buyNowHandler:  buyNowHandler,
		contactHandler: contactHandler,
		backHandler:    backHandler,
		paymentHandler: paymentHandler,
		dismissHandler: dismissHandler,
		getHandler:     getHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
		ordersPlaced:   ordersPlaced,
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

func (h *CheckoutHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
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

func (h *CheckoutHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/checkout", h.metricsMiddleware("/api/checkout", h.Open)).Methods("POST")
	router.HandleFunc("/api/checkout", h.metricsMiddleware("/api/checkout", h.Get)).Methods("GET")
	router.HandleFunc("/api/checkout", h.metricsMiddleware("/api/checkout", h.Dismiss)).Methods("DELETE")
	router.HandleFunc("/api/checkout/buy-now", h.metricsMiddleware("/api/checkout/buy-now", h.BuyNow)).Methods("POST")
	router.HandleFunc("/api/checkout/contact", h.metricsMiddleware("/api/checkout/contact", h.SubmitContact)).Methods("POST")
	router.HandleFunc("/api/checkout/back", h.metricsMiddleware("/api/checkout/back", h.Back)).Methods("POST")
	router.HandleFunc("/api/checkout/payment", h.metricsMiddleware("/api/checkout/payment", h.SubmitPayment)).Methods("POST")
}

// Open handles POST /api/checkout
func (h *CheckoutHandler) Open(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	if err := h.openHandler.Handle(command.OpenCheckoutCommand{SessionID: id}); err != nil {
		h.respondError(w, err)
		return
	}

	h.respondState(w, id, "Checkout opened")
}

// Get handles GET /api/checkout
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	h.respondState(w, id, "")
}

// BuyNow handles POST /api/checkout/buy-now
func (h *CheckoutHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
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
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.buyNowHandler.Handle(command.BuyNowCommand{
		SessionID: id,
		BookID:    req.BookID,
	}); err != nil {
		h.respondError(w, err)
		return
	}

	h.respondState(w, id, "Checkout opened")
}

// SubmitContact handles POST /api/checkout/contact
func (h *CheckoutHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.contactHandler.Handle(command.SubmitContactCommand{
		SessionID: id,
		Email:     req.Email,
	}); err != nil {
		h.respondError(w, err)
		return
	}

	h.respondState(w, id, "Contact saved")
}

// Back handles POST /api/checkout/back
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	if err := h.backHandler.Handle(command.BackToReviewCommand{SessionID: id}); err != nil {
		h.respondError(w, err)
		return
	}

	h.respondState(w, id, "Returned to review")
}

// SubmitPayment handles POST /api/checkout/payment
func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	var req struct {
		CardName   string `json:"cardName"`
		CardNumber string `json:"cardNumber"`
		Expiry     string `json:"expiry"`
		CVC        string `json:"cvc"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.paymentHandler.Handle(command.SubmitPaymentCommand{
		SessionID:  id,
		CardName:   req.CardName,
		CardNumber: req.CardNumber,
		Expiry:     req.Expiry,
		CVC:        req.CVC,
	}); err != nil {
		h.respondError(w, err)
		return
	}

	h.ordersPlaced.Inc()
	logger.Logger.Info().Str("sessionId", id).Msg("Payment submitted for processing")

	h.respondState(w, id, "Payment processing")
}

// Dismiss handles DELETE /api/checkout
func (h *CheckoutHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "X-Session-ID header is required",
		})
		return
	}

	if err := h.dismissHandler.Handle(command.DismissCheckoutCommand{SessionID: id}); err != nil {
		h.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Checkout dismissed",
	})
}

// respondState replies with the current checkout snapshot
func (h *CheckoutHandler) respondState(w http.ResponseWriter, sessionID, message string) {
	snapshot, err := h.getHandler.Handle(query.GetCheckoutQuery{SessionID: sessionID})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Session not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    snapshot,
	})
}

// respondError maps domain errors to HTTP statuses
func (h *CheckoutHandler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, sessiondomain.ErrSessionNotFound),
		errors.Is(err, catalogdomain.ErrBookNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrProcessing):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrEmailRequired),
		errors.Is(err, domain.ErrNotOpen),
		errors.Is(err, domain.ErrInvalidTransition):
		status = http.StatusBadRequest
	}

	respondJSON(w, status, Response{
		Success: false,
		Error:   err.Error(),
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
