package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/duka-storefront/internal/cart"
	catalogdomain "github.com/tair/duka-storefront/internal/catalog/domain"
	"github.com/tair/duka-storefront/internal/catalog/usecase/query"
	identityhttp "github.com/tair/duka-storefront/internal/identity/delivery/http"
	"github.com/tair/duka-storefront/internal/session"
)

// DeviceIDHeader carries the anonymous device id for guest sessions
const DeviceIDHeader = "X-Device-ID"

// CartHandler handles HTTP requests for the shopping cart
type CartHandler struct {
	registry   *cart.Registry
	getProduct *query.GetProductHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCartHandler creates a new cart handler
func NewCartHandler(registry *cart.Registry, catalogRepo catalogdomain.CatalogRepository) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_service_requests_total",
			Help: "Total number of requests to cart service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_service_request_duration_seconds",
			Help:    "Duration of cart service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CartHandler{
		registry:       registry,
		getProduct:     query.NewGetProductHandler(catalogRepo),
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
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
func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// sessionFromRequest resolves the cart owner: a signed-in user when the
// optional auth middleware attached claims, otherwise the anonymous device
// id from the X-Device-ID header.
func sessionFromRequest(r *http.Request) (session.Session, error) {
	if userID, ok := r.Context().Value(identityhttp.UserIDKey).(uint); ok {
		return session.User(userID), nil
	}
	deviceID := r.Header.Get(DeviceIDHeader)
	if deviceID == "" {
		return session.Session{}, errors.New("X-Device-ID header required for guest sessions")
	}
	return session.Device(deviceID), nil
}

func (h *CartHandler) manager(w http.ResponseWriter, r *http.Request) (*cart.Manager, bool) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	m, err := h.registry.Manager(r.Context(), sess)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return m, true
}

type cartResponse struct {
	Items      interface{} `json:"items"`
	TotalItems int         `json:"total_items"`
	TotalPrice float64     `json:"total_price"`
}

func (h *CartHandler) respondCart(w http.ResponseWriter, status int, m *cart.Manager) {
	h.respondJSON(w, status, cartResponse{
		Items:      m.Items(),
		TotalItems: m.TotalItems(),
		TotalPrice: m.TotalPrice(),
	})
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}
	h.respondCart(w, http.StatusOK, m)
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}

	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.getProduct.Handle(query.GetProductQuery{ID: req.ProductID})
	if err != nil {
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := m.Add(r.Context(), *product, req.Quantity); err != nil {
		h.respondError(w, http.StatusConflict, err.Error())
		return
	}

	h.respondCart(w, http.StatusOK, m)
}

// UpdateItem handles PUT /cart/items/{productId}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vars := mux.Vars(r)
	if err := m.SetQuantity(r.Context(), vars["productId"], req.Quantity); err != nil {
		h.respondError(w, http.StatusConflict, err.Error())
		return
	}

	h.respondCart(w, http.StatusOK, m)
}

// RemoveItem handles DELETE /cart/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	if err := m.Remove(r.Context(), vars["productId"]); err != nil {
		h.respondError(w, http.StatusConflict, err.Error())
		return
	}

	h.respondCart(w, http.StatusOK, m)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}

	if err := m.Clear(r.Context()); err != nil {
		h.respondError(w, http.StatusConflict, err.Error())
		return
	}

	h.respondCart(w, http.StatusOK, m)
}

// respondJSON sends a JSON response
func (h *CartHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *CartHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/cart", h.metricsMiddleware("/cart", identityhttp.OptionalAuth(h.GetCart))).Methods("GET")
	router.HandleFunc("/cart/items", h.metricsMiddleware("/cart/items", identityhttp.OptionalAuth(h.AddItem))).Methods("POST")
	router.HandleFunc("/cart/items/{productId}", h.metricsMiddleware("/cart/items/{productId}", identityhttp.OptionalAuth(h.UpdateItem))).Methods("PUT")
	router.HandleFunc("/cart/items/{productId}", h.metricsMiddleware("/cart/items/{productId}", identityhttp.OptionalAuth(h.RemoveItem))).Methods("DELETE")
	router.HandleFunc("/cart", h.metricsMiddleware("/cart", identityhttp.OptionalAuth(h.ClearCart))).Methods("DELETE")
}
