package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalogdomain "github.com/tair/duka-storefront/internal/catalog/domain"
	"github.com/tair/duka-storefront/internal/catalog/usecase/query"
	identityhttp "github.com/tair/duka-storefront/internal/identity/delivery/http"
	"github.com/tair/duka-storefront/internal/session"
	"github.com/tair/duka-storefront/internal/wishlist"
)

// DeviceIDHeader carries the anonymous device id for guest sessions
const DeviceIDHeader = "X-Device-ID"

// WishlistHandler handles HTTP requests for the wishlist
type WishlistHandler struct {
	registry   *wishlist.Registry
	getProduct *query.GetProductHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(registry *wishlist.Registry, catalogRepo catalogdomain.CatalogRepository) *WishlistHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wishlist_service_requests_total",
			Help: "Total number of requests to wishlist service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wishlist_service_request_duration_seconds",
			Help:    "Duration of wishlist service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &WishlistHandler{
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
func (h *WishlistHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// sessionFromRequest resolves the wishlist owner: a signed-in user when the
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

func (h *WishlistHandler) manager(w http.ResponseWriter, r *http.Request) (*wishlist.Manager, bool) {
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

type wishlistResponse struct {
	Products interface{} `json:"products"`
	Count    int         `json:"count"`
}

func (h *WishlistHandler) respondWishlist(w http.ResponseWriter, status int, m *wishlist.Manager) {
	h.respondJSON(w, status, wishlistResponse{
		Products: m.Products(),
		Count:    m.Len(),
	})
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}
	h.respondWishlist(w, http.StatusOK, m)
}

// AddItem handles POST /wishlist/items
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}

	var req struct {
		ProductID string `json:"product_id"`
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

	if err := m.Add(r.Context(), *product); err != nil {
		h.respondError(w, http.StatusConflict, err.Error())
		return
	}

	h.respondWishlist(w, http.StatusOK, m)
}

// RemoveItem handles DELETE /wishlist/items/{productId}
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	if err := m.Remove(r.Context(), vars["productId"]); err != nil {
		h.respondError(w, http.StatusConflict, err.Error())
		return
	}

	h.respondWishlist(w, http.StatusOK, m)
}

// ContainsItem handles GET /wishlist/items/{productId}
func (h *WishlistHandler) ContainsItem(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	h.respondJSON(w, http.StatusOK, map[string]bool{
		"in_wishlist": m.Contains(vars["productId"]),
	})
}

// ClearWishlist handles DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}

	if err := m.Clear(r.Context()); err != nil {
		h.respondError(w, http.StatusConflict, err.Error())
		return
	}

	h.respondWishlist(w, http.StatusOK, m)
}

// respondJSON sends a JSON response
func (h *WishlistHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *WishlistHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all wishlist routes
func (h *WishlistHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/wishlist", h.metricsMiddleware("/wishlist", identityhttp.OptionalAuth(h.GetWishlist))).Methods("GET")
	router.HandleFunc("/wishlist/items", h.metricsMiddleware("/wishlist/items", identityhttp.OptionalAuth(h.AddItem))).Methods("POST")
	router.HandleFunc("/wishlist/items/{productId}", h.metricsMiddleware("/wishlist/items/{productId}", identityhttp.OptionalAuth(h.ContainsItem))).Methods("GET")
	router.HandleFunc("/wishlist/items/{productId}", h.metricsMiddleware("/wishlist/items/{productId}", identityhttp.OptionalAuth(h.RemoveItem))).Methods("DELETE")
	router.HandleFunc("/wishlist", h.metricsMiddleware("/wishlist", identityhttp.OptionalAuth(h.ClearWishlist))).Methods("DELETE")
}
