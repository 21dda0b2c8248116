package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/duka-storefront/internal/catalog/domain"
	"github.com/tair/duka-storefront/internal/catalog/usecase/command"
	"github.com/tair/duka-storefront/internal/catalog/usecase/query"
	identityhttp "github.com/tair/duka-storefront/internal/identity/delivery/http"
	"github.com/tair/duka-storefront/kafka"
	"github.com/tair/duka-storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	// Command handlers
	createHandler         *command.CreateProductHandler
	updateHandler         *command.UpdateProductHandler
	deleteHandler         *command.DeleteProductHandler
	saveCategoryHandler   *command.SaveCategoryHandler
	deleteCategoryHandler *command.DeleteCategoryHandler

	// Query handlers
	listHandler       *query.ListProductsHandler
	getHandler        *query.GetProductHandler
	categoriesHandler *query.ListCategoriesHandler
	dealsHandler      *query.ListDealsHandler

	repo           domain.CatalogRepository
	publisher      *kafka.Publisher
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	catalogSize    prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler. The publisher may be nil
// when Kafka is disabled; admin writes then skip event publishing.
func NewCatalogHandler(repo domain.CatalogRepository, publisher *kafka.Publisher) *CatalogHandler {
	// Initialize command handlers
	createHandler := command.NewCreateProductHandler(repo)
	updateHandler := command.NewUpdateProductHandler(repo)
	deleteHandler := command.NewDeleteProductHandler(repo)
	saveCategoryHandler := command.NewSaveCategoryHandler(repo)
	deleteCategoryHandler := command.NewDeleteCategoryHandler(repo)

	// Initialize query handlers
	listHandler := query.NewListProductsHandler(repo)
	getHandler := query.NewGetProductHandler(repo)
	categoriesHandler := query.NewListCategoriesHandler(repo)
	dealsHandler := query.NewListDealsHandler(repo)

	// Initialize Prometheus metrics
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to catalog service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	catalogSize := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_service_products_total",
			Help: "Number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(catalogSize)

	return &CatalogHandler{
		createHandler:         createHandler,
		updateHandler:         updateHandler,
		deleteHandler:         deleteHandler,
		saveCategoryHandler:   saveCategoryHandler,
		deleteCategoryHandler: deleteCategoryHandler,
		listHandler:           listHandler,
		getHandler:            getHandler,
		categoriesHandler:     categoriesHandler,
		dealsHandler:          dealsHandler,
		repo:                  repo,
		publisher:             publisher,
		requestCounter:        requestCounter,
		requestLatency:        requestLatency,
		catalogSize:           catalogSize,
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
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// parseSelection builds a product selection from URL query parameters
func parseSelection(r *http.Request) domain.Selection {
	params := r.URL.Query()

	filter := domain.DefaultFilter()
	filter.Category = params.Get("category")

	if v := params.Get("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = f
		}
	}
	if v := params.Get("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = f
		}
	}
	if v := params.Get("brands"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				filter.Brands = append(filter.Brands, b)
			}
		}
	}
	if v := params.Get("min_rating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRating = f
		}
	}
	if v := params.Get("in_stock"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.InStockOnly = b
		}
	}

	selection := domain.Selection{
		Query:  params.Get("search"),
		Filter: filter,
	}

	switch domain.SortField(params.Get("sort_by")) {
	case domain.SortByPrice:
		selection.SortBy = domain.SortByPrice
	case domain.SortByRating:
		selection.SortBy = domain.SortByRating
	default:
		selection.SortBy = domain.SortByName
	}
	if domain.SortOrder(params.Get("sort_order")) == domain.SortDesc {
		selection.SortOrder = domain.SortDesc
	} else {
		selection.SortOrder = domain.SortAsc
	}

	return selection
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{Selection: parseSelection(r)}

	products, err := h.listHandler.Handle(q)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.updateCatalogSizeMetric()
	h.respondJSON(w, http.StatusOK, products)
}

// ListDeals handles GET /products/deals
func (h *CatalogHandler) ListDeals(w http.ResponseWriter, r *http.Request) {
	deals, err := h.dealsHandler.Handle(query.ListDealsQuery{Now: time.Now()})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, deals)
}

// GetProduct handles GET /products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: vars["id"]})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, product)
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoriesHandler.Handle(query.ListCategoriesQuery{})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, categories)
}

// --- ADMIN ENDPOINTS ---

type productRequest struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	Description   string           `json:"description"`
	Price         *float64         `json:"price"`
	OriginalPrice *float64         `json:"original_price"`
	Discount      *domain.Discount `json:"discount"`
	Image         string           `json:"image"`
	Images        []string         `json:"images"`
	Category      string           `json:"category"`
	Rating        *float64         `json:"rating"`
	Reviews       *int             `json:"reviews"`
	InStock       *bool            `json:"in_stock"`
	Features      []string         `json:"features"`
}

// CreateProduct handles POST /admin/products (admin only)
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreateProductCommand{
		ID:            req.ID,
		Name:          req.Name,
		Brand:         req.Brand,
		Description:   req.Description,
		OriginalPrice: req.OriginalPrice,
		Discount:      req.Discount,
		Image:         req.Image,
		Images:        req.Images,
		Category:      req.Category,
		Features:      req.Features,
	}
	if req.Price != nil {
		cmd.Price = *req.Price
	}
	if req.Rating != nil {
		cmd.Rating = *req.Rating
	}
	if req.Reviews != nil {
		cmd.Reviews = *req.Reviews
	}
	if req.InStock != nil {
		cmd.InStock = *req.InStock
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.publishEvent(r.Context(), kafka.CatalogEvent{
		EventType: kafka.EventTypeProductCreated,
		ProductID: product.ID,
	})
	h.updateCatalogSizeMetric()
	h.respondJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /admin/products/{id} (admin only)
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateProductCommand{
		ID:            vars["id"],
		Name:          req.Name,
		Brand:         req.Brand,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Discount:      req.Discount,
		Image:         req.Image,
		Images:        req.Images,
		Category:      req.Category,
		Rating:        req.Rating,
		Reviews:       req.Reviews,
		InStock:       req.InStock,
		Features:      req.Features,
	}

	product, err := h.updateHandler.Handle(cmd)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.publishEvent(r.Context(), kafka.CatalogEvent{
		EventType: kafka.EventTypeProductUpdated,
		ProductID: product.ID,
	})
	h.respondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/{id} (admin only)
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: vars["id"]}); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publishEvent(r.Context(), kafka.CatalogEvent{
		EventType: kafka.EventTypeProductDeleted,
		ProductID: vars["id"],
	})
	h.updateCatalogSizeMetric()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// SaveCategory handles PUT /admin/categories/{id} (admin only)
func (h *CatalogHandler) SaveCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Name  string `json:"name"`
		Icon  string `json:"icon"`
		Count int    `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.SaveCategoryCommand{
		ID:    vars["id"],
		Name:  req.Name,
		Icon:  req.Icon,
		Count: req.Count,
	}

	category, err := h.saveCategoryHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.publishEvent(r.Context(), kafka.CatalogEvent{
		EventType:  kafka.EventTypeCategoryChanged,
		CategoryID: category.ID,
	})
	h.respondJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /admin/categories/{id} (admin only)
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.deleteCategoryHandler.Handle(command.DeleteCategoryCommand{ID: vars["id"]}); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publishEvent(r.Context(), kafka.CatalogEvent{
		EventType:  kafka.EventTypeCategoryChanged,
		CategoryID: vars["id"],
	})
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}

// HealthCheck handles GET /health
func (h *CatalogHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		// Check database connectivity
		if err := db.PingContext(ctx); err != nil {
			h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

// publishEvent emits a catalog event after a successful admin write. The
// write itself has already been committed, so publish failures are logged
// and do not fail the request.
func (h *CatalogHandler) publishEvent(ctx context.Context, event kafka.CatalogEvent) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishCatalogEvent(ctx, event); err != nil {
		logger.Logger.Error().
			Err(err).
			Str("event_type", event.EventType).
			Msg("Failed to publish catalog event")
	}
}

// updateCatalogSizeMetric updates the catalog size gauge
func (h *CatalogHandler) updateCatalogSizeMetric() {
	count, err := h.repo.CountProducts()
	if err == nil {
		h.catalogSize.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func (h *CatalogHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *CatalogHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/products", h.metricsMiddleware("/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/products/deals", h.metricsMiddleware("/products/deals", h.ListDeals)).Methods("GET")
	router.HandleFunc("/products/{id}", h.metricsMiddleware("/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/categories", h.metricsMiddleware("/categories", h.ListCategories)).Methods("GET")

	// Admin routes
	router.HandleFunc("/admin/products", h.metricsMiddleware("/admin/products", identityhttp.AdminMiddleware(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/admin/products/{id}", h.metricsMiddleware("/admin/products/{id}", identityhttp.AdminMiddleware(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/admin/products/{id}", h.metricsMiddleware("/admin/products/{id}", identityhttp.AdminMiddleware(h.DeleteProduct))).Methods("DELETE")
	router.HandleFunc("/admin/categories/{id}", h.metricsMiddleware("/admin/categories/{id}", identityhttp.AdminMiddleware(h.SaveCategory))).Methods("PUT")
	router.HandleFunc("/admin/categories/{id}", h.metricsMiddleware("/admin/categories/{id}", identityhttp.AdminMiddleware(h.DeleteCategory))).Methods("DELETE")
}

// RegisterHealthCheck registers health check endpoint
func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", h.HealthCheck(db)).Methods("GET")
}
