package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListProducts godoc
// @Summary List products
// @Description List catalog products with search, filtering and sorting
// @Tags Catalog
// @Produce json
// @Param search query string false "Search query (name, brand, description)"
// @Param category query string false "Category ID"
// @Param min_price query number false "Minimum price (inclusive)"
// @Param max_price query number false "Maximum price (inclusive)"
// @Param brands query string false "Comma-separated brand names"
// @Param min_rating query number false "Minimum rating"
// @Param in_stock query bool false "Only in-stock products"
// @Param sort_by query string false "Sort field (name/price/rating)"
// @Param sort_order query string false "Sort order (asc/desc)"
// @Success 200 {array} object{id=string,name=string,brand=string,price=number,category=string,rating=number,in_stock=bool}
// @Failure 500 {object} object{error=string}
// @Router /products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// ListDeals godoc
// @Summary List deals
// @Description List products with an active, unexpired discount
// @Tags Catalog
// @Produce json
// @Success 200 {array} object{id=string,name=string,price=number,discount=object}
// @Failure 500 {object} object{error=string}
// @Router /products/deals [get]
func (h *CatalogHandler) ListDealsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a single catalog product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{id=string,name=string,brand=string,price=number,category=string}
// @Failure 404 {object} object{error=string}
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// ListCategories godoc
// @Summary List categories
// @Description List catalog categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} object{id=string,name=string,icon=string,count=int}
// @Failure 500 {object} object{error=string}
// @Router /categories [get]
func (h *CatalogHandler) ListCategoriesDoc() {}

// CreateProduct godoc
// @Summary Create product (admin)
// @Description Admin endpoint to add a product to the catalog
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,brand=string,description=string,price=number,category=string,in_stock=bool} true "Product data"
// @Success 201 {object} object{id=string,name=string,price=number}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /admin/products [post]
func (h *CatalogHandler) CreateProductDoc() {}

// UpdateProduct godoc
// @Summary Update product (admin)
// @Description Admin endpoint to update product fields
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body object{name=string,price=number,in_stock=bool} true "Fields to update"
// @Success 200 {object} object{id=string,name=string,price=number}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /admin/products/{id} [put]
func (h *CatalogHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete product (admin)
// @Description Admin endpoint to remove a product from the catalog
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /admin/products/{id} [delete]
func (h *CatalogHandler) DeleteProductDoc() {}

// SaveCategory godoc
// @Summary Create or update category (admin)
// @Description Admin endpoint to create a category or replace it by ID
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body object{name=string,icon=string,count=int} true "Category data"
// @Success 200 {object} object{id=string,name=string,icon=string,count=int}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /admin/categories/{id} [put]
func (h *CatalogHandler) SaveCategoryDoc() {}

// DeleteCategory godoc
// @Summary Delete category (admin)
// @Description Admin endpoint to remove a category
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Router /admin/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategoryDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func (h *CatalogHandler) HealthCheckDoc() {}
