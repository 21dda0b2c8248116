package http

// GetWishlist godoc
// @Summary Get wishlist
// @Description Get the wishlist for the signed-in user or anonymous device
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param X-Device-ID header string false "Device ID for guest sessions"
// @Success 200 {object} object{products=array,count=int}
// @Failure 400 {object} object{error=string}
// @Router /wishlist [get]
func (h *WishlistHandler) GetWishlistDoc() {}

// AddItem godoc
// @Summary Add product to wishlist
// @Description Add a product; adding a product already present is a no-op
// @Tags Wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param X-Device-ID header string false "Device ID for guest sessions"
// @Param request body object{product_id=string} true "Product ID"
// @Success 200 {object} object{products=array,count=int}
// @Failure 404 {object} object{error=string}
// @Router /wishlist/items [post]
func (h *WishlistHandler) AddItemDoc() {}

// ContainsItem godoc
// @Summary Check wishlist membership
// @Description Report whether a product is on the wishlist
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param X-Device-ID header string false "Device ID for guest sessions"
// @Param productId path string true "Product ID"
// @Success 200 {object} object{in_wishlist=bool}
// @Failure 400 {object} object{error=string}
// @Router /wishlist/items/{productId} [get]
func (h *WishlistHandler) ContainsItemDoc() {}

// RemoveItem godoc
// @Summary Remove product from wishlist
// @Description Remove a product; removing an absent product is a no-op
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param X-Device-ID header string false "Device ID for guest sessions"
// @Param productId path string true "Product ID"
// @Success 200 {object} object{products=array,count=int}
// @Failure 400 {object} object{error=string}
// @Router /wishlist/items/{productId} [delete]
func (h *WishlistHandler) RemoveItemDoc() {}

// ClearWishlist godoc
// @Summary Clear wishlist
// @Description Empty the wishlist and delete its stored document
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param X-Device-ID header string false "Device ID for guest sessions"
// @Success 200 {object} object{products=array,count=int}
// @Failure 400 {object} object{error=string}
// @Router /wishlist [delete]
func (h *WishlistHandler) ClearWishlistDoc() {}
