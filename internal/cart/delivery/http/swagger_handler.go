package http

// GetCart godoc
// @Summary Get cart
// @Description Get the cart for the signed-in user or anonymous device
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param X-Device-ID header string false "Device ID for guest sessions"
// @Success 200 {object} object{items=array,total_items=int,total_price=number}
// @Failure 400 {object} object{error=string}
// @Router /cart [get]
func (h *CartHandler) GetCartDoc() {}

// AddItem godoc
// @Summary Add product to cart
// @Description Add a product; an existing line for the product grows by the quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param X-Device-ID header string false "Device ID for guest sessions"
// @Param request body object{product_id=string,quantity=int} true "Product and quantity"
// @Success 200 {object} object{items=array,total_items=int,total_price=number}
// @Failure 404 {object} object{error=string}
// @Router /cart/items [post]
func (h *CartHandler) AddItemDoc() {}

// UpdateItem godoc
// @Summary Set line quantity
// @Description Replace a line quantity; zero or less removes the line
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param X-Device-ID header string false "Device ID for guest sessions"
// @Param productId path string true "Product ID"
// @Param request body object{quantity=int} true "New quantity"
// @Success 200 {object} object{items=array,total_items=int,total_price=number}
// @Failure 400 {object} object{error=string}
// @Router /cart/items/{productId} [put]
func (h *CartHandler) UpdateItemDoc() {}

// RemoveItem godoc
// @Summary Remove product from cart
// @Description Remove a line; removing an absent product is a no-op
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param X-Device-ID header string false "Device ID for guest sessions"
// @Param productId path string true "Product ID"
// @Success 200 {object} object{items=array,total_items=int,total_price=number}
// @Failure 400 {object} object{error=string}
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItemDoc() {}

// ClearCart godoc
// @Summary Clear cart
// @Description Empty the cart and delete its stored document
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param X-Device-ID header string false "Device ID for guest sessions"
// @Success 200 {object} object{items=array,total_items=int,total_price=number}
// @Failure 400 {object} object{error=string}
// @Router /cart [delete]
func (h *CartHandler) ClearCartDoc() {}
