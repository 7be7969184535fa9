package http

// GetCart godoc
// @Summary Cart contents with totals
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} object{success=bool,data=object{items=array,total=number,count=int}}
// @Router /api/cart [get]
func (h *CartHandler) GetCartDoc() {}

// AddItem godoc
// @Summary Add a book to the cart
// @Description Adding an existing line bumps its quantity; also opens the cart drawer
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body object{bookId=string} true "Book to add"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/cart/items [post]
func (h *CartHandler) AddItemDoc() {}

// UpdateQuantity godoc
// @Summary Apply a quantity delta
// @Description Quantity never drops below 1; use DELETE to remove a line
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param bookId path string true "Book id"
// @Param request body object{delta=int} true "Quantity delta"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/cart/items/{bookId} [patch]
func (h *CartHandler) UpdateQuantityDoc() {}

// RemoveItem godoc
// @Summary Remove an item
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param bookId path string true "Book id"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/cart/items/{bookId} [delete]
func (h *CartHandler) RemoveItemDoc() {}
