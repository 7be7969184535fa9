package http

// Open godoc
// @Summary Open checkout
// @Description Refused while the cart is empty
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/checkout [post]
func (h *CheckoutHandler) OpenDoc() {}

// Get godoc
// @Summary Current checkout state
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} object{success=bool,data=object{open=bool,state=string,email=string,transactionId=string}}
// @Router /api/checkout [get]
func (h *CheckoutHandler) GetDoc() {}

// BuyNow godoc
// @Summary Buy a book immediately
// @Description Adds the book to the cart and opens checkout in one step
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body object{bookId=string} true "Book to buy"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/checkout/buy-now [post]
func (h *CheckoutHandler) BuyNowDoc() {}

// SubmitContact godoc
// @Summary Submit contact email
// @Description Moves review to payment; a blank email is refused
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body object{email=string} true "Contact email"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/checkout/contact [post]
func (h *CheckoutHandler) SubmitContactDoc() {}

// Back godoc
// @Summary Return to order review
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/checkout/back [post]
func (h *CheckoutHandler) BackDoc() {}

// SubmitPayment godoc
// @Summary Submit payment for processing
// @Description Always settles after a short processing delay; card details are normalized and discarded
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body object{cardName=string,cardNumber=string,expiry=string,cvc=string} true "Card details"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/checkout/payment [post]
func (h *CheckoutHandler) SubmitPaymentDoc() {}

// Dismiss godoc
// @Summary Dismiss checkout
// @Description Ignored while a payment is processing; during the success dwell it completes the order
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/checkout [delete]
func (h *CheckoutHandler) DismissDoc() {}
