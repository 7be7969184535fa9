package http

// ListBooks godoc
// @Summary List or search books
// @Description Case-insensitive substring match over title, author and category
// @Tags Catalog
// @Produce json
// @Param q query string false "Search query"
// @Param limit query int false "Page size (default 24)"
// @Param offset query int false "Page offset"
// @Success 200 {object} object{success=bool,data=object{books=array,total=int}}
// @Router /api/books [get]
func (h *CatalogHandler) ListBooksDoc() {}

// Home godoc
// @Summary Reset the active query and list the catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{books=array,total=int}}
// @Router /api/books/home [get]
func (h *CatalogHandler) HomeDoc() {}

// GetBook godoc
// @Summary Book details
// @Tags Catalog
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/books/{id} [get]
func (h *CatalogHandler) GetBookDoc() {}

// GetSample godoc
// @Summary One page of the book sample
// @Description Ten deterministic pages per book
// @Tags Catalog
// @Produce json
// @Param id path string true "Book id"
// @Param page query int false "Page number (1-10)"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/books/{id}/sample [get]
func (h *CatalogHandler) GetSampleDoc() {}

// GetStats godoc
// @Summary Catalog statistics
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{totalBooks=int,categories=object,averageRating=number}}
// @Router /api/books/stats [get]
func (h *CatalogHandler) GetStatsDoc() {}
