package http

// Recommend godoc
// @Summary Ask the AI librarian
// @Description Returns recommended books; degrades to an empty list when the AI service fails
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body object{query=string} true "What the reader is in the mood for"
// @Success 200 {object} object{success=bool,data=object{books=array,query=string}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/recommendations [post]
func (h *RecommendHandler) RecommendDoc() {}

// Clear godoc
// @Summary Clear recommendations
// @Tags Recommendations
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} object{success=bool,message=string}
// @Router /api/recommendations [delete]
func (h *RecommendHandler) ClearDoc() {}
