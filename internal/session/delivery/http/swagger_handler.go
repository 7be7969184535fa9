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

// OpenSession godoc
// @Summary Open a storefront session
// @Description Issue a session id; all storefront state hangs off it
// @Tags Session
// @Produce json
// @Success 201 {object} object{success=bool,data=object{id=string,view=object}}
// @Router /api/session [post]
func (h *SessionHandler) OpenSessionDoc() {}

// GetSession godoc
// @Summary Get session snapshot
// @Description Everything the client needs to render: user, view flags, cart summary, active query
// @Tags Session
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/session [get]
func (h *SessionHandler) GetSessionDoc() {}

// UpdateView godoc
// @Summary Toggle drawers and modals
// @Description Partial update; omitted fields keep their value
// @Tags Session
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body object{cartOpen=bool,loginOpen=bool,selectedBookId=string,samplingBookId=string} true "View changes"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/session/view [patch]
func (h *SessionHandler) UpdateViewDoc() {}

// Login godoc
// @Summary Sign in
// @Description Accepts any email and name; the password is never checked
// @Tags Auth
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body object{email=string,name=string,password=string} true "Login data"
// @Success 200 {object} object{success=bool,data=object{token=string,user=object}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/auth/login [post]
func (h *SessionHandler) LoginDoc() {}

// Logout godoc
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} object{success=bool,message=string}
// @Router /api/auth/logout [post]
func (h *SessionHandler) LogoutDoc() {}

// Me godoc
// @Summary Current user from bearer token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{email=string,name=string}}
// @Failure 401 {object} object{error=string}
// @Router /api/auth/me [get]
func (h *SessionHandler) MeDoc() {}
