// User HTTP handlers.
//
// This file exposes the REST endpoints for resolving identifiers and for the
// legacy quick-create surface:
//   - GET  /user/lookup/{identifier}  (also aliased at /userlookup/{identifier})
//   - POST /users                     (quick-create, deprecated)
package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jujurly/go-feedback-backend/internal/services"
)

// LookupResponse carries the canonical public identifier for a resolved user.
type LookupResponse struct {
	UserIdentifier string `json:"user_identifier" example:"jude"`
}

// QuickCreateResponse is returned by the deprecated quick-create endpoint.
type QuickCreateResponse struct {
	Message string `json:"message" example:"link berhasil dibuat"`
	UserID  uint   `json:"user_id" example:"42"`
	LinkID  string `json:"link_id" example:"a1b2c3d4"`
}

// pathIdentifier returns the :identifier route parameter with any residual
// percent-encoding removed. Front ends sometimes double-encode identifiers
// containing "@", so a decode failure falls back to the raw value.
func pathIdentifier(c *gin.Context) string {
	raw := c.Param("identifier")
	if dec, err := url.PathUnescape(raw); err == nil {
		raw = dec
	}
	return strings.TrimSpace(raw)
}

// LookupUser godoc
// @ID          lookupUser
// @Summary     Resolve an identifier
// @Description Resolves username, link id, or email (in that order) to the canonical public identifier.
// @Tags        Users
// @Produce     json
//
// @Param       identifier  path  string  true  "Username, link id, or email"  example(a1b2c3d4)
//
// @Success     200  {object} handlers.LookupResponse
// @Failure     404  {object} handlers.ErrorResponse "User not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /user/lookup/{identifier} [get]
func (h *Handlers) LookupUser(c *gin.Context) {
	identifier := pathIdentifier(c)

	u, kind, err := h.userSvc.Resolve(c.Request.Context(), identifier)
	if err != nil {
		if err == services.ErrUserNotFound {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	ok(c, http.StatusOK, LookupResponse{UserIdentifier: services.CanonicalValue(u, kind)})
}

// QuickCreateUser godoc
// @ID          quickCreateUser
// @Summary     Create a link-only user
// @Description Mints a user carrying only a sharing link id. Deprecated in favor of registration.
// @Tags        Users
// @Produce     json
// @Deprecated
//
// @Success     201  {object} handlers.QuickCreateResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /users [post]
func (h *Handlers) QuickCreateUser(c *gin.Context) {
	u, err := h.userSvc.QuickCreate(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, QuickCreateResponse{
		Message: "link berhasil dibuat",
		UserID:  u.ID,
		LinkID:  u.LinkID,
	})
}
