// Auth HTTP handlers.
//
// This file exposes the REST endpoints for account registration and login:
//   - POST /auth/register
//   - POST /auth/login
//
// It also declares the service contracts and the Handlers wiring shared by
// every handler file in this package. Handlers are transport-thin: they
// validate input, call application services, and translate service errors
// into HTTP results.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jujurly/go-feedback-backend/internal/domain"
	"github.com/jujurly/go-feedback-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// UserService defines the identity operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type UserService interface {
	// Register creates an account with a hashed password and a fresh link id.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Authenticate verifies a password for the user matched by identifier.
	Authenticate(ctx context.Context, identifier, password string) (*domain.User, error)
	// QuickCreate mints a link-only user (legacy surface).
	QuickCreate(ctx context.Context) (*domain.User, error)
	// Resolve maps an identifier to a user: username, then link id, then email.
	Resolve(ctx context.Context, identifier string) (*domain.User, services.MatchKind, error)
}

// FeedbackService defines the feedback operations consumed by HTTP handlers.
type FeedbackService interface {
	// Submit validates, enriches, and persists one anonymous submission.
	Submit(ctx context.Context, user *domain.User, sub services.Submission) (*domain.Feedback, error)
	// List returns the user's feedback as display-ready views, newest first.
	List(ctx context.Context, user *domain.User) ([]services.FeedbackView, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for identities and feedback. It depends
// on abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	userSvc UserService
	fbSvc   FeedbackService
}

// New constructs a Handlers instance bound to the given services.
func New(userSvc UserService, fbSvc FeedbackService) *Handlers {
	return &Handlers{userSvc: userSvc, fbSvc: fbSvc}
}

//
// DTOs
//

// RegisterRequest is the JSON payload for creating an account. Validation is
// presence-only; formats and lengths are not policed.
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"jude"`
	Email    string `json:"email" binding:"required" example:"jude@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// LoginRequest is the JSON payload for logging in. Identifier accepts either
// the username or the email.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required" example:"jude"`
	Password   string `json:"password" binding:"required" example:"s3cret-pass"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Message  string `json:"message" example:"login berhasil"`
	UserID   uint   `json:"user_id" example:"42"`
	Username string `json:"username,omitempty" example:"jude"`
	Email    string `json:"email,omitempty" example:"jude@example.com"`
	LinkID   string `json:"link_id" example:"a1b2c3d4"`
}

func authResponse(msg string, u *domain.User) AuthResponse {
	resp := AuthResponse{Message: msg, UserID: u.ID, LinkID: u.LinkID}
	if u.Username != nil {
		resp.Username = *u.Username
	}
	if u.Email != nil {
		resp.Email = *u.Email
	}
	return resp
}

//
// Handlers
//

// Register godoc
// @ID          register
// @Summary     Register an account
// @Description Creates an account with username, email, and password, and returns its sharing link id.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
//
// @Success     201  {object} handlers.AuthResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     409  {object} handlers.ErrorResponse "Username or email already taken"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /auth/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username, email, and password are required")
		return
	}

	u, err := h.userSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch err {
		case services.ErrUsernameTaken:
			fail(c, http.StatusConflict, ErrCodeConflict, "username already exists")
		case services.ErrEmailTaken:
			fail(c, http.StatusConflict, ErrCodeConflict, "email already registered")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, authResponse("registrasi berhasil", u))
}

// Login godoc
// @ID          login
// @Summary     Log in
// @Description Verifies credentials by username or email and returns the account's sharing link id.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object} handlers.AuthResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     401  {object} handlers.ErrorResponse "Invalid credentials"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "identifier and password are required")
		return
	}

	u, err := h.userSvc.Authenticate(c.Request.Context(), strings.TrimSpace(req.Identifier), req.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	ok(c, http.StatusOK, authResponse("login berhasil", u))
}
