// Feedback HTTP handlers.
//
// This file exposes the REST endpoints for the anonymous feedback flow:
//   - POST /feedback/{identifier}         (anonymous submission)
//   - GET  /users/{identifier}/feedbacks  (recipient listing, ETag support)
//
// Both endpoints resolve the path identifier through the user service before
// touching feedback, so an unknown identifier is a 404 regardless of payload.
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jujurly/go-feedback-backend/internal/repo"
	"github.com/jujurly/go-feedback-backend/internal/services"
)

// SubmitFeedbackRequest is the JSON payload for an anonymous submission.
// Only the feedback text is required; the rest is voluntary context the
// sender may attach.
type SubmitFeedbackRequest struct {
	FeedbackText   string  `json:"feedback_text" binding:"required" example:"Presentasimu kemarin jelas banget"`
	ContextText    *string `json:"context_text,omitempty" example:"sprint review"`
	AnonIdentifier *string `json:"anon_identifier,omitempty" example:"rekan satu tim"`
	AnonEmail      *string `json:"anon_email,omitempty" example:"anon@example.com"`
}

// SubmitFeedbackResponse acknowledges a stored submission.
type SubmitFeedbackResponse struct {
	Message    string `json:"message" example:"feedback terkirim"`
	FeedbackID uint   `json:"feedback_id" example:"7"`
}

// SubmitFeedback godoc
// @ID          submitFeedback
// @Summary     Submit anonymous feedback
// @Description Stores anonymous feedback for the user resolved from the identifier, enriched with sentiment, summary, and constructive criticism.
// @Tags        Feedback
// @Accept      json
// @Produce     json
//
// @Param       identifier  path  string                           true  "Username, link id, or email"  example(a1b2c3d4)
// @Param       body        body  handlers.SubmitFeedbackRequest  true  "Submission payload"
//
// @Success     201  {object} handlers.SubmitFeedbackResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing feedback text"
// @Failure     404  {object} handlers.ErrorResponse "User not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feedback/{identifier} [post]
func (h *Handlers) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "feedback_text is required")
		return
	}

	user, _, err := h.userSvc.Resolve(c.Request.Context(), pathIdentifier(c))
	if err != nil {
		if err == services.ErrUserNotFound {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	fb, err := h.fbSvc.Submit(c.Request.Context(), user, services.Submission{
		FeedbackText:   strings.TrimSpace(req.FeedbackText),
		ContextText:    req.ContextText,
		AnonIdentifier: req.AnonIdentifier,
		AnonEmail:      req.AnonEmail,
	})
	if err != nil {
		if err == services.ErrEmptyFeedback {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "feedback_text is required")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}

	ok(c, http.StatusCreated, SubmitFeedbackResponse{
		Message:    "feedback terkirim",
		FeedbackID: fb.ID,
	})
}

// ListFeedbacks godoc
// @ID          listFeedbacks
// @Summary     List feedback for a user
// @Description Returns the user's feedback newest first, with display context and decorated sentiment. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Feedback
// @Produce     json
//
// @Param       identifier     path    string  true  "Username, link id, or email"  example(a1b2c3d4)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"   example(W/\"feedbacks:42:3:1700000000\")
//
// @Success     200  {array}  services.FeedbackView
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     404  {object} handlers.ErrorResponse "User not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /users/{identifier}/feedbacks [get]
func (h *Handlers) ListFeedbacks(c *gin.Context) {
	ctx := c.Request.Context()

	user, _, err := h.userSvc.Resolve(ctx, pathIdentifier(c))
	if err != nil {
		if err == services.ErrUserNotFound {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, isConcrete := h.fbSvc.(*services.FeedbackService); isConcrete {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, statsErr := repo.FeedbackStats(ctx, db, user.ID)
		if statsErr == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"feedbacks:%d:%d:%d"`, user.ID, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	views, err := h.fbSvc.List(ctx, user)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, views)
}
