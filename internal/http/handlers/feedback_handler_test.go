package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jujurly/go-feedback-backend/internal/domain"
	"github.com/jujurly/go-feedback-backend/internal/enrich"
	"github.com/jujurly/go-feedback-backend/internal/repo"
	"github.com/jujurly/go-feedback-backend/internal/services"
)

func TestSubmitFeedback_Created(t *testing.T) {
	u := &stubUserSvc{resolveUser: testUser(), resolveKind: services.MatchLinkID}
	f := &stubFeedbackSvc{submitFb: &domain.Feedback{ID: 7, UserID: 42}}
	r := newTestRouter(u, f)

	w := doJSON(t, r, http.MethodPost, "/api/feedback/a1b2c3d4",
		`{"feedback_text":"kerjamu rapi","context_text":"sprint review"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp SubmitFeedbackResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.FeedbackID != 7 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if f.gotSubmission.FeedbackText != "kerjamu rapi" {
		t.Fatalf("submission not forwarded: %+v", f.gotSubmission)
	}
	if f.gotSubmission.ContextText == nil || *f.gotSubmission.ContextText != "sprint review" {
		t.Fatalf("context not forwarded: %+v", f.gotSubmission)
	}
}

func TestSubmitFeedback_UnknownUser(t *testing.T) {
	u := &stubUserSvc{resolveErr: services.ErrUserNotFound}
	f := &stubFeedbackSvc{}
	r := newTestRouter(u, f)

	w := doJSON(t, r, http.MethodPost, "/api/feedback/ghost",
		`{"feedback_text":"halo"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSubmitFeedback_MissingText(t *testing.T) {
	u := &stubUserSvc{resolveUser: testUser()}
	r := newTestRouter(u, &stubFeedbackSvc{})

	for _, body := range []string{`{}`, `{"feedback_text":""}`, `{"context_text":"x"}`} {
		w := doJSON(t, r, http.MethodPost, "/api/feedback/a1b2c3d4", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}

func TestSubmitFeedback_WhitespaceTextRejectedByService(t *testing.T) {
	u := &stubUserSvc{resolveUser: testUser()}
	f := &stubFeedbackSvc{submitErr: services.ErrEmptyFeedback}
	r := newTestRouter(u, f)

	w := doJSON(t, r, http.MethodPost, "/api/feedback/a1b2c3d4",
		`{"feedback_text":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListFeedbacks_OK(t *testing.T) {
	u := &stubUserSvc{resolveUser: testUser(), resolveKind: services.MatchUsername}
	f := &stubFeedbackSvc{listViews: []services.FeedbackView{
		{ID: 2, UserID: 42, FeedbackText: "kedua", Sentiment: "Netral Aja 😐", DisplayContext: "kedua"},
		{ID: 1, UserID: 42, FeedbackText: "pertama", Sentiment: "Positif Banget 😊", DisplayContext: "pertama"},
	}}
	r := newTestRouter(u, f)

	w := doJSON(t, r, http.MethodGet, "/api/users/jude/feedbacks", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var views []services.FeedbackView
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 2 || views[0].ID != 2 {
		t.Fatalf("unexpected views: %+v", views)
	}
	if !strings.Contains(w.Body.String(), `"display_context"`) {
		t.Fatalf("missing display_context field: %s", w.Body.String())
	}
}

func TestListFeedbacks_UnknownUser(t *testing.T) {
	u := &stubUserSvc{resolveErr: services.ErrUserNotFound}
	r := newTestRouter(u, &stubFeedbackSvc{})

	w := doJSON(t, r, http.MethodGet, "/api/users/ghost/feedbacks", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

// ETag behavior needs the concrete FeedbackService so the handler can reach
// the DB for stats.
func TestListFeedbacks_ETag(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:fbhandler?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Feedback{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	db.Exec("DELETE FROM feedbacks")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	user, err := repo.CreateLinkOnlyUser(ctx, db, "etag0001")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := repo.CreateFeedback(ctx, db, &domain.Feedback{
		UserID:       user.ID,
		FeedbackText: "isi",
		Sentiment:    enrich.FallbackSentiment,
	}); err != nil {
		t.Fatalf("seed feedback: %v", err)
	}

	fbSvc := services.NewFeedbackService(db, realFeedbackRepo{}, enrich.Disabled(nil))
	u := &stubUserSvc{resolveUser: user, resolveKind: services.MatchLinkID}
	r := newTestRouter(u, fbSvc)

	// First request yields the ETag.
	w := doJSON(t, r, http.MethodGet, "/api/users/etag0001/feedbacks", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	etag := w.Header().Get("ETag")
	if !strings.HasPrefix(etag, `W/"feedbacks:`) {
		t.Fatalf("unexpected ETag %q", etag)
	}

	// Replaying it yields 304.
	req := doJSONWithHeader(t, r, http.MethodGet, "/api/users/etag0001/feedbacks", "If-None-Match", etag)
	if req.Code != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", req.Code)
	}
}

func doJSONWithHeader(t *testing.T, r *gin.Engine, method, path, key, val string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(key, val)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type realFeedbackRepo struct{}

func (realFeedbackRepo) CreateFeedback(ctx context.Context, db *gorm.DB, fb *domain.Feedback) (*domain.Feedback, error) {
	return repo.CreateFeedback(ctx, db, fb)
}
func (realFeedbackRepo) ListFeedbackForUser(ctx context.Context, db *gorm.DB, userID uint) ([]domain.Feedback, error) {
	return repo.ListFeedbackForUser(ctx, db, userID)
}
