package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/jujurly/go-feedback-backend/internal/domain"
	"github.com/jujurly/go-feedback-backend/internal/services"
)

func TestLookupUser_ReturnsCanonicalIdentifier(t *testing.T) {
	cases := []struct {
		name string
		kind services.MatchKind
		want string
	}{
		{"username match", services.MatchUsername, "jude"},
		{"email match", services.MatchEmail, "jude@example.com"},
		{"link id match", services.MatchLinkID, "a1b2c3d4"},
	}
	for _, tc := range cases {
		u := &stubUserSvc{resolveUser: testUser(), resolveKind: tc.kind}
		r := newTestRouter(u, &stubFeedbackSvc{})

		w := doJSON(t, r, http.MethodGet, "/api/user/lookup/whatever", "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", tc.name, w.Code)
		}
		var resp LookupResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		if resp.UserIdentifier != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, resp.UserIdentifier, tc.want)
		}
	}
}

func TestLookupUser_NotFound(t *testing.T) {
	u := &stubUserSvc{resolveErr: services.ErrUserNotFound}
	r := newTestRouter(u, &stubFeedbackSvc{})

	w := doJSON(t, r, http.MethodGet, "/api/user/lookup/ghost", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"code":"not_found"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestLookupUser_DecodesEscapedIdentifier(t *testing.T) {
	u := &stubUserSvc{resolveUser: testUser(), resolveKind: services.MatchEmail}
	r := newTestRouter(u, &stubFeedbackSvc{})

	w := doJSON(t, r, http.MethodGet, "/api/user/lookup/jude%40example.com", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if u.gotIdentifier != "jude@example.com" {
		t.Fatalf("identifier not decoded: %q", u.gotIdentifier)
	}
}

func TestQuickCreateUser(t *testing.T) {
	u := &stubUserSvc{quickUser: &domain.User{ID: 7, LinkID: "qqqq0001"}}
	r := newTestRouter(u, &stubFeedbackSvc{})

	w := doJSON(t, r, http.MethodPost, "/api/users", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	var resp QuickCreateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.UserID != 7 || resp.LinkID != "qqqq0001" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestQuickCreateUser_Error(t *testing.T) {
	u := &stubUserSvc{quickErr: errors.New("db down")}
	r := newTestRouter(u, &stubFeedbackSvc{})

	w := doJSON(t, r, http.MethodPost, "/api/users", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
