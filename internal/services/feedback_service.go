// Package services – FeedbackService
//
// This file implements the FeedbackService, which governs the submission and
// retrieval of anonymous feedback. Submission validates the body, obtains
// the enrichment triple from the injected Summarizer (degrading to fixed
// fallback strings on any enrichment failure), and persists the record.
// Listing returns records newest-first and derives the display-oriented
// fields (display context, sentiment decoration) used by the recipient UI.
package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jujurly/go-feedback-backend/internal/domain"
	"github.com/jujurly/go-feedback-backend/internal/enrich"
	"github.com/jujurly/go-feedback-backend/internal/utils"
)

const (
	// displayContextMaxRunes caps the feedback-body preview used when a
	// submission carries neither context nor sender identifier.
	displayContextMaxRunes = 75

	// displayContextPlaceholder is shown when nothing usable exists at all.
	displayContextPlaceholder = "Tidak ada konteks"

	emojiPositive = " 😊"
	emojiNegative = " 😟"
	emojiNeutral  = " 😐"
)

// FeedbackRepo defines the repository contract required by FeedbackService.
type FeedbackRepo interface {
	// CreateFeedback persists a submission with its enrichment triple.
	CreateFeedback(ctx context.Context, db *gorm.DB, fb *domain.Feedback) (*domain.Feedback, error)

	// ListFeedbackForUser returns a user's feedback, newest first.
	ListFeedbackForUser(ctx context.Context, db *gorm.DB, userID uint) ([]domain.Feedback, error)
}

// FeedbackService implements the use-cases around anonymous feedback.
// The Summarizer is an injected dependency so tests can substitute a fake
// and the HTTP layer stays unaware of the provider behind it.
type FeedbackService struct {
	// DB is the database handle used for all feedback operations.
	DB *gorm.DB
	// Repo is the feedback repository used by this service.
	Repo FeedbackRepo
	// Summarizer produces the enrichment triple for each submission.
	Summarizer enrich.Summarizer
}

// NewFeedbackService constructs a FeedbackService.
func NewFeedbackService(db *gorm.DB, r FeedbackRepo, s enrich.Summarizer) *FeedbackService {
	return &FeedbackService{DB: db, Repo: r, Summarizer: s}
}

// Submission carries the caller-supplied fields of one anonymous submission.
// Only FeedbackText is required.
type Submission struct {
	FeedbackText   string
	ContextText    *string
	AnonIdentifier *string
	AnonEmail      *string
}

// Submit validates, enriches, and persists one anonymous submission for the
// already-resolved recipient.
//
// Semantics:
//   - FeedbackText must be non-empty after trimming; otherwise
//     ErrEmptyFeedback.
//   - The Summarizer is called exactly once, synchronously. Any enrichment
//     error is logged and absorbed: the record is stored with the fixed
//     fallback triple and the submission still succeeds.
//   - CreatedAt is assigned by the store, never by the caller.
func (s *FeedbackService) Submit(ctx context.Context, user *domain.User, sub Submission) (*domain.Feedback, error) {
	tr := otel.Tracer("services/FeedbackService")
	ctx, span := tr.Start(ctx, "Submit",
		trace.WithAttributes(attribute.Int("user.id", int(user.ID))),
	)
	defer span.End()

	if strings.TrimSpace(sub.FeedbackText) == "" {
		return nil, ErrEmptyFeedback
	}

	result, err := s.summarize(ctx, sub)
	if err != nil {
		log.Warn().Err(err).
			Uint("user_id", user.ID).
			Msg("feedback enrichment failed; storing fallback values")
		span.SetAttributes(attribute.Bool("enrichment.fallback", true))
	}

	fb := &domain.Feedback{
		UserID:                user.ID,
		AnonIdentifier:        sub.AnonIdentifier,
		FeedbackText:          sub.FeedbackText,
		ContextText:           sub.ContextText,
		AnonEmail:             sub.AnonEmail,
		Sentiment:             result.Sentiment,
		Summary:               result.Summary,
		ConstructiveCriticism: result.ConstructiveCriticism,
	}
	return s.Repo.CreateFeedback(ctx, s.DB, fb)
}

// summarize calls the injected Summarizer, guarding against a nil dependency
// so a partially wired service still degrades instead of panicking.
func (s *FeedbackService) summarize(ctx context.Context, sub Submission) (enrich.Result, error) {
	if s.Summarizer == nil {
		return enrich.Fallback(), enrich.ErrNotConfigured
	}
	return s.Summarizer.Summarize(ctx, enrich.Payload{
		AnonIdentifier: deref(sub.AnonIdentifier),
		ContextText:    deref(sub.ContextText),
		FeedbackText:   sub.FeedbackText,
	})
}

// FeedbackView is one listing row: the stored record plus the derived
// display fields. Sentiment carries the emoji decoration; the raw stored
// label remains untouched in the database.
type FeedbackView struct {
	ID                    uint      `json:"id"`
	UserID                uint      `json:"user_id"`
	FeedbackText          string    `json:"feedback_text"`
	ContextText           *string   `json:"context_text"`
	AnonIdentifier        *string   `json:"anon_identifier"`
	Sentiment             string    `json:"sentiment"`
	Summary               string    `json:"summary"`
	ConstructiveCriticism string    `json:"constructive_criticism"`
	DisplayContext        string    `json:"display_context"`
	IsRead                bool      `json:"is_read"`
	CreatedAt             time.Time `json:"created_at"`
}

// List returns the user's feedback ordered by creation time descending,
// each row augmented with the derived display context and the decorated
// sentiment label.
func (s *FeedbackService) List(ctx context.Context, user *domain.User) ([]FeedbackView, error) {
	tr := otel.Tracer("services/FeedbackService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(attribute.Int("user.id", int(user.ID))),
	)
	defer span.End()

	rows, err := s.Repo.ListFeedbackForUser(ctx, s.DB, user.ID)
	if err != nil {
		return nil, err
	}
	out := make([]FeedbackView, 0, len(rows))
	for _, fb := range rows {
		out = append(out, FeedbackView{
			ID:                    fb.ID,
			UserID:                fb.UserID,
			FeedbackText:          fb.FeedbackText,
			ContextText:           fb.ContextText,
			AnonIdentifier:        fb.AnonIdentifier,
			Sentiment:             DecorateSentiment(fb.Sentiment),
			Summary:               fb.Summary,
			ConstructiveCriticism: fb.ConstructiveCriticism,
			DisplayContext:        DisplayContext(fb),
			IsRead:                fb.IsRead,
			CreatedAt:             fb.CreatedAt,
		})
	}
	return out, nil
}

// DisplayContext derives the one-line context shown next to a feedback item:
// the context text when non-trivial, else the sender identifier, else a
// 75-rune prefix of the body with an ellipsis, else a fixed placeholder.
func DisplayContext(fb domain.Feedback) string {
	if v := strings.TrimSpace(deref(fb.ContextText)); v != "" {
		return v
	}
	if v := strings.TrimSpace(deref(fb.AnonIdentifier)); v != "" {
		return v
	}
	if body := strings.TrimSpace(fb.FeedbackText); body != "" {
		return utils.TruncateRunes(body, displayContextMaxRunes, "...")
	}
	return displayContextPlaceholder
}

// DecorateSentiment appends an emoji to the stored sentiment label, chosen
// by case-insensitive substring match: "positif" and "negatif" get their own
// markers, everything else is treated as neutral. Beyond trimming, the label
// itself stays exactly as stored. The label is case-folded for matching only;
// a Caser is stateful, so one is built per call.
func DecorateSentiment(sentiment string) string {
	label := strings.TrimSpace(sentiment)
	if label == "" {
		label = enrich.FallbackSentiment
	}

	switch folded := cases.Fold().String(label); {
	case strings.Contains(folded, "positif"):
		return label + emojiPositive
	case strings.Contains(folded, "negatif"):
		return label + emojiNegative
	default:
		return label + emojiNeutral
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
