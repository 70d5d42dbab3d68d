// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Feedback
// model.
//
// The repository follows a "thin" approach: it performs persistence and
// simple query composition, leaving business rules (enrichment, display
// derivation) to the services package.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jujurly/go-feedback-backend/internal/domain"
)

// CreateFeedback inserts a feedback row for the given user with the
// enrichment triple already attached by the service layer. CreatedAt is set
// to UTC by the server, never by the caller.
//
// On success, it returns the persisted Feedback. On failure, it returns a
// DB error.
func CreateFeedback(ctx context.Context, db *gorm.DB, fb *domain.Feedback) (*domain.Feedback, error) {
	fb.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(fb).Error; err != nil {
		return nil, err
	}
	return fb, nil
}

// ListFeedbackForUser returns all feedback owned by userID, ordered by
// creation time descending (most recent first). It returns an empty slice
// if the user has no feedback. On DB error, it returns the error.
func ListFeedbackForUser(ctx context.Context, db *gorm.DB, userID uint) ([]domain.Feedback, error) {
	var out []domain.Feedback
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// CountFeedbackForUser returns the total number of feedback rows owned by
// userID. On DB error, it returns the error.
func CountFeedbackForUser(ctx context.Context, db *gorm.DB, userID uint) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Feedback{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}
