// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// primarily for conditional responses (e.g., ETag generation) in the HTTP
// layer. Each function is context-aware and safe to call from services or
// handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jujurly/go-feedback-backend/internal/domain"
)

// FeedbackStats returns aggregate metadata for a user's feedback: the total
// number of rows and the maximum CreatedAt timestamp among those rows.
//
// It executes two lightweight queries against the feedbacks table scoped to
// the provided userID. When the user has no feedback, the returned count is
// 0 and maxCreatedAt is nil.
//
// Return values:
//   - count:        total feedback rows for userID
//   - maxCreatedAt: pointer to the greatest CreatedAt, or nil if no rows
//   - err:          database error, if any
func FeedbackStats(ctx context.Context, db *gorm.DB, userID uint) (count int64, maxCreatedAt *time.Time, err error) {
	count, err = CountFeedbackForUser(ctx, db, userID)
	if err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest created_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt time.Time
	}
	err = db.WithContext(ctx).
		Model(&domain.Feedback{}).
		Where("user_id = ?", userID).
		Select("created_at").
		Order("created_at DESC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}
