// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a user is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jujurly/go-feedback-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateUser inserts a fully populated user row (registration path).
// CreatedAt is set to UTC. On failure, it returns a DB error.
func CreateUser(ctx context.Context, db *gorm.DB, username, email, passwordHash, linkID string) (*domain.User, error) {
	u := &domain.User{
		Username:     &username,
		Email:        &email,
		PasswordHash: &passwordHash,
		LinkID:       linkID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// CreateLinkOnlyUser inserts a user row carrying only a link id.
//
// Deprecated: this backs the legacy quick-create surface; it produces
// identity records without username, email, or password.
func CreateLinkOnlyUser(ctx context.Context, db *gorm.DB, linkID string) (*domain.User, error) {
	u := &domain.User{
		LinkID:    linkID,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// FindUserByUsername fetches a user by exact username match.
// Returns ErrNotFound if no such user exists.
func FindUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindUserByEmail fetches a user by exact email match.
// Returns ErrNotFound if no such user exists.
func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindUserByLinkID fetches a user by its public sharing token.
// Returns ErrNotFound if no such user exists.
func FindUserByLinkID(ctx context.Context, db *gorm.DB, linkID string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("link_id = ?", linkID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindUserByUsernameOrEmail fetches a user whose username or email equals
// identifier (the login path). Returns ErrNotFound if no match exists.
func FindUserByUsernameOrEmail(ctx context.Context, db *gorm.DB, identifier string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// LinkIDExists reports whether any user already holds the given link id.
// Used by the retry-until-unique token generation loop.
func LinkIDExists(ctx context.Context, db *gorm.DB, linkID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("link_id = ?", linkID).
		Count(&n).Error
	return n > 0, err
}
