// Package services defines the business logic for identities and anonymous
// feedback. This file centralizes common service-level error values so that
// they can be consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

// Identity-related errors.
var (
	// ErrUsernameTaken indicates that the requested username is already
	// registered to another user.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken indicates that the requested email is already
	// registered to another user.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login fails, either because no
	// user matches the identifier or because the password does not verify.
	// The two cases are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates that an identifier resolved to no user by
	// username, link id, or email.
	ErrUserNotFound = errors.New("user not found")
)

// Feedback-related errors.
var (
	// ErrEmptyFeedback is returned when a submission carries no feedback
	// text after trimming.
	ErrEmptyFeedback = errors.New("feedback text is required")
)
