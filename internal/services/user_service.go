// Package services – UserService
//
// This file implements the UserService, which owns the identity lifecycle:
// registration with duplicate checks and password hashing, login by username
// or email, the legacy link-only quick-create path, and the identifier
// resolver shared by the lookup and feedback flows.
//
// Service-level errors (e.g., ErrUsernameTaken, ErrInvalidCredentials,
// ErrUserNotFound) are returned for predictable cases so handlers can map
// them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jujurly/go-feedback-backend/internal/domain"
	"github.com/jujurly/go-feedback-backend/internal/repo"
)

// MatchKind tags which identity field an identifier resolved against.
// The order of the constants mirrors the resolution order.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchUsername
	MatchLinkID
	MatchEmail
)

// String returns a stable label for logging and span attributes.
func (k MatchKind) String() string {
	switch k {
	case MatchUsername:
		return "username"
	case MatchLinkID:
		return "link_id"
	case MatchEmail:
		return "email"
	default:
		return "none"
	}
}

// UserRepo defines the repository contract required by UserService.
// Implementations are responsible for persistence of identity records.
type UserRepo interface {
	// CreateUser inserts a fully populated user row.
	CreateUser(ctx context.Context, db *gorm.DB, username, email, passwordHash, linkID string) (*domain.User, error)

	// CreateLinkOnlyUser inserts a user carrying only a link id.
	CreateLinkOnlyUser(ctx context.Context, db *gorm.DB, linkID string) (*domain.User, error)

	// FindUserByUsername fetches a user by exact username.
	FindUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error)

	// FindUserByLinkID fetches a user by its public sharing token.
	FindUserByLinkID(ctx context.Context, db *gorm.DB, linkID string) (*domain.User, error)

	// FindUserByEmail fetches a user by exact email.
	FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error)

	// FindUserByUsernameOrEmail fetches a user for the login path.
	FindUserByUsernameOrEmail(ctx context.Context, db *gorm.DB, identifier string) (*domain.User, error)

	// LinkIDExists reports whether a link id is already taken.
	LinkIDExists(ctx context.Context, db *gorm.DB, linkID string) (bool, error)
}

// UserService provides identity operations: register, authenticate,
// quick-create, and identifier resolution.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the user repository used by this service.
	Repo UserRepo
}

// NewUserService constructs a UserService.
func NewUserService(db *gorm.DB, r UserRepo) *UserService {
	return &UserService{DB: db, Repo: r}
}

// Register creates a new identity with a bcrypt password hash and a freshly
// minted unique link id.
//
// Errors:
//   - ErrUsernameTaken when the username is already registered.
//   - ErrEmailTaken when the email is already registered.
//   - The underlying error for hashing or DB failures.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if _, err := s.Repo.FindUserByUsername(ctx, s.DB, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if _, err := s.Repo.FindUserByEmail(ctx, s.DB, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	linkID, err := s.newLinkID(ctx)
	if err != nil {
		return nil, err
	}
	return s.Repo.CreateUser(ctx, s.DB, username, email, string(hash), linkID)
}

// Authenticate verifies a password against the user matched by identifier
// (email or username). Missing users, quick-created users without a
// password, and hash mismatches all yield ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	u, err := s.Repo.FindUserByUsernameOrEmail(ctx, s.DB, identifier)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// QuickCreate mints a user carrying only a unique link id.
//
// Deprecated: the surface predates registration and produces identity
// records without username, email, or password. It is kept because shared
// links minted through it are still in circulation.
func (s *UserService) QuickCreate(ctx context.Context) (*domain.User, error) {
	linkID, err := s.newLinkID(ctx)
	if err != nil {
		return nil, err
	}
	return s.Repo.CreateLinkOnlyUser(ctx, s.DB, linkID)
}

// Resolve maps a caller-supplied identifier to exactly one user, trying
// username, then link id, then email, and short-circuiting on the first
// match. The order is significant: a string may coincidentally match more
// than one field across different users.
//
// The returned MatchKind reports which field matched; on failure it is
// MatchNone together with ErrUserNotFound.
func (s *UserService) Resolve(ctx context.Context, identifier string) (*domain.User, MatchKind, error) {
	tr := otel.Tracer("services/UserService")
	ctx, span := tr.Start(ctx, "Resolve",
		trace.WithAttributes(attribute.String("identifier", identifier)),
	)
	defer span.End()

	type lookup struct {
		kind MatchKind
		fn   func(context.Context, *gorm.DB, string) (*domain.User, error)
	}
	chain := []lookup{
		{MatchUsername, s.Repo.FindUserByUsername},
		{MatchLinkID, s.Repo.FindUserByLinkID},
		{MatchEmail, s.Repo.FindUserByEmail},
	}
	for _, l := range chain {
		u, err := l.fn(ctx, s.DB, identifier)
		if err == nil {
			span.SetAttributes(attribute.String("match", l.kind.String()))
			return u, l.kind, nil
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, MatchNone, err
		}
	}
	span.SetAttributes(attribute.String("match", MatchNone.String()))
	return nil, MatchNone, ErrUserNotFound
}

// CanonicalValue returns the identity field value the resolution matched,
// i.e. the canonical public identifier for the lookup endpoint.
func CanonicalValue(u *domain.User, kind MatchKind) string {
	switch kind {
	case MatchUsername:
		if u.Username != nil {
			return *u.Username
		}
	case MatchEmail:
		if u.Email != nil {
			return *u.Email
		}
	case MatchLinkID:
		return u.LinkID
	}
	return u.LinkID
}

// newLinkID generates a short sharing token and retries until it is unique
// in the store. Tokens are the first 8 characters of a UUID; collisions are
// rare but the store's unique index is the final arbiter.
func (s *UserService) newLinkID(ctx context.Context) (string, error) {
	for {
		candidate := uuid.NewString()[:8]
		taken, err := s.Repo.LinkIDExists(ctx, s.DB, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}
