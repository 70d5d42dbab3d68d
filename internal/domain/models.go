// Package domain defines the persistence models for users and their
// anonymous feedback. These types are mapped with GORM and form the core
// data layer of the feedback application.
package domain

import "time"

// User represents a registered (or quick-created) recipient of anonymous
// feedback. Every user carries a short, unique, publicly shareable LinkID
// that anonymous visitors use to address feedback without knowing the
// username or email.
//
// Username, Email and PasswordHash are pointers because the legacy
// quick-create path mints users with only a LinkID; the unique indexes on
// those columns only apply to non-NULL values.
//
// Fields:
//   - ID: auto-incremented numeric primary key.
//   - Username / Email: unique where set; both usable as login identifier.
//   - PasswordHash: bcrypt hash, never the plaintext.
//   - LinkID: 8-character public sharing token, unique, always set.
type User struct {
	ID           uint      `json:"id"         gorm:"primaryKey"`
	Username     *string   `json:"username"   gorm:"type:varchar(80);uniqueIndex"`
	Email        *string   `json:"email"      gorm:"type:varchar(120);uniqueIndex"`
	PasswordHash *string   `json:"-"          gorm:"type:varchar(256)"`
	LinkID       string    `json:"link_id"    gorm:"type:varchar(80);not null;uniqueIndex"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Feedback is one anonymous submission against a user. Records are created
// once and read-only afterwards; the enrichment triple (Sentiment, Summary,
// ConstructiveCriticism) is computed synchronously at submission time, with
// any field the provider could not supply filled from the fixed fallback
// strings, so all three are always populated.
//
// Fields:
//   - UserID: owning user; rows are cascade-deleted with their user.
//   - AnonIdentifier: how the submitter knows the recipient (optional).
//   - FeedbackText: the submission body (required, non-empty).
//   - ContextText: free-text situation context (optional).
//   - AnonEmail: optional contact left by the submitter.
//   - IsRead: recipient-side read marker, defaults to false.
//   - CreatedAt: server-assigned, immutable.
type Feedback struct {
	ID                    uint      `json:"id"                     gorm:"primaryKey"`
	UserID                uint      `json:"user_id"                gorm:"not null;index"`
	AnonIdentifier        *string   `json:"anon_identifier"        gorm:"type:varchar(200)"`
	FeedbackText          string    `json:"feedback_text"          gorm:"type:text;not null"`
	ContextText           *string   `json:"context_text"           gorm:"type:text"`
	AnonEmail             *string   `json:"anon_email"             gorm:"type:varchar(120)"`
	IsRead                bool      `json:"is_read"                gorm:"not null;default:false"`
	Sentiment             string    `json:"sentiment"              gorm:"type:varchar(120)"`
	Summary               string    `json:"summary"                gorm:"type:text"`
	ConstructiveCriticism string    `json:"constructive_criticism" gorm:"type:text"`
	CreatedAt             time.Time `json:"created_at"`

	// User is the feedback recipient. Feedback does not outlive its user.
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Feedback.
func (Feedback) TableName() string { return "feedbacks" }
