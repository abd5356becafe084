package domain

import (
	"net/mail"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

type Provider string

const (
	ProviderLocal  Provider = "local"
	ProviderGoogle Provider = "google"
)

const (
	MinNameLen     = 2
	MaxNameLen     = 50
	MinPasswordLen = 6
	MaxAvatarLen   = 2048
)

type User struct {
	ID           string
	Email        string // stored lower-case
	Name         string
	Avatar       string
	Provider     Provider
	GoogleID     string // empty unless linked to a Google account
	PasswordHash string // argon2id PHC string, empty for Google-only accounts
	IsVerified   bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Summary is the public projection of a user embedded in task views.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar}
}

type UserSummary struct {
	ID     string
	Name   string
	Email  string
	Avatar string
}

// Actor is the authenticated caller of a service operation, however the
// session was obtained.
type Actor struct {
	UserID string
	Email  string
	Name   string
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Registration is the input for creating a local account.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// Validate trims the registration in place and checks every field.
func (r *Registration) Validate() error {
	verr := &ValidationError{}

	r.Name = strings.TrimSpace(r.Name)
	validateName(verr, r.Name)

	r.Email = NormalizeEmail(r.Email)
	if !ValidEmail(r.Email) {
		verr.Add("email", "Please provide a valid email address")
	}

	validatePassword(verr, r.Password)

	return verr.Err()
}

// ProfileUpdate carries the editable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name   *string
	Avatar *string
}

func (p *ProfileUpdate) Validate() error {
	verr := &ValidationError{}

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		p.Name = &name
		validateName(verr, name)
	}
	if p.Avatar != nil {
		avatar := strings.TrimSpace(*p.Avatar)
		p.Avatar = &avatar
		if utf8.RuneCountInString(avatar) > MaxAvatarLen {
			verr.Add("avatar", "Avatar URL is too long")
		}
	}

	return verr.Err()
}

func ValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validateName(verr *ValidationError, name string) {
	n := utf8.RuneCountInString(name)
	if n < MinNameLen || n > MaxNameLen {
		verr.Add("name", "Name must be between 2 and 50 characters")
	}
}

func validatePassword(verr *ValidationError, pw string) {
	if utf8.RuneCountInString(pw) < MinPasswordLen {
		verr.Add("password", "Password must be at least 6 characters long")
		return
	}

	var lower, upper, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !lower || !upper || !digit {
		verr.Add("password", "Password must contain at least one uppercase letter, one lowercase letter, and one number")
	}
}
