package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// Session is a signed-in user and the bearer token that proves it.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

// GoogleIdentity is the subset of the Google userinfo response we use.
type GoogleIdentity struct {
	ID            string
	Email         string
	EmailVerified bool
	Name          string
	Avatar        string
}

// AuthService owns accounts and turns credentials of either kind into the
// same bearer session.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TokenTTL time.Duration
	Now      Clock
}

var errInvalidCredentials = domain.Unauthorized("Invalid email or password")

// Register creates a local account and signs it in.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (Session, error) {
	if err := reg.Validate(); err != nil {
		return Session{}, err
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, reg.Email)
	switch {
	case err == nil:
		return Session{}, domain.Conflict("User already exists with this email")
	case !isNotFound(err):
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.Now.now()
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Email:        reg.Email,
		Name:         reg.Name,
		Provider:     domain.ProviderLocal,
		PasswordHash: hash,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return Session{}, domain.Conflict("User already exists with this email")
		}
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("user registered", slog.String("user_id", user.ID))
	return s.issue(user, now)
}

// Login checks a local password and records the sign-in.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	email = domain.NormalizeEmail(email)

	verr := &domain.ValidationError{}
	if !domain.ValidEmail(email) {
		verr.Add("email", "Please provide a valid email address")
	}
	if password == "" {
		verr.Add("password", "Password is required")
	}
	if err := verr.Err(); err != nil {
		return Session{}, err
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return Session{}, errInvalidCredentials
		}
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}

	// Google-only accounts have no password to check.
	if user.PasswordHash == "" {
		return Session{}, errInvalidCredentials
	}
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			slogx.FromContext(ctx).Error("stored password hash unusable",
				slog.String("user_id", user.ID), slog.Any("error", err))
		}
		return Session{}, errInvalidCredentials
	}

	now := s.Now.now()
	if err := s.Store.Users().TouchLastLogin(ctx, user.ID, now); err != nil {
		return Session{}, fmt.Errorf("record login: %w", err)
	}
	user.LastLoginAt = &now
	user.UpdatedAt = now

	return s.issue(user, now)
}

// LoginWithGoogle signs in the account linked to id.ID, linking an existing
// account with the same email or creating a new one when there is none.
// Linking and creating both require Google to have verified the email.
func (s *AuthService) LoginWithGoogle(ctx context.Context, id GoogleIdentity) (Session, error) {
	email := domain.NormalizeEmail(id.Email)
	if id.ID == "" || !domain.ValidEmail(email) {
		return Session{}, domain.Unauthorized("Google account did not provide a usable identity")
	}

	log := slogx.FromContext(ctx)
	now := s.Now.now()
	users := s.Store.Users()

	user, err := users.GetUserByGoogleID(ctx, id.ID)
	switch {
	case err == nil:
		if err := users.TouchLastLogin(ctx, user.ID, now); err != nil {
			return Session{}, fmt.Errorf("record login: %w", err)
		}

	case isNotFound(err):
		if !id.EmailVerified {
			return Session{}, domain.Unauthorized("Google account email is not verified")
		}

		user, err = users.GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			if err := users.LinkGoogle(ctx, user.ID, id.ID, id.Avatar, now); err != nil {
				return Session{}, fmt.Errorf("link google account: %w", err)
			}
			if err := users.TouchLastLogin(ctx, user.ID, now); err != nil {
				return Session{}, fmt.Errorf("record login: %w", err)
			}
			log.Info("google account linked", slog.String("user_id", user.ID))

		case isNotFound(err):
			user = domain.User{
				ID:          idx.NewAt(now).String(),
				Email:       email,
				Name:        googleDisplayName(id.Name, email),
				Avatar:      id.Avatar,
				Provider:    domain.ProviderGoogle,
				GoogleID:    id.ID,
				IsVerified:  true,
				LastLoginAt: &now,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := users.CreateUser(ctx, user); err != nil {
				return Session{}, fmt.Errorf("create google user: %w", err)
			}
			log.Info("user registered", slog.String("user_id", user.ID), slog.String("provider", "google"))

		default:
			return Session{}, fmt.Errorf("lookup user: %w", err)
		}

	default:
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}

	user, err = users.GetUserByID(ctx, user.ID)
	if err != nil {
		return Session{}, fmt.Errorf("reload user: %w", err)
	}
	return s.issue(user, now)
}

// Authenticate verifies a bearer token and returns the actor it names. The
// account must still exist.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Actor, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			return domain.Actor{}, domain.Unauthorized("Token expired.")
		}
		return domain.Actor{}, domain.Unauthorized("Invalid token.")
	}

	return s.ActorFor(ctx, claims.Subject)
}

// ActorFor resolves the subject of an already verified token.
func (s *AuthService) ActorFor(ctx context.Context, userID string) (domain.Actor, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return domain.Actor{}, domain.Unauthorized("Invalid token. User not found.")
		}
		return domain.Actor{}, fmt.Errorf("lookup user: %w", err)
	}

	return domain.Actor{UserID: user.ID, Email: user.Email, Name: user.Name}, nil
}

// Profile returns the actor's own account.
func (s *AuthService) Profile(ctx context.Context, actor domain.Actor) (domain.User, error) {
	if err := requireActor(actor); err != nil {
		return domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, actor.UserID)
	if err != nil {
		if isNotFound(err) {
			return domain.User{}, domain.Unauthorized("Invalid token. User not found.")
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateProfile changes the actor's name and/or avatar.
func (s *AuthService) UpdateProfile(ctx context.Context, actor domain.Actor, upd domain.ProfileUpdate) (domain.User, error) {
	if err := upd.Validate(); err != nil {
		return domain.User{}, err
	}

	user, err := s.Profile(ctx, actor)
	if err != nil {
		return domain.User{}, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Avatar != nil {
		user.Avatar = *upd.Avatar
	}
	user.UpdatedAt = s.Now.now()

	if err := s.Store.Users().UpdateProfile(ctx, user.ID, user.Name, user.Avatar, user.UpdatedAt); err != nil {
		return domain.User{}, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

func (s *AuthService) issue(user domain.User, now time.Time) (Session, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}

	claims := jwtx.NewClaims(user.ID, user.Email, user.Name, string(user.Provider), s.Issuer, ttl, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, fmt.Errorf("sign token: %w", err)
	}

	return Session{Token: token, ExpiresAt: now.Add(ttl), User: user}, nil
}

// googleDisplayName keeps the Google name when it fits the local name rules
// and otherwise falls back to the email's local part.
func googleDisplayName(name, email string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	for utf8.RuneCountInString(name) < domain.MinNameLen {
		name += "_"
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLen {
		name = string([]rune(name)[:domain.MaxNameLen])
	}
	return name
}
