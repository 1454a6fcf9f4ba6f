package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/store"
	"github.com/aussiebroadwan/pandda/pkg/cryptox"
	"github.com/aussiebroadwan/pandda/pkg/jwtx"
	"github.com/aussiebroadwan/pandda/pkg/slogx"
)

// Session is a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

// AuthService checks operator credentials and issues session tokens.
type AuthService struct {
	Store  store.Store
	Keys   *jwtx.KeyRing
	Issuer string
	TTL    time.Duration
	Now    func() time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login matches e-mail, password and role. Every mismatch returns
// ErrInvalidCredentials so the caller cannot tell which part was wrong.
func (s *AuthService) Login(ctx context.Context, email, password, role string) (Session, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}
	wantRole, err := domain.ParseRole(role)
	if err != nil {
		return Session{}, ErrInvalidCredentials
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		log.Info("login rejected", "reason", "unknown_email")
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("service: lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("stored password hash unusable", "user_id", u.ID, "error", err)
		}
		log.Info("login rejected", "reason", "bad_password", "user_id", u.ID)
		return Session{}, ErrInvalidCredentials
	}
	if u.Role != wantRole {
		log.Info("login rejected", "reason", "role_mismatch", "user_id", u.ID)
		return Session{}, ErrInvalidCredentials
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	now := s.now()
	claims := jwtx.NewSessionClaims(jwtx.SessionClaimsInput{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role.String(),
		Name:   u.Name,
		Scopes: u.Role.Scopes(),
	}, s.Issuer, ttl, now)

	token, err := s.Keys.Signer().Sign(claims)
	if err != nil {
		return Session{}, fmt.Errorf("service: sign session: %w", err)
	}

	log.Info("login succeeded", "user_id", u.ID, "role", u.Role)
	return Session{Token: token, ExpiresAt: now.Add(ttl), User: u}, nil
}

// CurrentUser returns the operator behind a verified session.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	return u, mapStoreErr(err)
}
