// Package auth is the storefront's demo account flow: a user registry
// and password-reset codes kept in the session store. Passwords are
// stored as-is, matching the demo it replaces. Do NOT use in production.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"storefront-service/internal/store"
)

var (
	ErrEmailExists        = errors.New("auth: an account with this email already exists")
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrNoAccount          = errors.New("auth: no account found with that email")
	ErrInvalidResetCode   = errors.New("auth: invalid or expired code")
)

const (
	usersKey      = "auth_users"
	resetCodesKey = "auth_reset_codes"

	resetCodeTTL = 10 * time.Minute
)

// User is one demo account record.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile is the password-free view handed back to callers.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type resetCode struct {
	Code    string    `json:"code"`
	Expires time.Time `json:"expires"`
}

// Service implements the demo auth flows on top of a SessionStorer.
type Service struct {
	sessions store.SessionStorer
	now      func() time.Time
}

// NewService creates an auth Service.
func NewService(sessions store.SessionStorer) *Service {
	return &Service{sessions: sessions, now: time.Now}
}

func (s *Service) readUsers(ctx context.Context) ([]User, error) {
	raw, err := s.sessions.Get(ctx, usersKey)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("auth: read users: %w", err)
	}
	var users []User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("auth: decode users: %w", err)
	}
	return users, nil
}

func (s *Service) writeUsers(ctx context.Context, users []User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("auth: encode users: %w", err)
	}
	if err := s.sessions.Put(ctx, usersKey, raw); err != nil {
		return fmt.Errorf("auth: write users: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and returns its profile. Email comparison
// is case-insensitive.
func (s *Service) Register(ctx context.Context, name, email, password string) (*Profile, error) {
	users, err := s.readUsers(ctx)
	if err != nil {
		return nil, err
	}
	email = normalizeEmail(email)
	for _, u := range users {
		if normalizeEmail(u.Email) == email {
			return nil, ErrEmailExists
		}
	}
	user := User{Name: strings.TrimSpace(name), Email: email, Password: password}
	users = append(users, user)
	if err := s.writeUsers(ctx, users); err != nil {
		return nil, err
	}
	return &Profile{Name: user.Name, Email: user.Email}, nil
}

// Authenticate checks credentials and returns the account profile.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Profile, error) {
	users, err := s.readUsers(ctx)
	if err != nil {
		return nil, err
	}
	email = normalizeEmail(email)
	for _, u := range users {
		if normalizeEmail(u.Email) == email {
			if u.Password != password {
				return nil, ErrInvalidCredentials
			}
			return &Profile{Name: u.Name, Email: u.Email}, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (s *Service) readResetCodes(ctx context.Context) (map[string]resetCode, error) {
	raw, err := s.sessions.Get(ctx, resetCodesKey)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return map[string]resetCode{}, nil
		}
		return nil, fmt.Errorf("auth: read reset codes: %w", err)
	}
	codes := map[string]resetCode{}
	if err := json.Unmarshal(raw, &codes); err != nil {
		return nil, fmt.Errorf("auth: decode reset codes: %w", err)
	}
	return codes, nil
}

func (s *Service) writeResetCodes(ctx context.Context, codes map[string]resetCode) error {
	raw, err := json.Marshal(codes)
	if err != nil {
		return fmt.Errorf("auth: encode reset codes: %w", err)
	}
	if err := s.sessions.Put(ctx, resetCodesKey, raw); err != nil {
		return fmt.Errorf("auth: write reset codes: %w", err)
	}
	return nil
}

// RequestPasswordReset issues a 6-digit code valid for ten minutes. In a
// real system the code would be emailed; the demo returns it directly.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, time.Time, error) {
	users, err := s.readUsers(ctx)
	if err != nil {
		return "", time.Time{}, err
	}
	email = normalizeEmail(email)
	found := false
	for _, u := range users {
		if normalizeEmail(u.Email) == email {
			found = true
			break
		}
	}
	if !found {
		return "", time.Time{}, ErrNoAccount
	}

	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth: generate reset code: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64()+100000)
	expires := s.now().Add(resetCodeTTL)

	codes, err := s.readResetCodes(ctx)
	if err != nil {
		return "", time.Time{}, err
	}
	codes[email] = resetCode{Code: code, Expires: expires}
	if err := s.writeResetCodes(ctx, codes); err != nil {
		return "", time.Time{}, err
	}
	return code, expires, nil
}

// VerifyResetCode reports whether the code is valid and unexpired.
func (s *Service) VerifyResetCode(ctx context.Context, email, code string) (bool, error) {
	codes, err := s.readResetCodes(ctx)
	if err != nil {
		return false, err
	}
	rec, ok := codes[normalizeEmail(email)]
	if !ok {
		return false, nil
	}
	if s.now().After(rec.Expires) {
		return false, nil
	}
	return rec.Code == strings.TrimSpace(code), nil
}

// ResetPassword sets a new password when the code verifies, and consumes
// the code.
func (s *Service) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	ok, err := s.VerifyResetCode(ctx, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidResetCode
	}

	users, err := s.readUsers(ctx)
	if err != nil {
		return err
	}
	email = normalizeEmail(email)
	updated := false
	for i := range users {
		if normalizeEmail(users[i].Email) == email {
			users[i].Password = newPassword
			updated = true
			break
		}
	}
	if !updated {
		return ErrNoAccount
	}
	if err := s.writeUsers(ctx, users); err != nil {
		return err
	}

	codes, err := s.readResetCodes(ctx)
	if err != nil {
		return err
	}
	delete(codes, email)
	return s.writeResetCodes(ctx, codes)
}
