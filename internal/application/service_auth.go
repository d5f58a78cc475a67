package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/ports"
)

// Login is the mocked credential check: any non-empty email/password pair is
// accepted after simulated latency. The resulting identity is mirrored to the
// session slot so it survives a reload, and a signed token is returned.
// Completions superseded by a newer login-family call are discarded.
func (s *Service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return AuthResponse{}, domain.ErrInvalidCredentials
	}

	token := s.loginGeneration.Next()
	if err := s.waitLatency(ctx, s.cfg.MockLatency); err != nil {
		return AuthResponse{}, err
	}

	identity := domain.Identity{
		ID:     "1",
		Name:   "Demo User",
		Email:  strings.TrimSpace(req.Email),
		Avatar: avatarURL("Demo User"),
	}
	return s.completeLogin(ctx, token, identity)
}

// Register is mocked the same way but rejects any empty field. The password
// is hashed before the identity record reaches the session mirror.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return AuthResponse{}, fmt.Errorf("%w: name, email and password are required", domain.ErrInvalidInput)
	}

	token := s.loginGeneration.Next()
	if err := s.waitLatency(ctx, s.cfg.MockLatency); err != nil {
		return AuthResponse{}, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	identity := domain.Identity{
		ID:           s.idFn(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Avatar:       avatarURL(req.Name),
		PasswordHash: passwordHash,
	}
	return s.completeLogin(ctx, token, identity)
}

// GoogleLogin always succeeds after latency with the fixed google identity.
func (s *Service) GoogleLogin(ctx context.Context) (AuthResponse, error) {
	token := s.loginGeneration.Next()
	if err := s.waitLatency(ctx, s.cfg.MockLatency+s.cfg.MockLatency/2); err != nil {
		return AuthResponse{}, err
	}

	identity := domain.Identity{
		ID:     "google-123",
		Name:   "Google User",
		Email:  "user@gmail.com",
		Avatar: "https://lh3.googleusercontent.com/a/default-user=s96-c",
	}
	return s.completeLogin(ctx, token, identity)
}

// Logout clears the session slot.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentUser reads the mirrored identity, if any.
func (s *Service) CurrentUser(ctx context.Context) (IdentityItem, error) {
	identity, ok, err := s.sessions.Load(ctx)
	if err != nil {
		return IdentityItem{}, err
	}
	if !ok {
		return IdentityItem{}, domain.ErrUnauthorized
	}
	return NewIdentityItem(identity), nil
}

// ValidateToken parses and validates a bearer token for the HTTP middleware.
func (s *Service) ValidateToken(raw string) (ports.AuthClaims, error) {
	claims, err := s.signer.ParseAndValidate(raw)
	if err != nil {
		return ports.AuthClaims{}, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *Service) completeLogin(ctx context.Context, token uint64, identity domain.Identity) (AuthResponse, error) {
	// A newer call started while this one was waiting; its result wins and
	// this one must not clobber the slot.
	if !s.loginGeneration.IsCurrent(token) {
		return AuthResponse{}, domain.ErrStaleRequest
	}

	if err := s.sessions.Save(ctx, identity); err != nil {
		return AuthResponse{}, err
	}

	now := s.nowFn()
	signed, err := s.signer.Sign(ports.AuthClaims{
		UserID:    identity.ID,
		Name:      identity.Name,
		Email:     identity.Email,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	})
	if err != nil {
		return AuthResponse{}, fmt.Errorf("sign token: %w", err)
	}

	s.publish(ctx, "session.started", identity.ID, map[string]any{
		"user_id": identity.ID,
	})
	return AuthResponse{
		Token:     signed,
		ExpiresIn: int64(s.cfg.TokenTTL.Seconds()),
		User:      NewIdentityItem(identity),
	}, nil
}

func (s *Service) waitLatency(ctx context.Context, latency time.Duration) error {
	if latency <= 0 {
		return nil
	}
	timer := time.NewTimer(latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
