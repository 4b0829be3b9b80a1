// internal/domain/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/your-org/zmart-backend/internal/config"
	"github.com/your-org/zmart-backend/internal/pkg/auth"
)

var (
	// ErrInvalidCredentials indicates a failed credential check.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound indicates an unknown user id.
	ErrUserNotFound = errors.New("user not found")
)

// CredentialVerifier checks a login attempt and resolves it to a user.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (User, error)
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateProfileRequest represents a profile update.
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// AuthResponse is the result of a successful login or registration.
type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type registeredUser struct {
	user         User
	passwordHash string
}

// Service handles authentication and account profiles. Registered users are
// held in process memory and vanish on restart.
type Service struct {
	config     *config.Config
	jwtManager *auth.JWTManager
	passwords  *auth.PasswordManager
	verifier   CredentialVerifier

	mu         sync.RWMutex
	registered map[string]*registeredUser
	now        func() time.Time
}

// NewService creates a new user service. The credential verifier follows the
// configured auth mode: mock accepts any credentials, local checks bcrypt
// hashes of registered users.
func NewService(cfg *config.Config) *Service {
	s := &Service{
		config:     cfg,
		jwtManager: auth.NewJWTManager(cfg),
		passwords:  auth.NewPasswordManager(cfg),
		registered: make(map[string]*registeredUser),
		now:        time.Now,
	}
	switch cfg.Auth.Mode {
	case config.AuthModeLocal:
		s.verifier = &StoreVerifier{service: s}
	default:
		s.verifier = &MockVerifier{
			AdminEmail: cfg.Auth.AdminEmail,
			Latency:    cfg.Auth.MockLatency,
		}
	}
	return s
}

// Login verifies credentials and issues a token pair.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	u, err := s.verifier.Verify(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(u)
}

// Register creates a new account and issues a token pair. New accounts always
// get the user role; admin status comes only from the configured admin email
// at login.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	email := NormalizeEmail(req.Email)

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if _, exists := s.registered[email]; exists {
		s.mu.Unlock()
		return nil, ErrEmailTaken
	}
	u := User{
		ID:    s.now().UnixMilli(),
		Name:  req.Name,
		Email: email,
		Role:  RoleUser,
	}
	s.registered[email] = &registeredUser{user: u, passwordHash: hash}
	s.mu.Unlock()

	return s.issueTokens(u)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (s *Service) RefreshToken(refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}
	u := User{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  displayName(claims.Email),
		Role:  RoleUser,
	}
	if s.isAdminEmail(claims.Email) {
		u.Role = RoleAdmin
	}
	if reg := s.lookup(claims.Email); reg != nil {
		u.Name = reg.user.Name
	}
	return s.issueTokens(u)
}

// Profile returns the user described by validated token claims.
func (s *Service) Profile(claims *auth.Claims) (*User, error) {
	u := User{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  displayName(claims.Email),
		Role:  RoleUser,
	}
	if claims.IsAdmin {
		u.Role = RoleAdmin
	}
	if reg := s.lookup(claims.Email); reg != nil {
		u.Name = reg.user.Name
	}
	return &u, nil
}

// UpdateProfile renames a registered account. Mock-mode identities that were
// never registered have nothing stored to update; the new name is echoed
// back so clients can render it.
func (s *Service) UpdateProfile(claims *auth.Claims, req *UpdateProfileRequest) (*User, error) {
	u, err := s.Profile(claims)
	if err != nil {
		return nil, err
	}
	u.Name = req.Name

	s.mu.Lock()
	if reg, ok := s.registered[NormalizeEmail(claims.Email)]; ok {
		reg.user.Name = req.Name
	}
	s.mu.Unlock()
	return u, nil
}

func (s *Service) issueTokens(u User) (*AuthResponse, error) {
	access, err := s.jwtManager.GenerateAccessToken(u.ID, u.Email, u.IsAdmin())
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &AuthResponse{
		User:         u,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.config.JWT.AccessTokenExpiry.Seconds()),
	}, nil
}

func (s *Service) isAdminEmail(email string) bool {
	return NormalizeEmail(email) == NormalizeEmail(s.config.Auth.AdminEmail)
}

func (s *Service) lookup(email string) *registeredUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registered[NormalizeEmail(email)]
}

// displayName derives a display name from the email local part.
func displayName(email string) string {
	local, _, _ := strings.Cut(NormalizeEmail(email), "@")
	return local
}

// MockVerifier accepts any credentials after a simulated network delay. The
// resolved identity gets the admin role if and only if the email matches the
// configured admin email.
type MockVerifier struct {
	AdminEmail string
	Latency    time.Duration
}

// Verify waits out the configured latency, then resolves the email to a
// fresh identity. It never rejects credentials.
func (v *MockVerifier) Verify(ctx context.Context, email, password string) (User, error) {
	if v.Latency > 0 {
		timer := time.NewTimer(v.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return User{}, ctx.Err()
		case <-timer.C:
		}
	}

	normalized := NormalizeEmail(email)
	role := RoleUser
	if normalized == NormalizeEmail(v.AdminEmail) {
		role = RoleAdmin
	}
	return User{
		ID:    time.Now().UnixMilli(),
		Name:  displayName(normalized),
		Email: normalized,
		Role:  role,
	}, nil
}

// StoreVerifier checks credentials against registered accounts using bcrypt.
type StoreVerifier struct {
	service *Service
}

// Verify resolves the email to a registered account and compares the
// password against its stored hash.
func (v *StoreVerifier) Verify(ctx context.Context, email, password string) (User, error) {
	reg := v.service.lookup(email)
	if reg == nil {
		return User{}, ErrInvalidCredentials
	}
	if err := v.service.passwords.VerifyPassword(password, reg.passwordHash); err != nil {
		return User{}, ErrInvalidCredentials
	}
	u := reg.user
	if v.service.isAdminEmail(u.Email) {
		u.Role = RoleAdmin
	}
	return u, nil
}
