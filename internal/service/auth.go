package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/dev-bomo/cuvinte-banatene/internal/models"
	"github.com/dev-bomo/cuvinte-banatene/internal/repository"
)

var (
	// ErrInvalidCredentials signals a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken signals a session or verification token that matches nothing.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrNotFoundOrVerified signals a resend request for an email that is
	// unknown or already verified.
	ErrNotFoundOrVerified = errors.New("user not found or already verified")
)

// Mailer delivers account mail. Failures are logged, never propagated to the
// caller's primary operation.
type Mailer interface {
	SendVerificationEmail(to, username, token string) error
	SendWelcomeEmail(to, username string) error
}

// AuthService implements the registration, login and email verification flows.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, tokenString string) (*models.User, error)
	VerifyEmail(ctx context.Context, token string) (*models.User, error)
	ResendVerification(ctx context.Context, email string) (*models.User, error)
	Logout(ctx context.Context, tokenString string) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	mailer   Mailer
	redis    *redis.Client // nil disables the logout blocklist
}

// NewAuthService creates a new AuthService instance. redisClient may be nil,
// in which case logout is purely client-side token discard.
func NewAuthService(userRepo repository.UserRepository, tokens TokenService, mailer Mailer, redisClient *redis.Client) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
		redis:    redisClient,
	}
}

// Register creates an unverified contributor account, issues a session token
// and sends the verification mail. Mail failure does not abort registration.
func (s *authService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	verificationToken, err := newVerificationToken()
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:                     uuid.NewString(),
		Username:               username,
		Email:                  email,
		PasswordHash:           string(hash),
		Role:                   models.RoleContributor,
		EmailVerified:          false,
		EmailVerificationToken: &verificationToken,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	if err := s.mailer.SendVerificationEmail(user.Email, user.Username, verificationToken); err != nil {
		log.Warn("failed to send verification email", "email", user.Email, "err", err)
	}

	sessionToken, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, sessionToken, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	sessionToken, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, sessionToken, nil
}

// Authenticate resolves a bearer token to its user. Tokens that fail
// signature or expiry checks, blocklisted tokens and tokens whose user no
// longer exists all yield ErrInvalidToken.
func (s *authService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if s.redis != nil {
		blocked, err := s.redis.Exists(ctx, blocklistKey(tokenString)).Result()
		if err == nil && blocked > 0 {
			return nil, ErrInvalidToken
		}
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// VerifyEmail consumes a verification token: the matching unverified user is
// flipped to verified and the token cleared. A second attempt with the same
// token therefore fails.
func (s *authService) VerifyEmail(ctx context.Context, token string) (*models.User, error) {
	user, err := s.userRepo.FindUnverifiedByToken(ctx, token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return nil, err
	}

	if err := s.mailer.SendWelcomeEmail(user.Email, user.Username); err != nil {
		log.Warn("failed to send welcome email", "email", user.Email, "err", err)
	}

	return s.userRepo.FindByID(ctx, user.ID)
}

// ResendVerification issues a fresh token for an unverified account,
// invalidating the previous one.
func (s *authService) ResendVerification(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.FindUnverifiedByEmail(ctx, email)
	if err != nil {
		return nil, ErrNotFoundOrVerified
	}

	token, err := newVerificationToken()
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.SetVerificationToken(ctx, user.ID, token); err != nil {
		return nil, err
	}

	if err := s.mailer.SendVerificationEmail(user.Email, user.Username, token); err != nil {
		return nil, fmt.Errorf("failed to send verification email: %w", err)
	}

	return s.userRepo.FindByID(ctx, user.ID)
}

// Logout blocklists the token for its remaining lifetime when redis is
// configured. Without redis the call is a no-op and logout stays client-side.
func (s *authService) Logout(ctx context.Context, tokenString string) error {
	if s.redis == nil {
		return nil
	}

	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return ErrInvalidToken
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, blocklistKey(tokenString), "1", ttl).Err()
}

func blocklistKey(token string) string {
	return "token_blocklist:" + token
}

// newVerificationToken returns 32 random bytes hex-encoded.
func newVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate verification token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
