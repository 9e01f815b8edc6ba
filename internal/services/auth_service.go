package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"goru/internal/apperrors"
	"goru/internal/config"
	"goru/internal/models"
	"goru/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// TokenPair is the access+refresh credential issued after registration,
// login, or refresh. It is derived on demand and never persisted.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenClaims are the identity claims embedded in both tokens.
type TokenClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.StandardClaims
}

// AuthService handles registration, login, and token pair issuance and
// verification. Signing material is fixed at construction.
type AuthService struct {
	userRepo repositories.UserRepository
	jwtCfg   config.JWTConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
	}
}

// Register creates a new user and issues their first token pair. Email
// matching is case-insensitive: the address is normalized before both the
// lookup and the insert.
func (s *AuthService) Register(user *models.User) (*TokenPair, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return nil, apperrors.Conflict("User already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	if err := s.userRepo.Create(user); err != nil {
		// Backstop for a concurrent registration racing past the lookup:
		// the unique index on email reports it as a duplicate key.
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.Conflict("User already exists")
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return s.IssueTokenPair(user)
}

// Login authenticates a user by email and password. An unknown email and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*models.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, nil, apperrors.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, apperrors.Unauthorized("Invalid credentials")
	}

	pair, err := s.IssueTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh verifies a refresh token, re-resolves the underlying user, and
// issues a brand-new pair. The presented token is not invalidated: any
// previously issued, still-unexpired refresh token remains usable.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, apperrors.Unauthorized("Invalid refresh token")
	}

	return s.IssueTokenPair(user)
}

// IssueTokenPair produces a short-lived access token and a long-lived
// refresh token, each signed with its own secret and embedding {id, email}.
func (s *AuthService) IssueTokenPair(user *models.User) (*TokenPair, error) {
	accessToken, err := s.signToken(user, s.jwtCfg.AccessSecret, s.jwtCfg.AccessExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := s.signToken(user, s.jwtCfg.RefreshSecret, s.jwtCfg.RefreshExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// VerifyAccessToken validates signature and expiry against the access secret.
func (s *AuthService) VerifyAccessToken(tokenString string) (*TokenClaims, error) {
	return s.verifyToken(tokenString, s.jwtCfg.AccessSecret)
}

// VerifyRefreshToken validates signature and expiry against the refresh secret.
func (s *AuthService) VerifyRefreshToken(tokenString string) (*TokenClaims, error) {
	return s.verifyToken(tokenString, s.jwtCfg.RefreshSecret)
}

func (s *AuthService) signToken(user *models.User, secret string, expiry time.Duration) (string, error) {
	now := jwt.TimeFunc()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(expiry).Unix(),
			IssuedAt:  now.Unix(),
		},
	})
	return token.SignedString([]byte(secret))
}

// verifyToken rejects malformed, expired, and mis-signed tokens with one
// uniform failure. The underlying cause is logged, never returned.
func (s *AuthService) verifyToken(tokenString, secret string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		log.Printf("Token validation error: %v", err)
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}
	return claims, nil
}
