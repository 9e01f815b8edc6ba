package services_test

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"goru/internal/apperrors"
	"goru/internal/config"
	"goru/internal/models"
	"goru/internal/repositories"
	"goru/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		AccessSecret:  "test_access_secret",
		RefreshSecret: "test_refresh_secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	}
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTConfig())

	user := &models.User{
		Email:     "Test@Example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
		Phone:     "+1234567890",
	}

	// Successful registration: email is normalized before lookup and insert
	mockRepo.On("GetByEmail", "test@example.com").Return(nil, fmt.Errorf("%w", repositories.ErrNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	tokens, err := authService.Register(user)
	assert.NoError(t, err)
	assert.NotNil(t, tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, models.UserStatusActive, user.Status)
	// Password must be stored hashed
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Email already registered
	mockRepo.On("GetByEmail", "test@example.com").Return(&models.User{ID: "user-1"}, nil).Once()
	_, err = authService.Register(&models.User{
		Email: "TEST@example.com", Password: "password123",
		FirstName: "Test", LastName: "User", Phone: "+1234567890",
	})
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.StatusOf(err))
	mockRepo.AssertExpectations(t)

	// A concurrent registration racing past the lookup hits the unique index
	mockRepo.On("GetByEmail", "race@example.com").Return(nil, fmt.Errorf("%w", repositories.ErrNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("user with email race@example.com: %w", repositories.ErrDuplicateKey)).Once()
	_, err = authService.Register(&models.User{
		Email: "race@example.com", Password: "password123",
		FirstName: "Race", LastName: "User", Phone: "+1234567890",
	})
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.StatusOf(err))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	cfg := testJWTConfig()
	authService := services.NewAuthService(mockRepo, cfg)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	// Successful login
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	loggedIn, tokens, err := authService.Login("Test@Example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// The access token embeds the identity claims and the configured expiry
	claims, err := authService.VerifyAccessToken(tokens.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, errWrongPassword := authService.Login("test@example.com", "wrongpassword")
	assert.Error(t, errWrongPassword)

	// Unknown email
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, fmt.Errorf("%w", repositories.ErrNotFound)).Once()
	_, _, errUnknownEmail := authService.Login("nobody@example.com", "password123")
	assert.Error(t, errUnknownEmail)

	// Both failures must be indistinguishable to the caller
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(errWrongPassword))
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(errUnknownEmail))
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_VerifyTokens(t *testing.T) {
	mockRepo := new(MockUserRepository)
	cfg := testJWTConfig()
	authService := services.NewAuthService(mockRepo, cfg)

	user := &models.User{ID: "user-123", Email: "test@example.com"}
	tokens, err := authService.IssueTokenPair(user)
	assert.NoError(t, err)

	// Each token only verifies against its own secret
	_, err = authService.VerifyAccessToken(tokens.AccessToken)
	assert.NoError(t, err)
	_, err = authService.VerifyRefreshToken(tokens.RefreshToken)
	assert.NoError(t, err)
	_, err = authService.VerifyAccessToken(tokens.RefreshToken)
	assert.Error(t, err)
	_, err = authService.VerifyRefreshToken(tokens.AccessToken)
	assert.Error(t, err)

	// Malformed token
	_, err = authService.VerifyAccessToken("not.a.token")
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))

	// Expired token
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, services.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: jwt.TimeFunc().Add(-time.Hour).Unix(),
		},
	})
	expiredString, _ := expired.SignedString([]byte(cfg.AccessSecret))
	_, err = authService.VerifyAccessToken(expiredString)
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))

	// Token signed with the wrong key
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, services.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: jwt.TimeFunc().Add(time.Hour).Unix(),
		},
	})
	forgedString, _ := forged.SignedString([]byte("some_other_secret"))
	_, err = authService.VerifyAccessToken(forgedString)
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))
}

func TestAuthService_Refresh(t *testing.T) {
	mockRepo := new(MockUserRepository)
	cfg := testJWTConfig()
	authService := services.NewAuthService(mockRepo, cfg)

	user := &models.User{ID: "user-123", Email: "test@example.com"}
	firstPair, err := authService.IssueTokenPair(user)
	assert.NoError(t, err)

	// Valid refresh issues a brand-new pair
	mockRepo.On("GetByID", user.ID).Return(user, nil).Once()
	secondPair, err := authService.Refresh(firstPair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, secondPair.AccessToken)
	assert.NotEmpty(t, secondPair.RefreshToken)
	mockRepo.AssertExpectations(t)

	// The first refresh token is not rotated out: it still works after a
	// newer pair was issued.
	mockRepo.On("GetByID", user.ID).Return(user, nil).Once()
	thirdPair, err := authService.Refresh(firstPair.RefreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, thirdPair)
	mockRepo.AssertExpectations(t)

	// Tampered token
	_, err = authService.Refresh(firstPair.RefreshToken + "x")
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))

	// Expired token
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, services.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: jwt.TimeFunc().Add(-time.Minute).Unix(),
		},
	})
	expiredString, _ := expired.SignedString([]byte(cfg.RefreshSecret))
	_, err = authService.Refresh(expiredString)
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))

	// User no longer exists
	mockRepo.On("GetByID", user.ID).Return(nil, fmt.Errorf("%w", repositories.ErrNotFound)).Once()
	_, err = authService.Refresh(firstPair.RefreshToken)
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))
	mockRepo.AssertExpectations(t)
}
