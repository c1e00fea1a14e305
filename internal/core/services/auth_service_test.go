package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ahmohbati/forex-backend/internal/apperrors"
	"github.com/ahmohbati/forex-backend/internal/core/domain"
	"github.com/ahmohbati/forex-backend/internal/core/services"
	"github.com/ahmohbati/forex-backend/internal/dto"
	"github.com/ahmohbati/forex-backend/internal/platform/config"
	"github.com/ahmohbati/forex-backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      *services.AuthService
	cfg          *config.Config
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "forex-test",
	}
	suite.service = services.NewAuthService(suite.cfg, suite.mockUserRepo)
}

func (suite *AuthServiceTestSuite) TestRegister_HashesPasswordAndLowercasesEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: " Alice@Example.COM ", Password: "s3cretpass", Name: "Alice"}

	var captured domain.User
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.User)
		}).
		Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("alice@example.com", user.Email)
	suite.NotEmpty(user.UserID)
	suite.NotEqual("s3cretpass", captured.PasswordHash)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(captured.PasswordHash), []byte("s3cretpass")))
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "alice@example.com", Password: "s3cretpass", Name: "Alice"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cretpass")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u-1", Email: "alice@example.com", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, dto.LoginRequest{Email: "Alice@Example.com", Password: "s3cretpass"})

	suite.Require().NoError(err)
	suite.Equal("u-1", user.UserID)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	user, err := suite.service.Authenticate(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "whatever1"})

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("rightpassword")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u-1", Email: "alice@example.com", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(stored, nil).Once()

	user, authErr := suite.service.Authenticate(ctx, dto.LoginRequest{Email: "alice@example.com", Password: "wrongpassword"})

	// Same error as for an unknown email, so callers cannot probe for accounts.
	suite.ErrorIs(authErr, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *AuthServiceTestSuite) TestGenerateAccessToken_RoundTrips() {
	ctx := context.Background()
	user := &domain.User{UserID: "u-1", Email: "alice@example.com"}

	token, expiresAt, err := suite.service.GenerateAccessToken(ctx, user)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal("u-1", claims.Subject)
	suite.Equal("alice@example.com", claims.Email)
	suite.Equal("forex-test", claims.Issuer)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
