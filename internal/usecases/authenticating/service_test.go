package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-pilot-api/internal/config"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:        "test-secret",
			TokenTTLHours: 1,
		},
	}
}

func testUser(t *testing.T, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           "USR001",
		Name:         "Thandi",
		Email:        "thandi@example.com",
		PasswordHash: string(hash),
		Active:       true,
	}
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	user := testUser(t, "s3cret")
	userRepo.EXPECT().GetByEmail(gomock.Any(), "thandi@example.com").Return(user, nil)

	token, err := service.LoginUser(context.Background(), "  Thandi@Example.com ", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The issued token must validate against the same secret.
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "USR001", claims.UserID)
	assert.Equal(t, "thandi@example.com", claims.UserEmail)
}

func TestLoginUserFailures(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		setup     func(userRepo *mocks.MockUserRepository)
		expectErr error
	}{
		{
			name:      "missing credentials",
			email:     "",
			password:  "",
			setup:     func(userRepo *mocks.MockUserRepository) {},
			expectErr: ErrMissingRequiredData,
		},
		{
			name:     "unknown user",
			email:    "nobody@example.com",
			password: "whatever",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
			},
			expectErr: ErrUserNotFound,
		},
		{
			name:     "disabled account",
			email:    "thandi@example.com",
			password: "s3cret",
			setup: func(userRepo *mocks.MockUserRepository) {
				user := testUser(t, "s3cret")
				user.Active = false
				userRepo.EXPECT().GetByEmail(gomock.Any(), "thandi@example.com").Return(user, nil)
			},
			expectErr: ErrUserDisabled,
		},
		{
			name:     "wrong password",
			email:    "thandi@example.com",
			password: "not-the-password",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetByEmail(gomock.Any(), "thandi@example.com").Return(testUser(t, "s3cret"), nil)
			},
			expectErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, testConfig())

			_, err := service.LoginUser(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, tt.expectErr)
			assert.True(t, IsCredentialsError(err) || tt.expectErr == ErrMissingRequiredData)
		})
	}
}

func TestValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
			UserID: "USR001",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte("another-secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
			UserID: "USR001",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestGetUserProfileStripsPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	userRepo.EXPECT().GetByID(gomock.Any(), "USR001").Return(testUser(t, "s3cret"), nil)

	user, err := service.GetUserProfile(context.Background(), "USR001")
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

func TestGetUserProfileNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	userRepo.EXPECT().GetByID(gomock.Any(), "USR404").Return(nil, nil)

	_, err := service.GetUserProfile(context.Background(), "USR404")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
