package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/minjaeoh/user_auth_app/internal/core/domain"
	"github.com/minjaeoh/user_auth_app/internal/dto"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, data domain.NewUserData) (*domain.User, error) {
	args := m.Called(ctx, data)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, email string, patch domain.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, email, patch)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// --- Mock ResetTokenRepository ---

type MockResetTokenRepository struct {
	mock.Mock
}

func (m *MockResetTokenRepository) CreateResetToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	args := m.Called(ctx, userID, token, expires)
	return args.Error(0)
}

func (m *MockResetTokenRepository) VerifyAndConsumeResetToken(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResetTokenRepository) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock MailSender ---

type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendPasswordResetEmail(ctx context.Context, to, resetURL string) error {
	args := m.Called(ctx, to, resetURL)
	return args.Error(0)
}

// --- Mock UserWriterSvc ---

type MockUserWriter struct {
	mock.Mock
}

func (m *MockUserWriter) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserWriter) UpdateProfile(ctx context.Context, email string, req dto.UpdateProfileRequest) (*domain.User, error) {
	args := m.Called(ctx, email, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserWriter) SetPassword(ctx context.Context, userID int64, plaintext string) error {
	args := m.Called(ctx, userID, plaintext)
	return args.Error(0)
}
