package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/minjaeoh/user_auth_app/internal/apperrors"
	"github.com/minjaeoh/user_auth_app/internal/core/domain"
	portssvc "github.com/minjaeoh/user_auth_app/internal/core/ports/services"
	"github.com/minjaeoh/user_auth_app/internal/core/services"
	"github.com/minjaeoh/user_auth_app/internal/dto"
	"github.com/minjaeoh/user_auth_app/internal/utils"
)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- RegisterUser Tests ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Sup3rSecret!",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("CreateUser", ctx, mock.MatchedBy(func(data domain.NewUserData) bool {
		return data.Email == req.Email &&
			data.Name == req.Name &&
			data.Provider == domain.ProviderCredentials &&
			data.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, data.PasswordHash)
	})).Return(&domain.User{
		ID:       1,
		Email:    req.Email,
		Name:     req.Name,
		Provider: domain.ProviderCredentials,
	}, nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(req.Email, user.Email)
	suite.Equal(req.Name, user.Name)
	suite.Equal(domain.ProviderCredentials, user.Provider)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_ValidationFailure_AllViolationsReported() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "T",
		Email:    "not-an-email",
		Password: "short",
	}

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)

	var verrs apperrors.ValidationErrors
	suite.Require().ErrorAs(err, &verrs)
	suite.Contains(verrs, "name")
	suite.Contains(verrs, "email")
	suite.Contains(verrs, "password")
	// "short" fails length plus three character classes; every violation is listed.
	suite.Len(verrs["password"], 4)

	// Validation failures never reach the store.
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Sup3rSecret!",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(&domain.User{
		ID:    42,
		Email: req.Email,
	}, nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicateEmail)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateRace_SurfacedFromStore() {
	// The pre-check missed a concurrent insert; the unique constraint
	// reports the duplicate from the store instead.
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Test User",
		Email:    "raced@example.com",
		Password: "Sup3rSecret!",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("CreateUser", ctx, mock.AnythingOfType("domain.NewUserData")).
		Return(nil, apperrors.ErrDuplicateEmail).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicateEmail)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetUserByID Tests ---

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	expectedUser := &domain.User{ID: 7, Name: "Found User"}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(7)).Return(expectedUser, nil).Once()

	user, err := suite.service.GetUserByID(ctx, 7)

	suite.Require().NoError(err)
	suite.Equal(expectedUser, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, 404)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- UpdateProfile Tests ---

func (suite *UserServiceTestSuite) TestUpdateProfile_NameOnly() {
	ctx := context.Background()
	email := "test@example.com"
	newName := "Renamed User"
	req := dto.UpdateProfileRequest{Name: &newName}

	suite.mockUserRepo.On("UpdateUser", ctx, email, mock.MatchedBy(func(patch domain.UserPatch) bool {
		return patch.Name != nil && *patch.Name == newName && patch.PasswordHash == nil
	})).Return(&domain.User{ID: 1, Email: email, Name: newName}, nil).Once()

	user, err := suite.service.UpdateProfile(ctx, email, req)

	suite.Require().NoError(err)
	suite.Equal(newName, user.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateProfile_PasswordIsRehashed() {
	ctx := context.Background()
	email := "test@example.com"
	newPassword := "N3wSecret!pw"
	req := dto.UpdateProfileRequest{Password: &newPassword}

	suite.mockUserRepo.On("UpdateUser", ctx, email, mock.MatchedBy(func(patch domain.UserPatch) bool {
		return patch.PasswordHash != nil &&
			*patch.PasswordHash != newPassword &&
			utils.CheckPasswordHash(newPassword, *patch.PasswordHash)
	})).Return(&domain.User{ID: 1, Email: email}, nil).Once()

	_, err := suite.service.UpdateProfile(ctx, email, req)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateProfile_InvalidPasswordRejected() {
	ctx := context.Background()
	weak := "weak"
	req := dto.UpdateProfileRequest{Password: &weak}

	user, err := suite.service.UpdateProfile(ctx, "test@example.com", req)

	suite.Require().Error(err)
	suite.Nil(user)

	var verrs apperrors.ValidationErrors
	suite.Require().ErrorAs(err, &verrs)
	suite.Contains(verrs, "password")
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_EmptyPatchPassesThrough() {
	ctx := context.Background()
	email := "test@example.com"
	existing := &domain.User{ID: 1, Email: email, Name: "Unchanged", CreatedAt: time.Now()}

	suite.mockUserRepo.On("UpdateUser", ctx, email, mock.MatchedBy(func(patch domain.UserPatch) bool {
		return patch.Name == nil && patch.PasswordHash == nil
	})).Return(existing, nil).Once()

	user, err := suite.service.UpdateProfile(ctx, email, dto.UpdateProfileRequest{})

	suite.Require().NoError(err)
	suite.Equal(existing, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- SetPassword Tests ---

func (suite *UserServiceTestSuite) TestSetPassword_Success() {
	ctx := context.Background()
	plaintext := "Fr3shSecret!"
	stored := &domain.User{ID: 9, Email: "reset@example.com"}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(9)).Return(stored, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, stored.Email, mock.MatchedBy(func(patch domain.UserPatch) bool {
		return patch.PasswordHash != nil && utils.CheckPasswordHash(plaintext, *patch.PasswordHash)
	})).Return(stored, nil).Once()

	err := suite.service.SetPassword(ctx, 9, plaintext)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSetPassword_UserGone() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(9)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.SetPassword(ctx, 9, "Fr3shSecret!")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

// --- DeleteUser Tests ---

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	email := "gone@example.com"

	suite.mockUserRepo.On("DeleteUser", ctx, email).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, email)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_RepoError() {
	ctx := context.Background()
	email := "gone@example.com"

	suite.mockUserRepo.On("DeleteUser", ctx, email).Return(assert.AnError).Once()

	err := suite.service.DeleteUser(ctx, email)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
