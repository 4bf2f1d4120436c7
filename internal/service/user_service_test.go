package service

import (
	"context"
	"database/sql"
	"testing"

	"campus-quiz/internal/domain"
	"campus-quiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGetProfile(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	users.On("GetUserByID", mock.Anything, "u1").Return(&domain.User{
		ID: "u1", Name: "Jiya", Email: "jiya@csmu.edu", Role: domain.RoleMember,
	}, nil)

	profile, err := svc.GetProfile(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "Jiya", profile.Name)
	assert.Equal(t, domain.RoleMember, profile.Role)
}

func TestGetProfile_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	users.On("GetUserByID", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.GetProfile(context.Background(), "ghost")

	assert.True(t, domain.IsCode(err, domain.ErrNotFound))
}

func TestUpdateName_ReturnsFreshProfile(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	users.On("UpdateName", mock.Anything, "u1", "New Name").Return(nil)
	users.On("GetUserByID", mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "New Name"}, nil)

	profile, err := svc.UpdateName(context.Background(), "u1", "New Name")

	require.NoError(t, err)
	assert.Equal(t, "New Name", profile.Name)
}

func TestUpdateName_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	users.On("UpdateName", mock.Anything, "ghost", "New Name").Return(sql.ErrNoRows)

	_, err := svc.UpdateName(context.Background(), "ghost", "New Name")

	assert.True(t, domain.IsCode(err, domain.ErrNotFound))
}

func TestUpdatePassword_VerifiesCurrentPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	hash, err := bcrypt.GenerateFromPassword([]byte("old password"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetUserByID", mock.Anything, "u1").
		Return(&domain.User{ID: "u1", PasswordHash: string(hash)}, nil)
	users.On("UpdatePassword", mock.Anything, "u1", mock.AnythingOfType("string")).Return(nil)

	err = svc.UpdatePassword(context.Background(), "u1", &dto.UpdatePasswordRequest{
		CurrentPassword: "old password", NewPassword: "new password",
	})

	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestUpdatePassword_WrongCurrentPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	hash, err := bcrypt.GenerateFromPassword([]byte("old password"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetUserByID", mock.Anything, "u1").
		Return(&domain.User{ID: "u1", PasswordHash: string(hash)}, nil)

	err = svc.UpdatePassword(context.Background(), "u1", &dto.UpdatePasswordRequest{
		CurrentPassword: "wrong", NewPassword: "new password",
	})

	assert.True(t, domain.IsCode(err, domain.ErrInvalidCredentials))
	users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePassword_GoogleOnlyAccount(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	users.On("GetUserByID", mock.Anything, "u1").
		Return(&domain.User{ID: "u1", GoogleID: "g1"}, nil)

	err := svc.UpdatePassword(context.Background(), "u1", &dto.UpdatePasswordRequest{
		CurrentPassword: "anything", NewPassword: "new password",
	})

	assert.True(t, domain.IsCode(err, domain.ErrValidation))
}
