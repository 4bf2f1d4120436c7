package service

import (
	"context"
	"testing"
	"time"

	"campus-quiz/internal/config"
	"campus-quiz/internal/domain"
	"campus-quiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey: "test-secret-key-for-auth-service",
			TokenTTL:  time.Hour,
		},
	}
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	_, err := NewAuthService(new(MockUserRepository), &config.Config{})
	assert.Error(t, err)
}

func TestRegister_CreatesUserWithHashedPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc, err := NewAuthService(users, testAuthConfig())
	require.NoError(t, err)

	var created *domain.User
	users.On("GetUserByEmail", mock.Anything, "jiya@csmu.edu").Return(nil, nil)
	users.On("CreateUser", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.User) }).
		Return(nil)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Jiya", Email: " Jiya@CSMU.edu ", Password: "hunter2hunter2", College: "CSMU",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "jiya@csmu.edu", user.Email, "email is normalized")
	assert.NotEqual(t, "hunter2hunter2", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter2hunter2")))
	assert.Equal(t, domain.RoleMember, created.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc, err := NewAuthService(users, testAuthConfig())
	require.NoError(t, err)

	users.On("GetUserByEmail", mock.Anything, "jiya@csmu.edu").
		Return(&domain.User{ID: "u1", Email: "jiya@csmu.edu"}, nil)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Jiya", Email: "jiya@csmu.edu", Password: "hunter2hunter2",
	})

	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrEmailTaken))
	users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestLogin_Succeeds(t *testing.T) {
	users := new(MockUserRepository)
	svc, err := NewAuthService(users, testAuthConfig())
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetUserByEmail", mock.Anything, "jiya@csmu.edu").
		Return(&domain.User{ID: "u1", Email: "jiya@csmu.edu", PasswordHash: string(hash)}, nil)

	user, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "jiya@csmu.edu", Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	users := new(MockUserRepository)
	svc, err := NewAuthService(users, testAuthConfig())
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetUserByEmail", mock.Anything, "jiya@csmu.edu").
		Return(&domain.User{ID: "u1", PasswordHash: string(hash)}, nil)
	users.On("GetUserByEmail", mock.Anything, "ghost@csmu.edu").Return(nil, nil)

	_, wrongPass := svc.Login(context.Background(), &dto.LoginRequest{Email: "jiya@csmu.edu", Password: "nope"})
	_, noUser := svc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@csmu.edu", Password: "nope"})

	require.Error(t, wrongPass)
	require.Error(t, noUser)
	assert.Equal(t, wrongPass.Error(), noUser.Error())
	assert.True(t, domain.IsCode(wrongPass, domain.ErrInvalidCredentials))
}

func TestLogin_GoogleOnlyAccountHasNoPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc, err := NewAuthService(users, testAuthConfig())
	require.NoError(t, err)

	users.On("GetUserByEmail", mock.Anything, "jiya@csmu.edu").
		Return(&domain.User{ID: "u1", GoogleID: "g1"}, nil)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "jiya@csmu.edu", Password: "anything"})

	assert.True(t, domain.IsCode(err, domain.ErrInvalidCredentials))
}

func TestCreateAndValidateJWT_RoundTrip(t *testing.T) {
	svc, err := NewAuthService(new(MockUserRepository), testAuthConfig())
	require.NoError(t, err)

	token, err := svc.CreateJWT(&domain.User{ID: "u1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "u1", claims.Subject)
}

func TestValidateJWT_RejectsTamperedToken(t *testing.T) {
	svc, err := NewAuthService(new(MockUserRepository), testAuthConfig())
	require.NoError(t, err)

	token, err := svc.CreateJWT(&domain.User{ID: "u1"})
	require.NoError(t, err)

	_, err = svc.ValidateJWT(token + "x")
	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}

func TestValidateJWT_RejectsExpiredToken(t *testing.T) {
	cfg := testAuthConfig()
	cfg.JWT.TokenTTL = -time.Minute
	svc, err := NewAuthService(new(MockUserRepository), cfg)
	require.NoError(t, err)

	token, err := svc.CreateJWT(&domain.User{ID: "u1"})
	require.NoError(t, err)

	_, err = svc.ValidateJWT(token)
	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}

func TestHandleGoogleCallback_RejectsStateMismatch(t *testing.T) {
	svc, err := NewAuthService(new(MockUserRepository), testAuthConfig())
	require.NoError(t, err)

	_, err = svc.HandleGoogleCallback(context.Background(), "code", "state-a", "state-b")
	assert.ErrorIs(t, err, ErrInvalidAuthState)
}
