package application_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"quotidepense-be/internal/application"
	"quotidepense-be/pkg/helpers"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type UserServiceSuite struct {
	suite.Suite
	svc *application.UserService
	jwt *helpers.JWTManager
}

func (s *UserServiceSuite) SetupTest() {
	s.jwt = helpers.NewJWTManager("test-secret", time.Hour)
	s.svc = application.NewUserService(newMemUserRepo(), s.jwt, testLogger())
}

func (s *UserServiceSuite) TestRegisterIssuesVerifiableToken() {
	ctx := context.Background()
	u, token, err := s.svc.Register(ctx, application.RegisterInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), u.ID)
	assert.NotEqual(s.T(), "secret1", u.Password, "password must be stored hashed")

	claims, err := s.jwt.Parse(token)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), u.ID, claims.UserID)
}

func (s *UserServiceSuite) TestRegisterDuplicateEmail() {
	ctx := context.Background()
	_, _, err := s.svc.Register(ctx, application.RegisterInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(s.T(), err)

	_, _, err = s.svc.Register(ctx, application.RegisterInput{Email: "a@x.com", Password: "other", Name: "B"})
	assert.ErrorIs(s.T(), err, application.ErrEmailTaken)
}

func (s *UserServiceSuite) TestLoginAfterRegister() {
	ctx := context.Background()
	u, _, err := s.svc.Register(ctx, application.RegisterInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(s.T(), err)

	logged, token, err := s.svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), u.ID, logged.ID)

	claims, err := s.jwt.Parse(token)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), u.ID, claims.UserID)
}

// Unknown email and wrong password must be indistinguishable.
func (s *UserServiceSuite) TestLoginFailuresCollapse() {
	ctx := context.Background()
	_, _, err := s.svc.Register(ctx, application.RegisterInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(s.T(), err)

	_, _, errWrongPw := s.svc.Login(ctx, "a@x.com", "nope")
	_, _, errUnknown := s.svc.Login(ctx, "ghost@x.com", "nope")

	assert.ErrorIs(s.T(), errWrongPw, application.ErrInvalidCredentials)
	assert.ErrorIs(s.T(), errUnknown, application.ErrInvalidCredentials)
	assert.Equal(s.T(), errWrongPw.Error(), errUnknown.Error())
}

func (s *UserServiceSuite) TestGetProfileIdempotent() {
	ctx := context.Background()
	u, _, err := s.svc.Register(ctx, application.RegisterInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(s.T(), err)

	first, err := s.svc.GetProfile(ctx, u.ID)
	require.NoError(s.T(), err)
	second, err := s.svc.GetProfile(ctx, u.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), first, second)
}

func (s *UserServiceSuite) TestUpdateProfileChangesNameOnly() {
	ctx := context.Background()
	u, _, err := s.svc.Register(ctx, application.RegisterInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(s.T(), err)

	updated, err := s.svc.UpdateProfile(ctx, u.ID, "Alice")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Alice", updated.Name)
	assert.Equal(s.T(), u.Email, updated.Email)
}

func (s *UserServiceSuite) TestProfileUnknownUser() {
	ctx := context.Background()
	_, err := s.svc.GetProfile(ctx, "missing")
	assert.ErrorIs(s.T(), err, application.ErrUserNotFound)

	_, err = s.svc.UpdateProfile(ctx, "missing", "X")
	assert.ErrorIs(s.T(), err, application.ErrUserNotFound)
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}
