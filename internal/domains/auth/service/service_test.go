package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"taskdesk/config"
	"taskdesk/infras/otel/mocks"
	"taskdesk/infras/session"
	sessionMocks "taskdesk/infras/session/mocks"
	"taskdesk/internal/domains/auth/model/dto"
	"taskdesk/internal/domains/auth/service"
	userMocks "taskdesk/internal/domains/user/mocks"
	userModel "taskdesk/internal/domains/user/model"
	"taskdesk/shared/failure"
	"taskdesk/shared/password"
)

func newService(t *testing.T) (service.Auth, *userMocks.MockUser, *sessionMocks.MockSession) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockSession := sessionMocks.NewMockSession(ctrl)

	svc := service.New(mockUserRepo, mockSession, &config.Config{}, mocks.NewOtel())

	return svc, mockUserRepo, mockSession
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	}

	t.Run("successful registration starts a session", func(t *testing.T) {
		svc, mockUserRepo, mockSession := newService(t)

		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockUserRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, req.Username, user.Username)
				assert.Equal(t, req.Email, user.Email)
				assert.NotEqual(t, req.Password, user.Password, "password must be stored hashed")
				assert.NoError(t, password.Verify(req.Password, user.Password))

				return nil
			})
		mockSession.EXPECT().
			Start(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, identity session.Identity) (string, error) {
				assert.Equal(t, req.Username, identity.Username)
				assert.Equal(t, req.Email, identity.Email)

				return "session-token", nil
			})

		res, err := svc.Register(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "session-token", res.Token)
		assert.Equal(t, req.Username, res.Username)
		assert.NotEmpty(t, res.UserID)
	})

	t.Run("duplicate email is rejected with 409", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Register(context.Background(), req)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	const plaintext = "correct horse battery"

	hashed, err := password.Hash(plaintext)
	require.NoError(t, err)

	storedUser := userModel.User{
		ID:       "user-id",
		Username: "alice",
		Email:    "alice@example.com",
		Password: hashed,
	}

	t.Run("successful login", func(t *testing.T) {
		svc, mockUserRepo, mockSession := newService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser, nil)
		mockSession.EXPECT().
			Start(gomock.Any(), gomock.Any()).
			Return("session-token", nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    storedUser.Email,
			Password: plaintext,
		})

		require.NoError(t, err)
		assert.Equal(t, "session-token", res.Token)
		assert.Equal(t, storedUser.ID, res.UserID)
	})

	t.Run("unknown email gets the generic failure", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: plaintext,
		})

		require.Error(t, err)
		assert.EqualError(t, err, "invalid email or password")
	})

	t.Run("wrong password gets the same generic failure", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    storedUser.Email,
			Password: "wrong password",
		})

		require.Error(t, err)
		assert.EqualError(t, err, "invalid email or password")
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, mockSession := newService(t)

	mockSession.EXPECT().
		End(gomock.Any(), "session-token").
		Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), "session-token"))
}
