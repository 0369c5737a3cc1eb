package authhandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"campus-outpass-backend/config"
	authutils "campus-outpass-backend/lib/utils/auth-utils"
	"campus-outpass-backend/memstore"
)

func newTestHandler() Provider {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 120
	config.Conf.FaceVerify.DemoUserID = "STU001"
	return NewInstance(memstore.New())
}

func TestLogin(t *testing.T) {
	handler := newTestHandler()

	t.Run(`a successful sign-in carries identity claims`, func(t *testing.T) {
		resp, err := handler.Login("STU001", "student123")
		require.Nil(t, err)
		require.NotEmpty(t, resp.Token)
		require.NotEmpty(t, resp.RefreshToken)

		claims, err := authutils.ParseToken(resp.Token)
		require.Nil(t, err)
		require.Equal(t, "STU001", claims["sub"])
		require.Equal(t, "John Smith", claims["name"])
		require.Equal(t, "student", claims["role"])
	})

	t.Run(`bad credentials`, func(t *testing.T) {
		_, err := handler.Login("STU001", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefreshToken(t *testing.T) {
	handler := newTestHandler()

	t.Run(`refresh issues a fresh pair`, func(t *testing.T) {
		resp, err := handler.Login("james.carter@university.edu", "warden123")
		require.Nil(t, err)

		refreshed, err := handler.RefreshToken(resp.RefreshToken)
		require.Nil(t, err)
		claims, err := authutils.ParseToken(refreshed.Token)
		require.Nil(t, err)
		require.Equal(t, "WAR001", claims["sub"])
	})

	t.Run(`garbage is refused`, func(t *testing.T) {
		_, err := handler.RefreshToken("not-a-token")
		require.NotNil(t, err)
	})
}

func TestFaceVerify(t *testing.T) {
	handler := newTestHandler()

	t.Run(`the stub signs in the demo student after the delay`, func(t *testing.T) {
		resp, err := handler.FaceVerify(context.Background())
		require.Nil(t, err)
		claims, err := authutils.ParseToken(resp.Token)
		require.Nil(t, err)
		require.Equal(t, "STU001", claims["sub"])
	})

	t.Run(`a cancelled context aborts the wait`, func(t *testing.T) {
		config.Conf.FaceVerify.DelayInSec = 60
		defer func() { config.Conf.FaceVerify.DelayInSec = 0 }()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := handler.FaceVerify(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}
