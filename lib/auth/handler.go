package authhandler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"campus-outpass-backend/config"
	rosterstore "campus-outpass-backend/lib/roster/store"
	authutils "campus-outpass-backend/lib/utils/auth-utils"
	"campus-outpass-backend/memstore"
	"campus-outpass-backend/models"
	authapimodels "campus-outpass-backend/models/api/auth"
	identityapimodels "campus-outpass-backend/models/api/identity"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Provider interface {
	Login(identifier, password string) (response authapimodels.JWTResponse, err error)
	FaceVerify(ctx context.Context) (response authapimodels.JWTResponse, err error)
	Me(ctx *fiber.Ctx) (identityapimodels.IdentityView, error)
	RefreshToken(refreshToken string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(memstore.DB)
}

func NewInstance(db *memstore.Database) Provider {
	return impl{
		rosterStore: rosterstore.NewInstance(db),
	}
}

type impl struct {
	rosterStore rosterstore.Provider
}

func (i impl) Login(identifier, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("identifier", identifier)
	user := i.rosterStore.ValidateCredentials(identifier, password)
	if user == nil {
		logger.Debug("sign-in attempt failed")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	resp, err := i.issueTokens(user.ID, user.Name, user.Role)
	if err != nil {
		logger.WithError(err).Error("JWT generation failed")
		return authapimodels.JWTResponse{}, err
	}
	logger.WithField("user_id", user.ID).Info("user signed in")
	return resp, nil
}

// FaceVerify is the stubbed biometric flow: no image is ever inspected,
// the call just simulates the verification latency and signs in the
// configured demo student.
func (i impl) FaceVerify(ctx context.Context) (authapimodels.JWTResponse, error) {
	delay := time.Second * time.Duration(config.Conf.FaceVerify.DelayInSec)
	select {
	case <-ctx.Done():
		return authapimodels.JWTResponse{}, ctx.Err()
	case <-time.After(delay):
	}
	userID := config.Conf.FaceVerify.DemoUserID
	logger := log.WithField("user_id", userID)
	user := i.rosterStore.GetByID(userID)
	if user == nil || !user.Role.IsStudent() {
		logger.Error("demo student for face verification is not in the roster")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	resp, err := i.issueTokens(user.ID, user.Name, user.Role)
	if err != nil {
		logger.WithError(err).Error("JWT generation failed")
		return authapimodels.JWTResponse{}, err
	}
	logger.Info("user signed in via face verification stub")
	return resp, nil
}

func (i impl) Me(ctx *fiber.Ctx) (identityapimodels.IdentityView, error) {
	claims := authutils.GetClaims(ctx)
	userID, _ := claims["sub"].(string)
	user := i.rosterStore.GetByID(userID)
	if user == nil {
		return identityapimodels.IdentityView{}, errors.New("user not found")
	}
	return identityapimodels.IdentityConvert(*user), nil
}

func (i impl) RefreshToken(refreshToken string) (authapimodels.JWTResponse, error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "invalid refresh token")
	}
	userID, _ := claims["sub"].(string)
	user := i.rosterStore.GetByID(userID)
	if user == nil {
		return authapimodels.JWTResponse{}, errors.New("user not found")
	}
	return i.issueTokens(user.ID, user.Name, user.Role)
}

func (i impl) issueTokens(userID, name string, role models.UserRole) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(userID, name, role)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	refresh, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refresh,
	}, nil
}
