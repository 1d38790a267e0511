package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/bridgeops/partnerflow/internal/auth"
	"github.com/bridgeops/partnerflow/internal/domain"
	"github.com/bridgeops/partnerflow/internal/mocks"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthService(userRepo *mocks.MockUserRepositoryIface) (*service.AuthService, *auth.PasswordHasher) {
	hasher := auth.NewPasswordHasher()
	return service.NewAuthService(userRepo, hasher, auth.NewTokenManager("test_secret", time.Hour)), hasher
}

func TestSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := service.SignupInput{
		Email:     "owner@harbortours.example",
		Password:  "correct_password",
		FirstName: "Maja",
		Partner:   true,
	}

	t.Run("partner signup gets the partner role and a token", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		userRepo.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(nil, domain.ErrUserNotFound)
		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *model.User) error {
				assert.Equal(t, model.RolePartner, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				user.ID = uuid.New()
				return nil
			})

		svc, _ := newAuthService(userRepo)

		output, err := svc.Signup(context.Background(), input)
		assert.NoError(t, err)
		assert.NotEmpty(t, output.Token)
		assert.Equal(t, model.RolePartner, output.User.Role)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		userRepo.EXPECT().
			FindByEmail(gomock.Any(), input.Email).
			Return(&model.User{Email: input.Email}, nil)

		svc, _ := newAuthService(userRepo)

		_, err := svc.Signup(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("short passwords are rejected", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		svc, _ := newAuthService(userRepo)

		weak := input
		weak.Password = "short"
		_, err := svc.Signup(context.Background(), weak)
		assert.ErrorIs(t, err, domain.ErrPasswordTooWeak)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := "owner@harbortours.example"

	t.Run("valid credentials issue a token", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		svc, hasher := newAuthService(userRepo)

		hash, _ := hasher.Hash("correct_password")
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), email).
			Return(&model.User{ID: uuid.New(), Email: email, Role: model.RolePartner, PasswordHash: hash}, nil)

		output, err := svc.Login(context.Background(), service.LoginInput{Email: email, Password: "correct_password"})
		assert.NoError(t, err)
		assert.NotEmpty(t, output.Token)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		svc, hasher := newAuthService(userRepo)

		hash, _ := hasher.Hash("correct_password")
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), email).
			Return(&model.User{ID: uuid.New(), Email: email, PasswordHash: hash}, nil)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, domain.ErrUserNotFound)

		_, err := svc.Login(context.Background(), service.LoginInput{Email: email, Password: "wrong_password"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

		_, err = svc.Login(context.Background(), service.LoginInput{Email: "ghost@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
