package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bridgeops/partnerflow/internal/auth"
	"github.com/bridgeops/partnerflow/internal/domain"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/repository"
	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 8

// AuthService handles signup and login. Tokens carry the user's role so the
// middleware can gate partner and admin routes without a database read.
type AuthService struct {
	userRepo repository.UserRepositoryIface
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
	validate *validator.Validate
}

func NewAuthService(userRepo repository.UserRepositoryIface, hasher *auth.PasswordHasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		validate: validator.New(),
	}
}

type SignupInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Partner   bool   `json:"partner"`
}

type AuthOutput struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Signup registers a new user. Partner signups get the PARTNER role and are
// routed into onboarding on first login.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	if len(input.Password) < minPasswordLength {
		return nil, domain.ErrPasswordTooWeak
	}

	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	role := model.RoleConsumer
	if input.Partner {
		role = model.RolePartner
	}

	user := &model.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *model.User) (*AuthOutput, error) {
	token, err := s.tokens.Generate(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	return &AuthOutput{Token: token, User: user}, nil
}
