package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/labstack/gommon/log"

	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/member"
	apperr "task-collab.com/task-collab/internal/errors"
	model "task-collab.com/task-collab/internal/models"
	repository "task-collab.com/task-collab/internal/repositories"
	"task-collab.com/task-collab/internal/services"
)

// UserStore is the slice of the user repository the service needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// MemberRegistrar gives every new user its member.
type MemberRegistrar interface {
	Execute(ctx context.Context, req services.RegisterMemberRequest) services.Response[*member.Member]
}

type TokenPair struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type Account struct {
	UserID   string `json:"user_id"`
	MemberID string `json:"member_id"`
	Email    string `json:"email"`
}

// Service signs users up, logs them in and authenticates their tokens.
// Client mistakes come back as *errors.Exception; anything else is an
// infrastructure error.
type Service struct {
	users   UserStore
	members MemberRegistrar
	hasher  *PasswordHasher
	jwt     *JWTManager
}

func NewService(users UserStore, members MemberRegistrar, hasher *PasswordHasher, jwt *JWTManager) *Service {
	return &Service{
		users:   users,
		members: members,
		hasher:  hasher,
		jwt:     jwt,
	}
}

func (s *Service) SignUp(ctx context.Context, email, password string) (*Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperr.Validation("invalid email format")
	}
	if len(password) < MinPasswordLength {
		return nil, apperr.Validation("password must be at least %d characters", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return nil, apperr.Validation("password must be at most %d characters", MaxPasswordLength)
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email existence: %w", err)
	}
	if exists {
		return nil, apperr.Conflict("user with this email already exists")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           identity.NewUserID().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, apperr.Conflict("user with this email already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// every user has exactly one member; undo the user when registration fails
	registered := s.members.Execute(ctx, services.RegisterMemberRequest{UserID: user.ID})
	if registered.IsLeft() {
		if err := s.users.Delete(context.WithoutCancel(ctx), user.ID); err != nil {
			log.Errorf("sign up: remove user %s without member: %v", user.ID, err)
		}
		return nil, registered.LeftValue()
	}

	return &Account{
		UserID:   user.ID,
		MemberID: registered.RightValue().ID().String(),
		Email:    user.Email,
	}, nil
}

func (s *Service) LogIn(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &TokenPair{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.jwt.AccessTokenDuration(),
	}, nil
}

// Authenticate returns the user id carried by a valid access token.
func (s *Service) Authenticate(token string) (string, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		log.Debugf("authenticate: %v", err)
		return "", apperr.ErrInvalidToken
	}
	return claims.Subject, nil
}
