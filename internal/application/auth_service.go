package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cinelog/cinelog-api/internal/domain/entity"
	"github.com/cinelog/cinelog-api/internal/domain/repository"
	"github.com/cinelog/cinelog-api/pkg/helpers"
)

var (
	// ErrUserExists is returned when a registration collides with an
	// existing username or email.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials deliberately does not distinguish an unknown
	// username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService handles registration and login. Token issuance is delegated
// to the TokenManager; password hashing to bcrypt helpers.
type AuthService struct {
	Users  repository.UserRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Tokens: tokens, Logger: logger}
}

// Register creates a new account. The password is stored only as a salted
// one-way hash; the returned user never carries the plain text.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	taken, err := s.Users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUserExists
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user registered")
	}
	return u, nil
}

// Login verifies the credentials and issues a signed token. Unknown users
// and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, err
	}
	if u == nil || !helpers.CompareHashAndPassword(u.Password, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Generate(u.ID, u.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}
