package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinemateca/catalog-api/internal/api/metrics"
	"github.com/cinemateca/catalog-api/internal/core/domain"
	"github.com/cinemateca/catalog-api/internal/core/ports"
	"github.com/cinemateca/catalog-api/internal/core/token"
	"github.com/cinemateca/catalog-api/internal/pkg/passhash"
)

// AuthService implements registration, login, and the admin user queries.
type AuthService struct {
	repo   ports.UserRepository
	issuer *token.Issuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *token.Issuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, logger: logger}
}

// IsUsernameTaken reports whether an account with exactly this username
// exists. Advisory only: the unique index on the store is what actually
// guards against concurrent duplicate registrations.
func (s *AuthService) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	_, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Register creates a new account. The plaintext password is digested before
// it touches the repository and is never stored or returned.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || !domain.ValidRole(input.Role) {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrInvalidInput
	}

	taken, err := s.IsUsernameTaken(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrUserExists
	}

	user := &domain.User{
		Username:     input.Username,
		DisplayName:  input.DisplayName,
		PasswordHash: passhash.Digest(input.Password),
		Role:         input.Role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		}
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a bearer token. Unknown usernames and
// wrong passwords are indistinguishable to the caller: both come back as
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsernameFold(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !passhash.Matches(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return signed, user, nil
}

// GetUser returns a single account by ID.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// ListUsers returns all accounts ordered by display name.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}
