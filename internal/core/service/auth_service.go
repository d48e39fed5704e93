package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/dogmap/dogmap-api/internal/api/metrics"
	"github.com/dogmap/dogmap-api/internal/core/domain"
	"github.com/dogmap/dogmap-api/internal/core/ports"
	"github.com/dogmap/dogmap-api/internal/core/validation"
)

// tokenRe matches the simulated token shape: token_<userId>_<epochMillis>.
var tokenRe = regexp.MustCompile(`^token_(\d+)_(\d+)$`)

// AuthService implements login and token parsing. The token is plain
// text with no signature — the scheme simulates bearer authentication
// and must not be mistaken for a hardened mechanism.
type AuthService struct {
	users  ports.UserRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewAuthService(users ports.UserRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, logger: logger, now: time.Now}
}

// Login validates credential shapes before any lookup, then matches the
// email exactly and compares the stored password.
func (s *AuthService) Login(_ context.Context, email, password string) (string, error) {
	if ok, _ := validation.Email(email); !ok {
		metrics.LoginsTotal.WithLabelValues("invalid_input").Inc()
		return "", domain.ErrInvalidEmail
	}
	if ok, _ := validation.Password(password); !ok {
		metrics.LoginsTotal.WithLabelValues("invalid_input").Inc()
		return "", domain.ErrInvalidPassword
	}

	user, err := s.users.FindUserByEmail(email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("bad_credentials").Inc()
		s.logger.Warn().Str("email", email).Msg("login attempt for unregistered email")
		return "", domain.ErrEmailNotRegistered
	}
	if user.Password != password {
		metrics.LoginsTotal.WithLabelValues("bad_credentials").Inc()
		s.logger.Warn().Int("user_id", user.ID).Msg("login attempt with wrong password")
		return "", domain.ErrWrongPassword
	}

	token := fmt.Sprintf("token_%d_%d", user.ID, s.now().UnixMilli())
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Int("user_id", user.ID).Msg("login succeeded")
	return token, nil
}

// ParseToken decodes the user id from a raw token and checks that the
// user still exists. Stateless aside from the store lookup.
func (s *AuthService) ParseToken(_ context.Context, raw string) (int, error) {
	m := tokenRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, domain.ErrMalformedToken
	}

	userID, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, domain.ErrMalformedToken
	}

	if _, err := s.users.FindUserByID(userID); err != nil {
		return 0, domain.ErrUnknownTokenUser
	}
	return userID, nil
}
