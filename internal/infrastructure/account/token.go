package account

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/club-stats/internal/domain/team"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

const (
	defaultTokenTTL = 30 * time.Minute
	tokenTypeBearer = "bearer"
)

type TokenConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// TokenService issues and verifies HS256 access tokens whose subject is the
// team id.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  clockwork.Clock
}

func NewTokenService(cfg TokenConfig, clock clockwork.Clock) (*TokenService, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, fmt.Errorf("token secret is required")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTokenTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &TokenService{
		secret: []byte(cfg.Secret),
		issuer: strings.TrimSpace(cfg.Issuer),
		ttl:    cfg.TTL,
		clock:  clock,
	}, nil
}

func (s *TokenService) Issue(_ context.Context, teamID int64) (usecase.AccessToken, error) {
	if teamID <= 0 {
		return usecase.AccessToken{}, fmt.Errorf("%w: team id is required", usecase.ErrInvalidInput)
	}

	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(teamID, 10),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return usecase.AccessToken{}, fmt.Errorf("sign access token: %w", err)
	}

	return usecase.AccessToken{
		Token:     signed,
		TokenType: tokenTypeBearer,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *TokenService) VerifyAccessToken(_ context.Context, token string) (team.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return team.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return team.Principal{}, fmt.Errorf("%w: could not validate credentials: %v", usecase.ErrUnauthorized, err)
	}

	teamID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || teamID <= 0 {
		return team.Principal{}, fmt.Errorf("%w: token subject is not a team id", usecase.ErrUnauthorized)
	}

	return team.Principal{TeamID: teamID}, nil
}
