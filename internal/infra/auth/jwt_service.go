package auth

import (
	"strings"
	"time"

	"studymind/config"
	"studymind/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Only symmetric HMAC algorithms are accepted.
type jwtService struct {
	secret    []byte
	method    jwt.SigningMethod
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg.Security.SecretKey, cfg.Security.Algorithm, cfg.Security.AccessTokenTTL())
}

func newJWTService(secret, algorithm string, accessTTL time.Duration) (*jwtService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method, err := hmacMethod(algorithm)
	if err != nil {
		return nil, err
	}

	return &jwtService{
		secret:    []byte(secret),
		method:    method,
		accessTTL: accessTTL,
		now:       time.Now,
	}, nil
}

func hmacMethod(algorithm string) (jwt.SigningMethod, error) {
	switch strings.ToUpper(strings.TrimSpace(algorithm)) {
	case "", jwt.SigningMethodHS256.Alg():
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512, nil
	default:
		return nil, errors.Errorf("unsupported jwt algorithm: %s", algorithm)
	}
}

// Issue signs a token whose subject is the given username.
func (s *jwtService) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("token subject must not be empty")
	}

	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks signature, algorithm and expiry, then returns the subject.
func (s *jwtService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", classifyTokenError(err)
	}

	if claims.Subject == "" {
		return "", service.ErrTokenMalformed
	}

	return claims.Subject, nil
}

func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return service.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return service.ErrTokenMalformed
	default:
		// Wrong secret, unexpected algorithm and unverifiable tokens all end up here.
		return service.ErrTokenInvalidSignature
	}
}
