package jwt

import (
	"errors"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrSigningKey   = errors.New("token signing is only available with a shared secret")
)

// Claims mirrors the access token issued by Supabase Auth.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	jwks      *keyfunc.JWKS
	audience  string
	methods   []string
}

// NewService verifies HS256 tokens signed with the project's JWT secret.
func NewService(secretKey, audience string) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		audience:  audience,
		methods:   []string{jwt.SigningMethodHS256.Alg()},
	}
}

// NewJWKSService verifies asymmetric tokens against the project's JWKS endpoint.
func NewJWKSService(jwksURL, audience string, refresh time.Duration, onRefreshError func(error)) (*Service, error) {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		RefreshInterval:     refresh,
		RefreshUnknownKID:   true,
		RefreshErrorHandler: onRefreshError,
	})
	if err != nil {
		return nil, err
	}
	return &Service{
		jwks:     jwks,
		audience: audience,
		methods:  []string{"ES256", "RS256"},
	}, nil
}

func (s *Service) keyFunc(token *jwt.Token) (any, error) {
	if s.jwks != nil {
		return s.jwks.Keyfunc(token)
	}
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalidToken
	}
	return s.secretKey, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(s.methods),
		jwt.WithExpirationRequired(),
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, s.keyFunc, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SubjectID parses the "sub" claim as the profile id.
func (c *Claims) SubjectID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

// GenerateToken signs a Supabase-shaped token; used by local tooling and tests.
func (s *Service) GenerateToken(userID uuid.UUID, email string, ttl time.Duration) (string, error) {
	if s.jwks != nil {
		return "", ErrSigningKey
	}
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) Close() {
	if s.jwks != nil {
		s.jwks.EndBackground()
	}
}
