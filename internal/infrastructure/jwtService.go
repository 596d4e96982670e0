package infrastructure

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/apperrors"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/entities"
)

// JWTService issues HS256 tokens whose subject is the user's email.
type JWTService struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}

func NewJWTService(secretKey, issuer string, ttl time.Duration) (*JWTService, error) {
	if secretKey == "" {
		return nil, errors.New("jwt secret key must not be empty")
	}
	return &JWTService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
		now:       time.Now,
	}, nil
}

func (j *JWTService) GenerateToken(user *entities.User) (string, error) {
	now := j.now()
	claims := jwt.RegisteredClaims{
		Subject:   user.Email,
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateToken returns the email claim of a well-formed, correctly signed,
// unexpired token. Every other outcome is Unauthenticated.
func (j *JWTService) ValidateToken(tokenString string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return j.secretKey, nil
	}, opts...)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindUnauthenticated, "invalid token", err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", apperrors.New(apperrors.KindUnauthenticated, "invalid token")
	}
	return claims.Subject, nil
}
