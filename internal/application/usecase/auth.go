package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain/apperror"
	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository/database"
	"storefront/pkg/logger"
)

const tokenType = "Bearer"

type AuthConfig struct {
	Secret   string
	TokenTTL int64  `yaml:"token_ttl_in_minutes"`
	Issuer   string `yaml:"issuer"`
}

// Claims are the JWT claims issued on login. Subject is the user id.
type Claims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) Actor() dto.Actor {
	return dto.Actor{ID: c.Subject, Role: c.Role}
}

type Authenticator struct {
	users  database.Retriever[model.User]
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewAuthenticator(users database.Retriever[model.User], cfg AuthConfig) *Authenticator {
	return &Authenticator{
		users:  users,
		secret: []byte(cfg.Secret),
		ttl:    time.Duration(cfg.TokenTTL) * time.Minute,
		issuer: cfg.Issuer,
		now:    time.Now,
	}
}

var errInvalidCredentials = apperror.Unauthenticated("invalid email or password")

func (a *Authenticator) Login(ctx context.Context, in dto.LoginInput) (*dto.Token, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, apperror.Validation("email", "email and password are required")
	}

	u, err := a.users.GetBy(ctx, "email", email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errInvalidCredentials
		}

		return nil, repositoryError("user", "get", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)); err != nil {
		logger.Debug("password mismatch", "user", u.ID)

		return nil, errInvalidCredentials
	}

	now := a.now()
	expires := now.Add(a.ttl)
	claims := &Claims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return nil, apperror.Storage("failed to sign token", err)
	}

	return &dto.Token{
		AccessToken: signed,
		TokenType:   tokenType,
		ExpiresAt:   expires.Unix(),
		User:        *u,
	}, nil
}

// Parse verifies a signed token and returns its claims.
func (a *Authenticator) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.now))
	if err != nil {
		return nil, apperror.Unauthenticated("invalid token")
	}

	return claims, nil
}
