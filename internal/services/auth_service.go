package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/intervueapp/intervue/internal/models"
	mongorepo "github.com/intervueapp/intervue/internal/repositories/mongo"
	"github.com/intervueapp/intervue/internal/utils"
)

// SessionClaims is the session token payload. The auth middleware reads
// role and email back out of it.
type SessionClaims struct {
	jwt.RegisteredClaims
	Role  string `json:"role"`
	Email string `json:"email"`
}

type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (*models.User, string, error)
	SignIn(ctx context.Context, email, password string) (*models.User, string, error)
}

type authService struct {
	users    mongorepo.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users mongorepo.UserRepository, secret string) AuthService {
	return &authService{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: 24 * time.Hour,
	}
}

func (s *authService) SignUp(ctx context.Context, name, email, password string) (*models.User, string, error) {
	const op = "AuthService.SignUp"

	if name == "" || email == "" || password == "" {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "name, email, and password are required", nil)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	u := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleCandidate,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, "", utils.E(utils.CodeConflict, op, "email already registered", err)
		}
		return nil, "", utils.E(utils.CodeInternal, op, "failed to create user", err)
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return u, token, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	const op = "AuthService.SignIn"

	if email == "" || password == "" {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, "", utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
		}
		return nil, "", utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	// OAuth-only accounts have no stored hash and cannot sign in with
	// credentials.
	if u.Password == "" {
		return nil, "", utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}
	if err := utils.CheckPassword(u.Password, password); err != nil {
		return nil, "", utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return u, token, nil
}

func (s *authService) issueToken(u *models.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		Role:  string(u.Role),
		Email: u.Email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
