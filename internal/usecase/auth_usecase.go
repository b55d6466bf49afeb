package usecase

import (
	"context"
	"errors"

	"github.com/Barshamagar123/skill-matcher/internal/domain/user"
	"github.com/Barshamagar123/skill-matcher/internal/pkg/jwt"
	ucauth "github.com/Barshamagar123/skill-matcher/internal/usecase/auth"

	"github.com/google/uuid"
)

type Session struct {
	User   user.User
	Tokens jwt.TokenPair
}

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (Session, error)
	Login(ctx context.Context, in ucauth.LoginInput) (Session, error)
	Refresh(ctx context.Context, refreshToken string) (jwt.TokenPair, error)
	Me(ctx context.Context, userID uuid.UUID) (user.User, error)
}

type Auth struct {
	authSvc *ucauth.Service
	users   user.Repository
	jwt     jwt.Service
}

func NewAuthUsecase(authSvc *ucauth.Service, users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: authSvc, users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (Session, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return Session{}, err
	}
	return u.session(usr)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (Session, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return Session{}, err
	}
	return u.session(usr)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (jwt.TokenPair, error) {
	if refreshToken == "" {
		return jwt.TokenPair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return jwt.TokenPair{}, ErrRefreshTokenExpired
		}
		return jwt.TokenPair{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return jwt.TokenPair{}, ErrInvalidRefreshToken
		}
		return jwt.TokenPair{}, ErrInternal
	}

	pair, err := u.jwt.GenerateTokenPair(subjectOf(usr))
	if err != nil {
		return jwt.TokenPair{}, ErrInternal
	}
	return pair, nil
}

func (u *Auth) Me(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return ucauth.Sanitize(usr), nil
}

func (u *Auth) session(usr user.User) (Session, error) {
	pair, err := u.jwt.GenerateTokenPair(subjectOf(usr))
	if err != nil {
		return Session{}, ErrInternal
	}
	return Session{User: usr, Tokens: pair}, nil
}

func subjectOf(usr user.User) jwt.Subject {
	return jwt.Subject{UserID: usr.ID, Email: usr.Email, Role: string(usr.Role)}
}
