package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"ecopoints/internal/domain/profile"
	"ecopoints/internal/domain/user"
	reqdto "ecopoints/internal/handler/dto/request"
	"ecopoints/internal/infra"
	"ecopoints/internal/pkg/clock"
	"ecopoints/internal/pkg/errs"
	"ecopoints/internal/pkg/jwt"
	"ecopoints/internal/pkg/password"
	"ecopoints/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailAlreadyExists   = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type SignUpResult struct {
	UserID uuid.UUID
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	SignUp(ctx context.Context, req reqdto.SignUpRequest) (*SignUpResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	hasher     password.Hasher
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, hasher password.Hasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		hasher:     hasher,
		clock:      clk,
	}
}

// SignUp creates the member account and its profile row together.
func (a *authCommandsImpl) SignUp(ctx context.Context, req reqdto.SignUpRequest) (*SignUpResult, error) {
	registration, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	_, err = a.uow.CommandReads().UserByEmail(ctx, registration.Email().Value())
	switch {
	case err == nil:
		return nil, ErrEmailAlreadyExists
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	hash, err := a.hasher.Hash(registration.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	now := a.clock.Now()
	account := user.NewUser(registration, hash, user.RoleMember, now)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Users().Create(ctx, tx.DB(), account); derr != nil {
			// a concurrent sign-up can still win the unique index
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrEmailAlreadyExists)
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		p := profile.New(account.ID(), account.FullName().Value(), account.Phone().Value(), now)
		if derr := tx.Profiles().Create(ctx, tx.DB(), p); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SignUpResult{UserID: account.ID()}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	snapshot, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.issueTokens(snapshot.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), snapshot.ID, a.clock.Now())
	})
	if err != nil {
		// login already succeeded; last_login is informational
		slog.Warn("failed to update last login", "user_id", snapshot.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    snapshot.ID,
		Role:      role,
		TokenPair: tokenPair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Validate user still exists and is active
	snapshot, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if !snapshot.IsActive {
		return nil, ErrUserInactive
	}

	// the stored role wins so a demotion takes effect on the next refresh
	role, err := user.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.issueTokens(snapshot.ID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*shared.UserSnapshot, error) {
	snapshot, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as password mismatch to prevent user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := a.hasher.Compare(snapshot.PasswordHash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !snapshot.IsActive {
		return nil, ErrUserInactive
	}

	return snapshot, nil
}
