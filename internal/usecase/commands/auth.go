package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"smartpark/internal/domain/user"
	reqdto "smartpark/internal/handler/dto/request"
	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/pkg/errs"
	"smartpark/internal/pkg/jwt"
	"smartpark/internal/pkg/password"
	"smartpark/internal/usecase/queries"
	"smartpark/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrEmailAlreadyUsed     = errs.New("email already used")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	User      *queries.AuthorizedUserView
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterUserRequest) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	db         *pgxpool.Pool
}

func NewAuthCommands(
	userRepo UserRepository,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	db *pgxpool.Pool,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		readStore:  readStore,
		jwtService: jwtService,
		db:         db,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterUserRequest) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if _, err = user.NewPassword(req.Password); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	role := user.RoleOperator
	if req.Role != "" {
		role, err = user.NewRole(req.Role)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity := user.NewUser(email, hash, role)

	_, err = shared.RunInTx(ctx, a.db, func(tx db.DBTX) (struct{}, error) {
		if createErr := a.userRepo.Create(ctx, tx, entity); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return struct{}{}, ErrEmailAlreadyUsed
			}
			return struct{}{}, errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	return a.readStore.FindByID(ctx, entity.ID())
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	view, err := a.validateUser(ctx, req)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.issueTokens(view.ID, role)
	if err != nil {
		return nil, err
	}

	if updateErr := a.updateLastLogin(ctx, view.ID); updateErr != nil {
		// Login already succeeded; losing last_login is acceptable.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", updateErr.Error())
	}

	return &LoginResult{User: view, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) validateUser(ctx context.Context, req reqdto.LoginRequest) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) updateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := shared.RunInTx(ctx, a.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, a.userRepo.UpdateLastLogin(ctx, tx, userID)
	})
	return err
}
