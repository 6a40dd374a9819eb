package repository

import (
	"context"
	"time"

	"smartpark/internal/domain/user"
	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5)`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive())
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("user already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*user.User, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, email, password_hash, role, is_active, last_login, created_at, updated_at
		FROM users
		WHERE email = $1`,
		email)

	return scanUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*user.User, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, email, password_hash, role, is_active, last_login, created_at, updated_at
		FROM users
		WHERE id = $1`,
		id)

	return scanUser(row)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE users
		SET last_login = now(), updated_at = now()
		WHERE id = $1`,
		id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanUser(row interface{ Scan(dest ...any) error }) (*user.User, error) {
	var (
		id           uuid.UUID
		email        string
		passwordHash string
		role         string
		isActive     bool
		lastLogin    pgtype.Timestamptz
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(&id, &email, &passwordHash, &role, &isActive, &lastLogin, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	em, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt email in storage", err)
	}
	rl, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt role in storage", err)
	}

	var last *time.Time
	if lastLogin.Valid {
		t := lastLogin.Time
		last = &t
	}

	return user.ReconstructUser(id, em, passwordHash, rl, isActive, last, createdAt, updatedAt), nil
}
