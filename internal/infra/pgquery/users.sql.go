package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, password_hash, full_name, phone, role, is_active, last_login, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }, u *User) error {
	return row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.Phone,
		&u.Role,
		&u.IsActive,
		&u.LastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}

const createUser = `-- name: CreateUser :one
INSERT INTO users (id, email, password_hash, full_name, phone, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + userColumns

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	Role         string
	IsActive     bool
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (User, error) {
	row := db.QueryRow(ctx, createUser,
		arg.ID,
		arg.Email,
		arg.PasswordHash,
		arg.FullName,
		arg.Phone,
		arg.Role,
		arg.IsActive,
		arg.CreatedAt,
	)
	var u User
	err := scanUser(row, &u)
	return u, err
}

const findUserByEmail = `-- name: FindUserByEmail :one
SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	var u User
	err := scanUser(db.QueryRow(ctx, findUserByEmail, email), &u)
	return u, err
}

const findUserByID = `-- name: FindUserByID :one
SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	var u User
	err := scanUser(db.QueryRow(ctx, findUserByID, id), &u)
	return u, err
}

const updateUserLastLogin = `-- name: UpdateUserLastLogin :exec
UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1`

type UpdateUserLastLoginParams struct {
	ID        uuid.UUID
	LastLogin pgtype.Timestamptz
}

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, arg UpdateUserLastLoginParams) error {
	_, err := db.Exec(ctx, updateUserLastLogin, arg.ID, arg.LastLogin)
	return err
}

const lockUserForUpdate = `-- name: LockUserForUpdate :one
SELECT id FROM users WHERE id = $1 FOR UPDATE`

// LockUserForUpdate serialises balance-changing flows of one user until the
// surrounding transaction ends.
func (q *Queries) LockUserForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	var locked uuid.UUID
	err := db.QueryRow(ctx, lockUserForUpdate, id).Scan(&locked)
	return locked, err
}
