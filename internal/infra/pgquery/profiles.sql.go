package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const profileColumns = `id, full_name, phone, address, gender, theme, language, created_at, updated_at`

func scanProfile(row interface{ Scan(...any) error }, p *Profile) error {
	return row.Scan(
		&p.ID,
		&p.FullName,
		&p.Phone,
		&p.Address,
		&p.Gender,
		&p.Theme,
		&p.Language,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

const createProfile = `-- name: CreateProfile :exec
INSERT INTO profiles (id, full_name, phone, theme, language, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)`

type CreateProfileParams struct {
	ID        uuid.UUID
	FullName  string
	Phone     string
	Theme     string
	Language  string
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateProfile(ctx context.Context, db DBTX, arg CreateProfileParams) error {
	_, err := db.Exec(ctx, createProfile,
		arg.ID,
		arg.FullName,
		arg.Phone,
		arg.Theme,
		arg.Language,
		arg.CreatedAt,
	)
	return err
}

const getProfile = `-- name: GetProfile :one
SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

func (q *Queries) GetProfile(ctx context.Context, db DBTX, id uuid.UUID) (Profile, error) {
	var p Profile
	err := scanProfile(db.QueryRow(ctx, getProfile, id), &p)
	return p, err
}

// Invalid (NULL) params keep the stored column.
const updateProfile = `-- name: UpdateProfile :one
UPDATE profiles SET
    address    = COALESCE($2, address),
    gender     = COALESCE($3, gender),
    theme      = COALESCE($4, theme),
    language   = COALESCE($5, language),
    updated_at = $6
WHERE id = $1
RETURNING ` + profileColumns

type UpdateProfileParams struct {
	ID        uuid.UUID
	Address   pgtype.Text
	Gender    pgtype.Text
	Theme     pgtype.Text
	Language  pgtype.Text
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateProfile(ctx context.Context, db DBTX, arg UpdateProfileParams) (Profile, error) {
	row := db.QueryRow(ctx, updateProfile,
		arg.ID,
		arg.Address,
		arg.Gender,
		arg.Theme,
		arg.Language,
		arg.UpdatedAt,
	)
	var p Profile
	err := scanProfile(row, &p)
	return p, err
}
