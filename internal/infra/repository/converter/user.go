package converter

import (
	"ecopoints/internal/domain/profile"
	"ecopoints/internal/domain/user"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) pgquery.CreateUserParams {
	return pgquery.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		FullName:     u.FullName().Value(),
		Phone:        u.Phone().Value(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func ProfileToCreateParams(p *profile.Profile) pgquery.CreateProfileParams {
	prefs := p.Preferences()
	return pgquery.CreateProfileParams{
		ID:        p.UserID(),
		FullName:  p.FullName(),
		Phone:     p.Phone(),
		Theme:     string(prefs.Theme),
		Language:  string(prefs.Language),
		CreatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}
