package profile

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	userID      uuid.UUID
	fullName    string
	phone       string
	address     *Address
	gender      *Gender
	preferences Preferences
	updatedAt   time.Time
}

func New(userID uuid.UUID, fullName, phone string, now time.Time) *Profile {
	return &Profile{
		userID:      userID,
		fullName:    fullName,
		phone:       phone,
		preferences: DefaultPreferences(),
		updatedAt:   now,
	}
}

// Reconstruct rebuilds a stored profile. Stored values are trusted.
func Reconstruct(userID uuid.UUID, fullName, phone string, address, gender *string, prefs Preferences, updatedAt time.Time) *Profile {
	p := &Profile{
		userID:      userID,
		fullName:    fullName,
		phone:       phone,
		preferences: prefs,
		updatedAt:   updatedAt,
	}
	if address != nil {
		a := Address{value: *address}
		p.address = &a
	}
	if gender != nil {
		g := Gender(*gender)
		p.gender = &g
	}
	return p
}

func (p *Profile) UserID() uuid.UUID        { return p.userID }
func (p *Profile) FullName() string         { return p.fullName }
func (p *Profile) Phone() string            { return p.phone }
func (p *Profile) Address() *Address        { return p.address }
func (p *Profile) Gender() *Gender          { return p.gender }
func (p *Profile) Preferences() Preferences { return p.preferences }
func (p *Profile) UpdatedAt() time.Time     { return p.updatedAt }

// Apply writes the validated changes in s. Unset fields are kept.
func (p *Profile) Apply(s Settings, now time.Time) {
	if s.Address != nil {
		a := *s.Address
		p.address = &a
	}
	if s.Gender != nil {
		g := *s.Gender
		p.gender = &g
	}
	if s.Theme != nil {
		p.preferences.Theme = *s.Theme
	}
	if s.Language != nil {
		p.preferences.Language = *s.Language
	}
	p.updatedAt = now
}
