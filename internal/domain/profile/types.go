package profile

import (
	"errors"
	"unicode/utf8"
)

var (
	ErrAddressTooLong  = errors.New("Address must be less than 500 characters")
	ErrInvalidGender   = errors.New("Please select a valid gender")
	ErrInvalidTheme    = errors.New("Theme must be light or dark")
	ErrInvalidLanguage = errors.New("Language must be en or id")
	ErrProfileNotFound = errors.New("profile not found")
)

const MaxAddressLength = 500

type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

func (g Gender) String() string { return string(g) }

func NewGender(s string) (Gender, error) {
	switch g := Gender(s); g {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay:
		return g, nil
	default:
		return "", ErrInvalidGender
	}
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func NewTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case ThemeLight, ThemeDark:
		return t, nil
	default:
		return "", ErrInvalidTheme
	}
}

type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageIndonesian Language = "id"
)

func NewLanguage(s string) (Language, error) {
	switch l := Language(s); l {
	case LanguageEnglish, LanguageIndonesian:
		return l, nil
	default:
		return "", ErrInvalidLanguage
	}
}

type Address struct {
	value string
}

func NewAddress(s string) (Address, error) {
	if utf8.RuneCountInString(s) > MaxAddressLength {
		return Address{}, ErrAddressTooLong
	}
	return Address{value: s}, nil
}

func (a Address) String() string { return a.value }

// Preferences are per-user display settings stored with the profile.
type Preferences struct {
	Theme    Theme
	Language Language
}

func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight, Language: LanguageEnglish}
}
