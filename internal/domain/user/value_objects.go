package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail     = errors.New("Please enter a valid email address")
	ErrEmailTooLong     = errors.New("Email must be less than 255 characters")
	ErrInvalidRole      = errors.New("invalid role")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters")
	ErrPasswordTooLong  = errors.New("Password must be less than 100 characters")
	ErrFullNameTooShort = errors.New("Full name must be at least 2 characters")
	ErrFullNameTooLong  = errors.New("Full name must be less than 100 characters")
	ErrPhoneTooShort    = errors.New("Phone number must be at least 10 digits")
	ErrPhoneTooLong     = errors.New("Phone number must be less than 20 characters")
)

const (
	maxEmailLen    = 255
	minPasswordLen = 6
	maxPasswordLen = 100
	minFullNameLen = 2
	maxFullNameLen = 100
	minPhoneLen    = 10
	maxPhoneLen    = 20
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if len(s) > maxEmailLen {
		return Email{}, ErrEmailTooLong
	}
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	n := utf8.RuneCountInString(s)
	if n < minPasswordLen {
		return Password{}, ErrPasswordTooShort
	}
	if n > maxPasswordLen {
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type FullName struct {
	value string
}

func NewFullName(s string) (FullName, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < minFullNameLen {
		return FullName{}, ErrFullNameTooShort
	}
	if n > maxFullNameLen {
		return FullName{}, ErrFullNameTooLong
	}
	return FullName{value: s}, nil
}

func (f FullName) Value() string {
	return f.value
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < minPhoneLen {
		return Phone{}, ErrPhoneTooShort
	}
	if n > maxPhoneLen {
		return Phone{}, ErrPhoneTooLong
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}
