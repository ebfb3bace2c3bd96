package pickup

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrAddressTooShort = errors.New("Address must be at least 10 characters")
	ErrAddressTooLong  = errors.New("Address must be at most 500 characters")
	ErrDateRequired    = errors.New("Please select a date")
	ErrInvalidDate     = errors.New("Please enter a valid date")
)

const (
	MinAddressLength = 10
	MaxAddressLength = 500

	DateLayout = "2006-01-02"
)

type Address struct {
	value string
}

func NewAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < MinAddressLength {
		return Address{}, ErrAddressTooShort
	}
	if n > MaxAddressLength {
		return Address{}, ErrAddressTooLong
	}
	return Address{value: s}, nil
}

func (a Address) String() string { return a.value }

// PreferredDate is a calendar day with no time of day. Past days are accepted.
type PreferredDate struct {
	day time.Time
}

func NewPreferredDate(s string) (PreferredDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PreferredDate{}, ErrDateRequired
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return PreferredDate{}, ErrInvalidDate
	}
	return PreferredDate{day: t}, nil
}

func PreferredDateFromTime(t time.Time) PreferredDate {
	y, m, d := t.Date()
	return PreferredDate{day: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d PreferredDate) Time() time.Time { return d.day }
func (d PreferredDate) String() string  { return d.day.Format(DateLayout) }
