package exchange

import (
	"errors"
	"strconv"
	"strings"
)

var ErrQuantityTooLarge = errors.New("Quantity must be at most 10000")

const (
	MinQuantity = 1
	MaxQuantity = 10000
)

// Quantity is a redemption count. It never drops below 1.
type Quantity struct {
	n int
}

// NewQuantity clamps n to at least 1.
func NewQuantity(n int) (Quantity, error) {
	if n < MinQuantity {
		n = MinQuantity
	}
	if n > MaxQuantity {
		return Quantity{}, ErrQuantityTooLarge
	}
	return Quantity{n: n}, nil
}

// ParseQuantity reads the leading decimal digits of s, so "3abc" is 3.
// Input with no leading digits becomes 1.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || neg {
		return NewQuantity(MinQuantity)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return Quantity{}, ErrQuantityTooLarge
	}
	return NewQuantity(n)
}

func (q Quantity) Int() int { return q.n }

func (q Quantity) Increment() Quantity {
	if q.n >= MaxQuantity {
		return Quantity{n: MaxQuantity}
	}
	return Quantity{n: q.n + 1}
}

func (q Quantity) Decrement() Quantity {
	if q.n <= MinQuantity {
		return Quantity{n: MinQuantity}
	}
	return Quantity{n: q.n - 1}
}
