package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrNonPositiveAmount  = errors.New("amount must be positive")
	ErrInvalidKind        = errors.New("invalid transaction type")
)

type Kind string

const (
	KindEarned Kind = "earned"
	KindSpent  Kind = "spent"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	return k == KindEarned || k == KindSpent
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// InsufficientPointsError reports how far a balance is from covering a cost.
type InsufficientPointsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("You need %d more EcoPoints to complete this exchange", e.Shortfall())
}

func (e *InsufficientPointsError) Shortfall() int64 {
	return e.Required - e.Available
}

func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}

// CheckSufficient returns an *InsufficientPointsError when balance < cost.
func CheckSufficient(balance, cost int64) error {
	if balance < cost {
		return &InsufficientPointsError{Required: cost, Available: balance}
	}
	return nil
}
