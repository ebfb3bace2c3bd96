package exchange

import (
	"fmt"
	"time"

	"ecopoints/internal/domain/catalog"

	"github.com/google/uuid"
)

// Order records a redemption. Name and cost are copied from the catalog at
// redemption time.
type Order struct {
	id          uuid.UUID
	userID      uuid.UUID
	productID   int
	productName string
	quantity    Quantity
	pointsSpent int64
	createdAt   time.Time
}

func NewOrder(userID uuid.UUID, p catalog.Product, q Quantity, now time.Time) *Order {
	return &Order{
		id:          uuid.New(),
		userID:      userID,
		productID:   p.ID,
		productName: p.Name,
		quantity:    q,
		pointsSpent: p.Points * int64(q.Int()),
		createdAt:   now,
	}
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) UserID() uuid.UUID    { return o.userID }
func (o *Order) ProductID() int       { return o.productID }
func (o *Order) ProductName() string  { return o.productName }
func (o *Order) Quantity() Quantity   { return o.quantity }
func (o *Order) PointsSpent() int64   { return o.pointsSpent }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

func (o *Order) Description() string {
	return fmt.Sprintf("Exchanged for %dx %s", o.quantity.Int(), o.productName)
}
