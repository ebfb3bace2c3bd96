package converter

import (
	"ecopoints/internal/domain/exchange"
	"ecopoints/internal/domain/ledger"
	"ecopoints/internal/domain/pickup"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/pkg/pgconv"
)

func PickupToCreateParams(r *pickup.Request) pgquery.CreatePickupRequestParams {
	return pgquery.CreatePickupRequestParams{
		ID:              r.ID(),
		UserID:          r.UserID(),
		Address:         r.Address().String(),
		WasteType:       r.Category().String(),
		EstimatedWeight: r.Weight().Kilograms(),
		PreferredDate:   pgconv.DateToPgtype(r.PreferredDate().Time()),
		PointsAwarded:   r.PointsAwarded(),
		CreatedAt:       pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

// OrderToCreateParams narrows to the INTEGER columns. Product ids and
// quantities are bounded well below int32 by the catalog and Quantity.
func OrderToCreateParams(o *exchange.Order) pgquery.CreateProductOrderParams {
	return pgquery.CreateProductOrderParams{
		ID:          o.ID(),
		UserID:      o.UserID(),
		ProductID:   int32(o.ProductID()),
		ProductName: o.ProductName(),
		Quantity:    int32(o.Quantity().Int()),
		PointsSpent: o.PointsSpent(),
		CreatedAt:   pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func EntryToCreateParams(e *ledger.Entry) pgquery.CreatePointsTransactionParams {
	return pgquery.CreatePointsTransactionParams{
		ID:              e.ID(),
		UserID:          e.UserID(),
		Amount:          e.Amount(),
		TransactionType: e.Kind().String(),
		Description:     e.Description(),
		PickupRequestID: pgconv.UUIDPtrToPgtype(e.PickupRequestID()),
		ProductOrderID:  pgconv.UUIDPtrToPgtype(e.ProductOrderID()),
		CreatedAt:       pgconv.TimeToPgtype(e.CreatedAt()),
	}
}
