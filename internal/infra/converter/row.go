package converter

import (
	"time"

	"ecopoints/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

// rowConverters teach copier how pgtype nullable columns map onto view fields.
var rowConverters = []copier.TypeConverter{
	{
		SrcType: pgtype.Timestamptz{},
		DstType: time.Time{},
		Fn: func(src any) (any, error) {
			return pgconv.TimeFromPgtype(src.(pgtype.Timestamptz)), nil
		},
	},
	{
		SrcType: pgtype.Timestamptz{},
		DstType: (*time.Time)(nil),
		Fn: func(src any) (any, error) {
			return pgconv.TimePtrFromPgtype(src.(pgtype.Timestamptz)), nil
		},
	},
	{
		SrcType: pgtype.Text{},
		DstType: (*string)(nil),
		Fn: func(src any) (any, error) {
			return pgconv.StringPtrFromPgtype(src.(pgtype.Text)), nil
		},
	},
	{
		SrcType: pgtype.UUID{},
		DstType: (*uuid.UUID)(nil),
		Fn: func(src any) (any, error) {
			return pgconv.UUIDPtrFromPgtype(src.(pgtype.UUID)), nil
		},
	},
	{
		SrcType: pgtype.Date{},
		DstType: "",
		Fn: func(src any) (any, error) {
			return pgconv.DateStringFromPgtype(src.(pgtype.Date)), nil
		},
	},
}

// CopyRow copies a generated row into a view struct by field name.
func CopyRow[T any](row any) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, row, copier.Option{Converters: rowConverters}); err != nil {
		return nil, err
	}
	return &dst, nil
}

// CopyRows maps a slice of generated rows with CopyRow.
func CopyRows[T any, R any](rows []R) ([]*T, error) {
	out := make([]*T, 0, len(rows))
	for i := range rows {
		v, err := CopyRow[T](rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
