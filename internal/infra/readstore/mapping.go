package readstore

import (
	"time"

	"github.com/Evidive-blue/evidive/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

// Row structs keep pgx nullable types; views use pointers and ISO dates.
var viewCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
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
			SrcType: pgtype.Timestamptz{},
			DstType: (*time.Time)(nil),
			Fn: func(src any) (any, error) {
				return pgconv.TimePtrFromPgtype(src.(pgtype.Timestamptz)), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(dateLayout), nil
			},
		},
	},
}

func copyView(to, from any) error {
	return copier.CopyWithOption(to, from, viewCopyOption)
}
