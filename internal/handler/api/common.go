package api

import (
	"encoding/json"

	reqdto "ecopoints/internal/handler/dto/request"
	"ecopoints/internal/handler/middleware"
	"ecopoints/internal/pkg/errs"
	"ecopoints/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

// bindStrictJSON rejects unknown fields, so a client cannot smuggle values
// such as points into a write.
func bindStrictJSON(c *gin.Context, obj any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}

// idempotencyKey returns nil when the header is absent.
func idempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(middleware.HeaderIdempotencyKey)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyKeyInvalid)
	}
	return &key, nil
}

func listParams(c *gin.Context) (*queries.Cursor, int, error) {
	var q reqdto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return nil, 0, err
	}
	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}
	return cursor, queries.ValidateLimit(q.Limit), nil
}
