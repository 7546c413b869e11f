package handler

import (
	domainerrors "rating/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// PageQuery carries the optional limit/offset query parameters.
type PageQuery struct {
	Limit  *int `query:"limit" validate:"omitempty,gte=0"`
	Offset *int `query:"offset" validate:"omitempty,gte=0"`
}

// bindPageQuery parses limit and offset. Absent parameters stay nil so the
// use case can apply its defaults.
func bindPageQuery(c echo.Context) (*PageQuery, error) {
	var limit, offset int
	binder := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset)
	if err := binder.BindError(); err != nil {
		return nil, domainerrors.NewValidationError("limit and offset must be integers")
	}

	q := &PageQuery{}
	if c.QueryParam("limit") != "" {
		q.Limit = &limit
	}
	if c.QueryParam("offset") != "" {
		q.Offset = &offset
	}

	if err := c.Validate(q); err != nil {
		return nil, err
	}

	return q, nil
}
