package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/errors"
)

// ParseIDParam parses a positive numeric ID from a URL path parameter.
// entityName is used in the error message (e.g. "ticket").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(paramName), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + entityName + " ID")
	}
	return uint(id), nil
}

// ParseOptionalIDQuery parses an optional positive numeric query parameter.
// It returns nil when the parameter is absent or empty.
func ParseOptionalIDQuery(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, errors.NewValidationError("Invalid " + key)
	}
	v := uint(id)
	return &v, nil
}

// OptionalQuery returns a pointer to the query value, or nil when it is
// absent or empty.
func OptionalQuery(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}
