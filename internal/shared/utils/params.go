package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"oficina/internal/shared/constants"
	"oficina/internal/shared/errors"
)

// ParseIDParam parses a positive numeric path parameter. entityName is used
// in the error message, e.g. "ticket".
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(paramName), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + entityName + " ID")
	}
	return uint(id), nil
}

// GetAdminID returns the admin id stored by the auth middleware.
func GetAdminID(c *gin.Context) (uint, error) {
	v, exists := c.Get(constants.ContextKeyAdminID)
	if !exists {
		return 0, errors.NewUnauthorizedError("Not authenticated")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.NewUnauthorizedError("Not authenticated")
	}
	return id, nil
}
