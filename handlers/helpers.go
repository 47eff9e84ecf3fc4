package handlers

import (
	"github.com/gin-gonic/gin"
	apperrors "github.com/lumbunggroup/lumbung-backend/errors"
)

// bindJSONOrError binds the request body into obj and records a 400 on the
// context when it does not decode.
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return false
	}
	return true
}
