package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lumbunggroup/lumbung-backend/errors"
	"github.com/lumbunggroup/lumbung-backend/logger"
	"github.com/lumbunggroup/lumbung-backend/types"
)

// ErrorHandler renders the last error pushed with c.Error. AppErrors keep
// their status and type; anything else becomes a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		last := c.Errors.Last()
		err := last.Err

		if appError, ok := err.(*errors.AppError); ok {
			statusCode := appError.HTTPStatus
			if statusCode == 0 {
				statusCode = http.StatusInternalServerError
			}
			logger.LogHTTPError(c, err, statusCode, fmt.Sprintf("%s error", appError.Type))

			response := types.ErrorResponse{
				Type:    string(appError.Type),
				Message: appError.Message,
				Code:    strconv.Itoa(statusCode),
				Fields:  appError.Fields,
			}
			if appError.Detail != "" && exposesDetail(appError.Type) {
				response.Detail = appError.Detail
			}
			c.JSON(statusCode, response)
			return
		}

		if last.Type == gin.ErrorTypeBind {
			logger.LogHTTPError(c, err, http.StatusBadRequest, "Request binding error")
			response := types.ErrorResponse{
				Type:    string(errors.ValidationError),
				Message: "Failed to bind request",
				Code:    strconv.Itoa(http.StatusBadRequest),
			}
			if gin.IsDebugging() {
				response.Detail = err.Error()
			}
			c.JSON(http.StatusBadRequest, response)
			return
		}

		if last.Type == gin.ErrorTypePublic {
			logger.LogHTTPError(c, err, http.StatusBadRequest, "Public error")
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Type:    string(errors.ValidationError),
				Message: err.Error(),
				Code:    strconv.Itoa(http.StatusBadRequest),
			})
			return
		}

		logger.LogHTTPError(c, err, http.StatusInternalServerError, "Unexpected server error")
		response := types.ErrorResponse{
			Type:    string(errors.ServerError),
			Message: "Internal Server Error",
			Code:    strconv.Itoa(http.StatusInternalServerError),
		}
		if gin.IsDebugging() {
			response.Detail = err.Error()
		}
		c.JSON(http.StatusInternalServerError, response)
	}
}

// exposesDetail reports whether an error's detail is safe to return. Delivery
// and server failures keep their cause in the logs only.
func exposesDetail(t errors.ErrorType) bool {
	switch t {
	case errors.ValidationError, errors.NotFoundError, errors.ConflictError:
		return true
	default:
		return gin.IsDebugging()
	}
}
