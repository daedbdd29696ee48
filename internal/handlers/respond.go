package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/dto"
	"github.com/kasku/kasku_backend/internal/middleware"
)

// respondSuccess writes the success envelope.
func respondSuccess(c *gin.Context, httpStatus int, message string, data any) {
	c.JSON(httpStatus, dto.Response{Status: dto.StatusSuccess, Message: message, Data: data})
}

// respondError maps a service error to the HTTP status and envelope the SPA
// expects. Client faults are "fail", everything unexpected is a 500 "error"
// with the detail kept out of the response body.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Response{Status: dto.StatusFail, Message: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Response{Status: dto.StatusFail, Message: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusBadRequest, dto.Response{Status: dto.StatusFail, Message: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, dto.Response{Status: dto.StatusFail, Message: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Response{Status: dto.StatusFail, Message: err.Error()})
	default:
		logger.Error("request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Response{Status: dto.StatusError, Message: "Internal server error"})
	}
}

// respondBindError reports a malformed or invalid request body.
func respondBindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("request binding failed", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.Response{Status: dto.StatusFail, Message: "Invalid request: " + err.Error()})
}

// callerID pulls the authenticated user ID set by the auth middleware. A miss
// means the route was registered outside the authenticated group.
func callerID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Response{Status: dto.StatusFail, Message: "Unauthorized"})
	}
	return userID, ok
}
