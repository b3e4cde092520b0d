package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/AshisChetia/bookmart/internal/domain/errors"
	"github.com/AshisChetia/bookmart/internal/server/http/dto"
)

const (
	msgInvalidRequest = "invalid request"
	msgNotFound       = "not found"
	msgInternal       = "something went wrong"
)

// pathID parses a positive int64 path parameter. Malformed ids fail
// the request before any store access.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewError(msgInvalidRequest))
		return 0, false
	}
	return id, true
}

// respondError maps domain errors to the failure envelope. The cause
// is attached to the gin context so the request logger records it
// server-side; the client only sees the opaque message.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.NewError(msgInvalidRequest))
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewError(msgNotFound))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewError(msgInternal))
	}
}
