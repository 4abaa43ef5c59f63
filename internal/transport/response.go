package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ds124wfegd/travelbooker/internal/entity"

	"github.com/gin-gonic/gin"
)

// SuccessResponse представляет успешный ответ
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// statusFromError сопоставляет доменные ошибки с HTTP-статусами
func statusFromError(err error) int {
	switch {
	case errors.Is(err, entity.ErrDestinationNotFound),
		errors.Is(err, entity.ErrPackageNotFound),
		errors.Is(err, entity.ErrCustomerNotFound),
		errors.Is(err, entity.ErrBookingNotFound),
		errors.Is(err, entity.ErrAdminNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrEmailExists):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInvalidDateRange),
		errors.Is(err, entity.ErrInvalidPrice),
		errors.Is(err, entity.ErrNegativeSpots),
		errors.Is(err, entity.ErrNotEnoughSpots),
		errors.Is(err, entity.ErrInvalidBookingStatus),
		errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// parseID достает числовой идентификатор из пути
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

// pageQuery читает номер страницы, по умолчанию первая
func pageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}
