package handler

import (
	"errors"
	"net/http"

	"backend/internal/model"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP status codes and writes the
// standard error envelope.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, model.ErrInvalidRule):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrConflict), errors.Is(err, model.ErrDuplicateInstance):
		status = http.StatusConflict
	}
	c.JSON(status, response.Error(status, err.Error()))
}
