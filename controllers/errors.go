package controllers

import (
	"errors"

	"cooksync/pkg/resp"
	"cooksync/services"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps the service sentinels onto HTTP statuses. Anything
// unrecognized is a 500; nothing is swallowed.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAuthRequired):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrMembershipRequired), errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyLiked), errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidPackage):
		resp.Unprocessable(c, err.Error())
	case errors.Is(err, services.ErrChargeFailed):
		resp.BadGateway(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
