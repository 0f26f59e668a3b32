package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps the service error taxonomy onto the response
// envelope. Unexpected persistence faults surface as 500s unchanged.
func writeServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		resp.ValidationFailed(c, "validation failed", verr.Fields)
	case errors.Is(err, services.ErrUnknownUser):
		resp.NotFound(c, "no user registered with this email")
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, "concurrent update, retry with fresh state")
	case errors.Is(err, services.ErrNoMechanicAvailable):
		// business condition, not a fault: the complaint stays queued unassigned
		resp.OK(c, gin.H{"assigned": false, "reason": "no mechanic available"})
	default:
		resp.ServerError(c, err)
	}
}
