package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/IsPeeves/lumenixorg/internal/apperr"

	"github.com/gin-gonic/gin"
)

// respondError translates an error from the lower layers into the HTTP
// response. Server faults are logged and masked; everything else carries its
// message to the client.
func respondError(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}

	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		c.JSON(status, gin.H{"error": msg, "fields": ve.Fields})
		return
	}
	c.JSON(status, gin.H{"error": msg})
}

// parseID reads a numeric path parameter. A non-numeric id is a client error,
// reported under the given label.
func parseID(c *gin.Context, param, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + label + " id"})
		return 0, false
	}
	return uint(id), true
}
