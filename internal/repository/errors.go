package repository

import (
	"errors"
	"strings"

	"github.com/IsPeeves/lumenixorg/internal/apperr"

	"gorm.io/gorm"
)

// classify maps driver-level failures onto the shared taxonomy so handlers can
// answer 404/409/503 without inspecting gorm errors themselves.
func classify(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(notFoundMsg)
	case strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "SQLSTATE 23505"):
		return apperr.Conflict("record already exists")
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "SQLSTATE 08"):
		return apperr.StoreUnavailable("database unavailable")
	default:
		return err
	}
}
