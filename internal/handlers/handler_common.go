package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/splitnest/expense_tracker_app/internal/apperrors"
	"github.com/splitnest/expense_tracker_app/internal/dto"
	"github.com/splitnest/expense_tracker_app/internal/middleware"
)

// respondError maps service errors to HTTP statuses with the response
// envelope. Anything unrecognized is a 500 with a generic message.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(notFoundMsg))
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusBadRequest, dto.Fail(userFacingMessage(err)))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail(userFacingMessage(err)))
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled service error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
	}
}

// userFacingMessage strips the sentinel prefix that services wrap with,
// leaving the readable part of messages like "validation failed: ...".
func userFacingMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{apperrors.ErrValidation, apperrors.ErrDuplicate, apperrors.ErrForbidden} {
		if rest, found := strings.CutPrefix(msg, sentinel.Error()+": "); found {
			return rest
		}
	}
	return msg
}

// requireSubject aborts with 401 unless the authenticated subject is the
// account addressed by ownerID.
func requireSubject(c *gin.Context, ownerID string) bool {
	if !middleware.SubjectMatches(c, ownerID) {
		c.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return false
	}
	return true
}
