package handlers

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/rental-marketplace/internal/outcome"
	"github.com/BruksfildServices01/rental-marketplace/internal/schema"
)

// writeOutcome renders the result of a mutation.
func writeOutcome(c *gin.Context, out outcome.Outcome, err error) {
	if err != nil {
		if errors.Is(err, authz.ErrUnauthenticated) {
			httperr.Unauthenticated(c)
			return
		}
		code := httperr.BusinessCode(err)
		if code == "" {
			code = "internal_error"
		}
		slog.Error("action failed", "path", c.FullPath(), "code", code, "error", err)
		httperr.Internal(c, code, "An error occurred")
		return
	}

	if out.IsRedirect() {
		httpresp.Redirect(c, out.Redirect)
		return
	}
	httpresp.Message(c, out.Message)
}

// writeQueryError renders a failed read. It returns false when err is nil.
func writeQueryError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, authz.ErrUnauthenticated):
		httperr.Unauthenticated(c)
	case errors.Is(err, authz.ErrProfileRequired):
		httpresp.Redirect(c, outcome.ProfileCreatePath)
	case errors.Is(err, gorm.ErrRecordNotFound):
		httperr.NotFound(c, "not_found", err.Error())
	default:
		slog.Error("query failed", "path", c.FullPath(), "error", err)
		httperr.Internal(c, "internal_error", "An error occurred")
	}
	return true
}

// bindPayload reads the form, or answers the request itself and reports
// false.
func bindPayload(c *gin.Context) (schema.Payload, bool) {
	p, err := readPayload(c)
	switch {
	case err == nil:
		return p, true
	case errors.Is(err, errFormTooLarge):
		httperr.RequestTooLarge(c, "form_too_large", "File size must be less than 1 MB")
	default:
		httperr.BadRequest(c, "invalid_form", "Could not read the submitted form.")
	}
	return p, false
}
