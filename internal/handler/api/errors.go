package api

import (
	"log/slog"
	"net/http"

	"github.com/Evidive-blue/evidive/internal/handler/httperr"
	"github.com/Evidive-blue/evidive/internal/handler/middleware"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInternal       = "Internal server error"
	msgGateway        = "Payment provider error"
	msgUnauthorized   = "Unauthorized"
	msgInvalidRequest = "Invalid request"
	maxStackLines     = 10
)

// statusOf maps the error taxonomy onto HTTP. Unmarked errors are internal.
func statusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrGateway):
		return http.StatusBadGateway
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope. Client errors carry the sentinel
// text; gateway and internal failures get a fixed message.
func respondError(c *gin.Context, err error) {
	status := statusOf(err)
	switch status {
	case http.StatusBadGateway:
		slog.Warn("payment provider error",
			"request_id", middleware.GetRequestID(c),
			"path", c.FullPath(),
			"error", err.Error(),
		)
		httperr.AbortWithError(c, status, err, msgGateway, nil)
	case http.StatusInternalServerError:
		slog.Error("internal error",
			"request_id", middleware.GetRequestID(c),
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, maxStackLines),
		)
		httperr.AbortWithError(c, status, err, msgInternal, nil)
	default:
		httperr.AbortWithError(c, status, err, errs.PublicMessage(err), nil)
	}
}

func respondBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, err.Error())
}

func respondInvalidParam(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

// requireUser is only false when a route is mounted without RequireAuth.
func requireUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized, nil)
	}
	return id, ok
}

func parseIDParam(c *gin.Context, name, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondInvalidParam(c, err, msg)
		return uuid.Nil, false
	}
	return id, true
}
