package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wanderhub/services/errs"
	"wanderhub/utils"
)

// respondError maps service error kinds to HTTP status codes. Upstream
// failures surface as a 400 asking the caller to recheck input rather than a
// 5xx, since the common cause is an unroutable place name.
func respondError(c *gin.Context, err error) {
	var (
		validation *errs.ValidationError
		notFound   *errs.NotFoundError
		authz      *errs.AuthorizationError
		conflict   *errs.ConflictError
		upstream   *errs.UpstreamError
	)

	switch {
	case errors.As(err, &validation):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", validation.Message)
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", notFound.Error())
	case errors.As(err, &authz):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", authz.Message)
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, "Conflict", conflict.Message)
	case errors.As(err, &upstream):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", upstream.Message)
	default:
		getLogger(c).Error("Unhandled service error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error",
			"An unexpected error occurred. Please try again later.")
	}
}

// subjectID pulls an auth middleware context key ("userID" or "providerID").
// Returns false after writing a 401 when the key is missing.
func subjectID(c *gin.Context, key string) (string, bool) {
	val, exists := c.Get(key)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}
