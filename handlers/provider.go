package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderhub/models"
	providerService "wanderhub/services/provider"
	"wanderhub/utils"
)

// RegisterProviderHandler creates a provider account. The service registration
// itself happens later through the per-vertical catalog endpoints.
func RegisterProviderHandler(svc providerService.ProviderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ServiceProvider
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		resp, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// AuthenticateProviderHandler verifies credentials and returns a fresh token.
func AuthenticateProviderHandler(svc providerService.ProviderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		resp, err := svc.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetProviderAccountHandler returns the authenticated provider's account,
// including the linked service registration if one exists.
func GetProviderAccountHandler(svc providerService.ProviderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		p, err := svc.GetByID(c.Request.Context(), providerID)
		if err != nil {
			respondError(c, err)
			return
		}
		if p == nil {
			utils.JSONError(c, http.StatusNotFound, "Not found", "provider not found")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// RevokeProviderTokenHandler invalidates the provider's session token.
func RevokeProviderTokenHandler(svc providerService.ProviderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		if err := svc.RevokeToken(c.Request.Context(), providerID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "token revoked"})
	}
}
