package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wanderhub/models"
	userService "wanderhub/services/user"
	"wanderhub/utils"
)

// RegisterUserHandler creates an end-user account and returns a session token.
func RegisterUserHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.User
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

// AuthenticateUserHandler verifies credentials and returns a fresh token.
func AuthenticateUserHandler(svc userService.UserService) gin.HandlerFunc {
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

// GetUserProfileHandler returns the authenticated user's profile.
func GetUserProfileHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := subjectID(c, "userID")
		if !ok {
			return
		}

		u, err := svc.GetByID(c.Request.Context(), userID)
		if err != nil {
			getLogger(c).Error("Failed to get user profile", zap.Error(err))
			respondError(c, err)
			return
		}
		if u == nil {
			utils.JSONError(c, http.StatusNotFound, "Not found", "user not found")
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// UpdateUserProfileHandler updates the authenticated user's profile.
func UpdateUserProfileHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := subjectID(c, "userID")
		if !ok {
			return
		}

		var req userService.ProfileUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		u, err := svc.UpdateProfile(c.Request.Context(), userID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		if u == nil {
			utils.JSONError(c, http.StatusNotFound, "Not found", "user not found")
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// RevokeUserTokenHandler invalidates the authenticated user's session token.
func RevokeUserTokenHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := subjectID(c, "userID")
		if !ok {
			return
		}

		if err := svc.RevokeToken(c.Request.Context(), userID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "token revoked"})
	}
}
