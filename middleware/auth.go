package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	providerRepo "wanderhub/database/repository/provider"
	userRepo "wanderhub/database/repository/user"
	"wanderhub/utils"
)

// bearerToken pulls the raw token from the Authorization header.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
		"code":  0,
	})
}

// JWTAuthUserMiddleware authenticates end-user tokens. A token is valid only
// while its hash matches the one stored on the account, so rotation and
// revocation take effect immediately. Resolved tokens are cached in Redis to
// skip the Mongo lookup on repeated requests.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		subject, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" || role != "user" {
			abortUnauthorized(c)
			return
		}

		hash := utils.HashToken(tokenString)
		if cachedRole, cachedID := utils.LookupAuthSubject(hash); cachedRole == "user" && cachedID == subject {
			c.Set("userID", subject)
			c.Next()
			return
		}

		usr, err := repo.GetByTokenHash(c.Request.Context(), hash)
		if err != nil || usr == nil || usr.ID != subject {
			abortUnauthorized(c)
			return
		}
		utils.CacheAuthSubject(hash, "user", usr.ID)

		c.Set("userID", usr.ID)
		c.Next()
	}
}

// JWTAuthProviderMiddleware authenticates service-provider tokens. Same flow
// as the user middleware against the provider collection.
func JWTAuthProviderMiddleware(repo providerRepo.ProviderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		subject, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" || role != "provider" {
			abortUnauthorized(c)
			return
		}

		hash := utils.HashToken(tokenString)
		if cachedRole, cachedID := utils.LookupAuthSubject(hash); cachedRole == "provider" && cachedID == subject {
			c.Set("providerID", subject)
			c.Next()
			return
		}

		prov, err := repo.GetByTokenHash(c.Request.Context(), hash)
		if err != nil || prov == nil || prov.ID != subject {
			abortUnauthorized(c)
			return
		}
		utils.CacheAuthSubject(hash, "provider", prov.ID)

		c.Set("providerID", prov.ID)
		c.Next()
	}
}
