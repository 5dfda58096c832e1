package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"accounts-be/internal/entities"
	"accounts-be/internal/jwt"
	"accounts-be/internal/repository"
)

// userContextKey is the gin context key the authenticated user is stored under
const userContextKey = "currentUser"

// AuthMiddleware returns a Gin middleware that turns a bearer token into a
// loaded user. A missing or malformed Authorization header is 403; a token
// that fails verification, or a verified token whose subject no longer
// exists, is 401. The two 401 cases are indistinguishable on purpose.
func AuthMiddleware(jwtService *jwt.JWTService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not authenticated",
			})
			c.Abort()
			return
		}

		userID, err := jwtService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		// A missing subject is indistinguishable from a bad token; any other
		// store error is a persistence failure, not an auth failure
		user, err := userRepo.FindByID(userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// extractBearerToken pulls the token out of an "Authorization: Bearer <token>"
// header. Any other shape counts as no credentials at all.
func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// SetCurrentUser stores the authenticated user on the request context
func SetCurrentUser(c *gin.Context, user *entities.User) {
	c.Set(userContextKey, user)
}

// CurrentUser returns the user loaded by AuthMiddleware for this request
func CurrentUser(c *gin.Context) *entities.User {
	user, _ := c.MustGet(userContextKey).(*entities.User)
	return user
}
