package handlers

import (
	"net/http"

	"github.com/sharongvarghese/ShopCart/internal/redis"
	"github.com/sharongvarghese/ShopCart/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "session_id"
	cookieMaxAge  = 30 * 24 * 3600
)

// SessionMiddleware makes sure every request carries a session ID cookie and
// stores it in the gin context for the cart and checkout handlers.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(sessionCookie, sessionID, cookieMaxAge, "/", "", false, true)
		}
		c.Set("session_id", sessionID)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString("session_id")
}

// AdminMiddleware resolves the authenticated user from the redis session and
// exchanges it for an AdminCapability. Handlers behind it read the
// capability from the context; there is no other way to obtain one.
func AdminMiddleware(redisClient *redis.Client, userService services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := redisClient.GetSession(c.Request.Context(), sessionID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		admin, err := userService.AuthorizeAdmin(session.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		c.Set("admin_capability", admin)
		c.Next()
	}
}

func adminCapability(c *gin.Context) services.AdminCapability {
	return c.MustGet("admin_capability").(services.AdminCapability)
}
