// middleware/session.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/triplink-app/triplink-backend/services"
	"github.com/triplink-app/triplink-backend/utils"
)

const actorKey = "actor"

// Session resolves the bearer token into an Actor and aborts with 401 when
// none resolves. Guest tokens pass through too; write checks happen in the
// services, not here.
func Session(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.HandleError(c, utils.NewUnauthorizedError(utils.ErrSessionRequired))
			c.Abort()
			return
		}
		actor, err := auth.Resolve(token)
		if err != nil {
			utils.HandleError(c, err)
			c.Abort()
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// Actor returns the identity the Session middleware resolved
func Actor(c *gin.Context) services.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(services.Actor); ok {
			return actor
		}
	}
	return services.Actor{}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(header)
}
