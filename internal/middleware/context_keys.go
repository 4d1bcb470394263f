package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const actorIDKey = contextKey("actorID")

// actorHeader carries the already-authenticated actor identity from the
// surrounding application. Authentication itself is an external collaborator;
// this subsystem only records who asked.
const actorHeader = "X-Actor-ID"

// ActorMiddleware copies the actor identity header into the request context.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor := c.GetHeader(actorHeader); actor != "" {
			ctx := context.WithValue(c.Request.Context(), actorIDKey, actor)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// GetActorFromContext retrieves the acting user's ID from the Gin context.
// It returns the ID and a boolean indicating whether it was present.
func GetActorFromContext(c *gin.Context) (string, bool) {
	actorVal := c.Request.Context().Value(actorIDKey)
	if actorVal == nil {
		return "", false
	}
	actor, ok := actorVal.(string)
	if !ok || actor == "" {
		return "", false
	}
	return actor, true
}
