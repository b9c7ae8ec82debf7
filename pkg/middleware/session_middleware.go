package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	mem "wanderly/pkg/memcache"
	"wanderly/pkg/utils"
)

const (
	ContextSessionID    = "session_id"
	ContextUserID       = "user_id"
	ContextAuthProvider = "auth_provider"
)

// SessionResolver loads a session by id. It returns utils.ErrUnauthenticated
// for unknown or expired ids.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*mem.Session, error)
}

// SessionMiddleware resolves the session cookie, if any, and puts the bound
// user into the request context. It never rejects a request by itself.
func SessionMiddleware(sessions SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			c.Next()
			return
		}

		sess, err := sessions.Resolve(c.Request.Context(), sid)
		if err != nil {
			if !errors.Is(err, utils.ErrUnauthenticated) {
				log.Printf("[%s] session lookup failed: %v", c.GetString(ContextTraceID), err)
			}
			c.Next()
			return
		}

		c.Set(ContextSessionID, sess.ID)
		c.Set(ContextUserID, sess.UserID)
		c.Set(ContextAuthProvider, sess.Provider)
		c.Next()
	}
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserID) == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}
		c.Next()
	}
}
