package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the client's draft-session id. One id scopes one
// in-progress order draft and one ride draft.
const SessionHeader = "X-Session-ID"

// ContextSessionID is the gin context key the handlers read.
const ContextSessionID = "session_id"

// SessionMiddleware makes sure every request has a session id. Clients that
// don't send one get a fresh uuid minted and echoed back so they can pin
// their drafts on the next request.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextSessionID, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}

// SessionID returns the session id set by SessionMiddleware, or "" if the
// middleware is not installed on the route.
func SessionID(c *gin.Context) string {
	id, _ := c.Get(ContextSessionID)
	s, _ := id.(string)
	return s
}
