package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/benmore-apps/taskrabbit-backend/internal/users"
	"github.com/gin-gonic/gin"
)

const (
	CtxUsername = "username"
	CtxUserID   = "user_id"
)

// WithUser resolves the calling user from the X-User-Id header, upserting a
// record in the users store and stashing the DB id in the gin context.
// Requests without the header run as "demo-user".
func WithUser(store users.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if username == "" {
			username = "demo-user"
		}

		u, err := store.EnsureUser(c.Request.Context(), users.Upsert{
			Username:    username,
			Email:       c.GetHeader("X-User-Email"),
			DisplayName: c.GetHeader("X-User-Name"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "ensure user: " + err.Error()})
			c.Abort()
			return
		}

		c.Set(CtxUsername, username)
		c.Set(CtxUserID, strconv.FormatInt(u.ID, 10))
		c.Next()
	}
}

// UserID returns the caller's numeric user id, or 0 when unauthenticated.
func UserID(c *gin.Context) int64 {
	v := c.GetString(CtxUserID)
	if v == "" {
		return 0
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
