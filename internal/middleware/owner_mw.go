package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// OwnerIDKey is the context key holding the parsed owner id (int64)
const OwnerIDKey = "ownerID"

const invalidOwnerMsg = "Invalid user_id"

// OwnerSource extracts the raw owner id from a request
type OwnerSource func(c *gin.Context) string

// FromQuery reads the owner id from a query string parameter
func FromQuery(name string) OwnerSource {
	return func(c *gin.Context) string {
		return c.Query(name)
	}
}

// FromPath reads the owner id from a path parameter
func FromPath(name string) OwnerSource {
	return func(c *gin.Context) string {
		return c.Param(name)
	}
}

// RequireOwner rejects requests without an owner id with missingMsg, and
// requests whose owner id is not an integer with "Invalid user_id"
func RequireOwner(src OwnerSource, missingMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := src(c)
		if raw == "" {
			c.String(http.StatusBadRequest, missingMsg)
			c.Abort()
			return
		}
		if !setOwner(c, raw) {
			return
		}
		c.Next()
	}
}

// OptionalOwner sets the owner id when one is supplied and lets the request
// through unscoped otherwise
func OptionalOwner(src OwnerSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := src(c); raw != "" && !setOwner(c, raw) {
			return
		}
		c.Next()
	}
}

// OwnerID returns the owner id stored by RequireOwner or OptionalOwner
func OwnerID(c *gin.Context) (int64, bool) {
	val, exists := c.Get(OwnerIDKey)
	if !exists {
		return 0, false
	}
	id, ok := val.(int64)
	return id, ok
}

// ParseOwnerID parses a raw owner id
func ParseOwnerID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func setOwner(c *gin.Context, raw string) bool {
	id, err := ParseOwnerID(raw)
	if err != nil {
		c.String(http.StatusBadRequest, invalidOwnerMsg)
		c.Abort()
		return false
	}
	c.Set(OwnerIDKey, id)
	return true
}
