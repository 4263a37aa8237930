package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// CtxRealIPKey holds the resolved client address in the gin context.
const CtxRealIPKey = "real_ip"

// RealIP resolves the originating client address once per request and
// stores it under CtxRealIPKey, where the rate limiters pick it up.
// Proxy headers take precedence over the socket address: CF-Connecting-IP
// first, then the left-most X-Forwarded-For entry, with gin's ClientIP as
// the fallback. Header values that do not parse as an IP are ignored.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRealIPKey, resolveClientIP(c))
		c.Next()
	}
}

func resolveClientIP(c *gin.Context) string {
	if ip := parseAddr(c.GetHeader("CF-Connecting-IP")); ip != "" {
		return ip
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := parseAddr(first); ip != "" {
			return ip
		}
	}
	return c.ClientIP()
}

func parseAddr(raw string) string {
	ip := net.ParseIP(strings.TrimSpace(raw))
	if ip == nil {
		return ""
	}
	return ip.String()
}
