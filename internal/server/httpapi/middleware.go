package httpapi

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requireAuth is the gate in front of item routes: no token is 401,
// a token that fails verification is 403. On success the verified identity
// is attached to the request context and the chain continues. The gate never
// touches the data store.
func (s *Server) requireAuth(c *gin.Context) {
	tok, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token not provided"})
		return
	}

	ident, err := s.tokens.Verify(tok)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
		return
	}

	withIdentity(c, ident)
	c.Next()
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" value.
func bearerToken(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if len(value) < 7 || !strings.EqualFold(value[:7], "bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(value[7:])
	if tok == "" {
		return "", false
	}
	return tok, true
}

// requestLog emits one structured line per request.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// no payloads, metadata only
		s.log.Info("http",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("dur", time.Since(start)),
			zap.String("client", c.ClientIP()),
		)
	}
}

// recovery converts panics into opaque 500 responses.
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("panic",
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}
