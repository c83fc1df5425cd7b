package middleware

import (
	"net/http"
	"strings"

	"songbox/backend/common"

	"github.com/gin-gonic/gin"
)

// Accepts rejects requests whose Accept header is present but does not
// mention the given media type. An absent header passes; matching is a plain
// substring check, deliberately not full RFC 7231 negotiation.
func Accepts(mediaType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accept := c.GetHeader("Accept")
		if accept != "" && !strings.Contains(accept, mediaType) {
			common.RespMessage(c, http.StatusNotAcceptable, "Request must accept "+mediaType)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireContentType rejects requests whose Content-Type header does not
// carry the given media type. Parameters such as charset or a multipart
// boundary are tolerated.
func RequireContentType(mediaType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType := c.GetHeader("Content-Type")
		if !strings.Contains(contentType, mediaType) {
			common.RespMessage(c, http.StatusUnsupportedMediaType, "Request must contain "+mediaType+" data")
			c.Abort()
			return
		}
		c.Next()
	}
}
