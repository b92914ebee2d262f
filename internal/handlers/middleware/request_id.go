package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDContextKey é a chave usada para armazenar o request id no contexto
const RequestIDContextKey = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestID atribui um identificador único a cada requisição.
// Respeita o X-Request-ID do cliente quando presente.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDContextKey, id)
		c.Header(requestIDHeader, id)

		c.Next()
	}
}
