package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/sheetsync-backend/internal/domain/entities"
	"github.com/rafabene/sheetsync-backend/internal/infrastructure/i18n"
)

// OperatorContextKey é a chave usada para armazenar o operador autenticado
// no contexto do Gin
const OperatorContextKey = "operator"

// SessionResolver resolve um token de sessão para o operador armazenado
type SessionResolver interface {
	CurrentSession(ctx context.Context, sessionToken string) (*entities.Operator, error)
}

// AuthMiddleware exige uma sessão válida nas rotas protegidas
type AuthMiddleware struct {
	sessions SessionResolver
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(sessions SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireSession valida o header Authorization (Bearer <token de sessão>)
// e injeta o operador no contexto.
// Header ausente/malformado ou operador desconhecido → 401.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedResponse(c))
			return
		}

		operator, err := m.sessions.CurrentSession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedResponse(c))
			return
		}

		c.Set(OperatorContextKey, operator)
		c.Next()
	}
}

// unauthorizedResponse monta o corpo RFC 7807 de 401 diretamente, já que
// este pacote não pode depender de handlers/dto (dto depende de middleware
// pelas chaves de contexto)
func unauthorizedResponse(c *gin.Context) gin.H {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8003"
	}

	title := "error.unauthorized.title"
	detail := "error.unauthorized.detail"
	if value, exists := c.Get(I18nServiceContextKey); exists {
		if service, ok := value.(*i18n.Service); ok {
			lang := "en"
			if langValue, found := c.Get(LanguageContextKey); found {
				if langStr, isStr := langValue.(string); isStr {
					lang = langStr
				}
			}
			title = service.T(lang, title)
			detail = service.T(lang, detail)
		}
	}

	return gin.H{
		"type":     baseURL + "/problems/unauthorized",
		"title":    title,
		"status":   http.StatusUnauthorized,
		"detail":   detail,
		"instance": c.Request.URL.Path,
	}
}

// CurrentOperator retorna o operador autenticado do contexto da requisição
func CurrentOperator(c *gin.Context) (*entities.Operator, bool) {
	value, exists := c.Get(OperatorContextKey)
	if !exists {
		return nil, false
	}

	operator, ok := value.(*entities.Operator)
	return operator, ok
}
