package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/sheetsync-backend/internal/handlers/dto"
	"github.com/rafabene/sheetsync-backend/internal/services"
)

// AuthHandler lida com o fluxo de autenticação dos operadores
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login inicia o fluxo OAuth e retorna a URL de autorização
func (h *AuthHandler) Login(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LoginResponse{
		AuthorizationURL: h.authService.BeginLogin(),
		Message:          dto.T(c, "message.login_redirect"),
	})
}

// Callback completa o fluxo OAuth: troca o código, grava o operador
// e emite o token de sessão
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.missing_code"))
		return
	}

	operator, sessionToken, err := h.authService.CompleteLogin(c.Request.Context(), code)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CallbackResponse{
		Message:     dto.T(c, "message.auth_success"),
		User:        dto.ToOperatorProfile(operator),
		AccessToken: sessionToken,
	})
}

// Me retorna o perfil de um operador autenticado pelo email
func (h *AuthHandler) Me(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.missing_email"))
		return
	}

	operator, err := h.authService.GetOperator(c.Request.Context(), email)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOperatorResponse(operator))
}
