package dto

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	Type     string                 `json:"type"`
	Title    string                 `json:"title"`
	Status   int                    `json:"status"`
	Detail   string                 `json:"detail,omitempty"`
	Instance string                 `json:"instance,omitempty"`
	Errors   []ValidationError      `json:"errors,omitempty"`
	Meta     map[string]interface{} `json:"meta,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro RFC 7807 usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8003"
	}

	title := T(c, titleKey, params...)
	detail := T(c, detailKey, params...)

	return ErrorResponse{
		Type:     baseURL + problemType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Request.URL.Path,
	}
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação (400)
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		"/problems/validation-error",
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// BadRequestErrorResponseI18n cria uma resposta de erro 400
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/bad-request",
		"error.bad_request.title",
		detailKey,
		400,
		params...,
	)
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, resource string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/not-found",
		"error.not_found.title",
		"error.not_found.detail",
		404,
		map[string]interface{}{"Resource": resource},
	)
}

// ConflictErrorResponseI18n cria uma resposta de conflito.
// Nota: status 400 (não 409) para manter compatibilidade com os
// clientes existentes da API.
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/conflict",
		"error.conflict.title",
		detailKey,
		400,
		params...,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/unauthorized",
		"error.unauthorized.title",
		"error.unauthorized.detail",
		401,
	)
}

// OAuthErrorResponseI18n cria uma resposta 400 para falha na troca OAuth,
// com a mensagem do provedor embutida para diagnóstico
func OAuthErrorResponseI18n(c *gin.Context, upstream string) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		"/problems/oauth-exchange-failed",
		"error.oauth_exchange.title",
		"error.oauth_exchange.detail",
		400,
	)
	if upstream != "" {
		response.Detail = upstream
	}
	return response
}

// ExternalServiceErrorResponseI18n cria uma resposta 500 para falha de
// serviço externo, com a mensagem do provedor embutida
func ExternalServiceErrorResponseI18n(c *gin.Context, upstream string) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		"/problems/external-service-error",
		"error.external_service.title",
		"error.external_service.detail",
		500,
	)
	if upstream != "" {
		response.Detail = upstream
	}
	return response
}

// InternalErrorResponseI18n cria uma resposta de erro 500 genérica.
// Apenas a mensagem do erro é exposta; nenhum stack trace ou estado interno.
func InternalErrorResponseI18n(c *gin.Context, message string) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		"/problems/internal-error",
		"error.internal.title",
		"error.internal.detail",
		500,
	)
	if message != "" {
		response.Detail = message
	}
	return response
}
