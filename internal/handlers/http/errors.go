package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/sheetsync-backend/internal/domain/errors"
	"github.com/rafabene/sheetsync-backend/internal/domain/valueobjects"
	"github.com/rafabene/sheetsync-backend/internal/handlers/dto"
)

// respondDomainError mapeia erros de domínio para status HTTP.
// Erros de domínio passam inalterados; qualquer erro inesperado vira um
// 500 genérico (apenas a mensagem, sem estado interno).
func respondDomainError(c *gin.Context, err error) {
	var domainErr *errors.DomainError

	switch {
	case errs.Is(err, errors.ErrInvalidUserID):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_user_id"))

	case errs.Is(err, errors.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.empty_update"))

	case errs.Is(err, valueobjects.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_email"))

	case errs.Is(err, errors.ErrUserNotFound), errs.Is(err, errors.ErrOperatorNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))

	case errs.Is(err, errors.ErrEmailAlreadyExists):
		// Conflito responde 400 (compatibilidade com clientes existentes)
		c.JSON(http.StatusBadRequest, dto.ConflictErrorResponseI18n(c, "error.email_already_exists"))

	case errs.Is(err, errors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))

	case errs.As(err, &domainErr):
		switch domainErr.Type {
		case errors.ProblemTypeOAuthExchange:
			c.JSON(http.StatusBadRequest, dto.OAuthErrorResponseI18n(c, domainErr.Error()))
		case errors.ProblemTypeExternalService:
			c.JSON(http.StatusInternalServerError, dto.ExternalServiceErrorResponseI18n(c, domainErr.Error()))
		default:
			c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c, domainErr.Error()))
		}

	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c, err.Error()))
	}
}
