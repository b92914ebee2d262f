package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrOperatorNotFound   = errors.New("error.operator_not_found")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
	ErrUnauthenticated    = errors.New("error.unauthenticated")
	ErrInvalidUserID      = errors.New("error.invalid_user_id")
	ErrEmptyUpdate        = errors.New("error.empty_update")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation      = "/problems/validation-error"
	ProblemTypeNotFound        = "/problems/not-found"
	ProblemTypeConflict        = "/problems/conflict"
	ProblemTypeUnauthorized    = "/problems/unauthorized"
	ProblemTypeBadRequest      = "/problems/bad-request"
	ProblemTypeInternal        = "/problems/internal-error"
	ProblemTypeOAuthExchange   = "/problems/oauth-exchange-failed"
	ProblemTypeExternalService = "/problems/external-service-error"
)

// DomainError representa um erro de domínio com contexto adicional.
// Para falhas de serviços externos, Message carrega a mensagem do
// provedor para diagnóstico do operador.
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewOAuthExchangeError cria um erro de troca de código OAuth (HTTP 400)
func NewOAuthExchangeError(err error) *DomainError {
	return &DomainError{
		Type:    ProblemTypeOAuthExchange,
		Title:   "error.oauth_exchange.title",
		Message: "Failed to authenticate",
		Err:     err,
	}
}

// NewExternalServiceError cria um erro de serviço externo (HTTP 500)
func NewExternalServiceError(message string, err error) *DomainError {
	return &DomainError{
		Type:    ProblemTypeExternalService,
		Title:   "error.external_service.title",
		Message: message,
		Err:     err,
	}
}
