package dto

import (
	"time"

	"github.com/rafabene/sheetsync-backend/internal/domain/entities"
)

// LoginResponse representa a resposta do início do fluxo OAuth
type LoginResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	Message          string `json:"message"`
}

// OperatorProfile representa o perfil público de um operador
type OperatorProfile struct {
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	ProfilePic *string `json:"profile_pic,omitempty"`
}

// CallbackResponse representa a resposta do callback OAuth.
// AccessToken é o token de sessão assinado emitido por esta API
// (não o access token do provedor).
type CallbackResponse struct {
	Message     string          `json:"message"`
	User        OperatorProfile `json:"user"`
	AccessToken string          `json:"access_token"`
}

// OperatorResponse representa a resposta da rota /auth/me
type OperatorResponse struct {
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	ProfilePic *string   `json:"profile_pic,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToOperatorProfile converte uma entidade Operator para OperatorProfile
func ToOperatorProfile(operator *entities.Operator) OperatorProfile {
	return OperatorProfile{
		Email:      operator.Email.String(),
		Name:       operator.Name,
		ProfilePic: operator.ProfilePic,
	}
}

// ToOperatorResponse converte uma entidade Operator para OperatorResponse
func ToOperatorResponse(operator *entities.Operator) OperatorResponse {
	return OperatorResponse{
		Email:      operator.Email.String(),
		Name:       operator.Name,
		ProfilePic: operator.ProfilePic,
		CreatedAt:  operator.CreatedAt,
	}
}
