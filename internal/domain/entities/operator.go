package entities

import (
	"time"

	"github.com/rafabene/sheetsync-backend/internal/domain/valueobjects"
)

// Operator representa um operador autenticado via OAuth.
// Os tokens são os emitidos pelo provedor; a validade é delegada a ele
// (nenhuma renovação local é feita).
type Operator struct {
	Email        valueobjects.Email
	Name         string
	ProfilePic   *string
	AccessToken  *string
	RefreshToken *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasAccessToken verifica se o operador possui um access token armazenado
func (o *Operator) HasAccessToken() bool {
	return o.AccessToken != nil && *o.AccessToken != ""
}
