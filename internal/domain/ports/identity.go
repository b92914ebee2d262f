package ports

import (
	"context"

	"golang.org/x/oauth2"
)

// UserProfile contém os dados de perfil retornados pelo provedor OAuth
type UserProfile struct {
	Email   string
	Name    string
	Picture string
}

// IdentityProvider define a interface para o provedor de identidade OAuth
// (fluxo authorization code com acesso offline)
type IdentityProvider interface {
	// AuthURL retorna a URL de autorização para redirecionar o operador
	AuthURL(state string) string

	// Exchange troca o código de autorização por tokens e busca o perfil
	Exchange(ctx context.Context, code string) (*oauth2.Token, *UserProfile, error)
}
