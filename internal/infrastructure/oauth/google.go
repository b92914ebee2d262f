package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/rafabene/sheetsync-backend/internal/domain/ports"
	"github.com/rafabene/sheetsync-backend/internal/infrastructure/config"
)

const userInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// Escopos fixos: identidade do operador + leitura/escrita de planilhas
var scopes = []string{
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/spreadsheets",
}

// GoogleProvider implementa ports.IdentityProvider usando o fluxo
// authorization code do Google
type GoogleProvider struct {
	config *oauth2.Config
}

// NewGoogleProvider cria um novo GoogleProvider
func NewGoogleProvider(cfg *config.OAuthConfig) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthURL retorna a URL de autorização.
// access_type=offline + prompt=consent garantem a emissão de refresh token.
func (p *GoogleProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
}

// Exchange troca o código de autorização por tokens e busca o perfil
// do operador no endpoint userinfo
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, *ports.UserProfile, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("oauth: exchanging authorization code: %w", err)
	}

	// Client injeta "Authorization: Bearer <token>" em cada requisição
	client := p.config.Client(ctx, token)

	resp, err := client.Get(userInfoEndpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("oauth: calling userinfo endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("oauth: userinfo endpoint returned status %d", resp.StatusCode)
	}

	var info struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, nil, fmt.Errorf("oauth: decoding userinfo response: %w", err)
	}

	if info.Email == "" {
		return nil, nil, fmt.Errorf("oauth: provider returned an empty email")
	}

	return token, &ports.UserProfile{
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
