package mocks

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/rafabene/sheetsync-backend/internal/domain/ports"
)

// IdentityProvider é uma implementação de ports.IdentityProvider para testes
type IdentityProvider struct {
	Profile     ports.UserProfile
	Token       oauth2.Token
	ExchangeErr error
}

func (p *IdentityProvider) AuthURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (p *IdentityProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, *ports.UserProfile, error) {
	if p.ExchangeErr != nil {
		return nil, nil, p.ExchangeErr
	}

	token := p.Token
	profile := p.Profile
	return &token, &profile, nil
}
