package mocks

import (
	"context"

	"golang.org/x/oauth2"
)

// CredentialResolver resolve credenciais fixas para testes do sync
type CredentialResolver struct {
	Err error
}

func (r *CredentialResolver) ResolveCredentials(ctx context.Context, email string) (oauth2.TokenSource, error) {
	if r.Err != nil {
		return nil, r.Err
	}

	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-access-token"}), nil
}
