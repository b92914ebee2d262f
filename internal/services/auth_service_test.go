package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	domainerrors "github.com/rafabene/sheetsync-backend/internal/domain/errors"
	"github.com/rafabene/sheetsync-backend/internal/domain/ports"
	"github.com/rafabene/sheetsync-backend/internal/mocks"
)

func newAuthService(provider ports.IdentityProvider) (*AuthService, *mocks.OperatorRepository) {
	operators := mocks.NewOperatorRepository()
	service := NewAuthService(operators, provider, "test-secret", time.Hour, mocks.NewLogger())
	return service, operators
}

func testProvider() *mocks.IdentityProvider {
	return &mocks.IdentityProvider{
		Profile: ports.UserProfile{
			Email:   "operator@example.com",
			Name:    "Operator",
			Picture: "https://example.com/pic.jpg",
		},
		Token: oauth2.Token{
			AccessToken:  "provider-access-token",
			RefreshToken: "provider-refresh-token",
		},
	}
}

func TestBeginLogin(t *testing.T) {
	service, _ := newAuthService(testProvider())

	url := service.BeginLogin()
	if url == "" {
		t.Fatal("esperava URL de autorização")
	}
}

func TestCompleteLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("grava o operador e emite token de sessão", func(t *testing.T) {
		service, operators := newAuthService(testProvider())

		operator, sessionToken, err := service.CompleteLogin(ctx, "auth-code")
		if err != nil {
			t.Fatalf("CompleteLogin retornou erro: %v", err)
		}
		if operator.Email.String() != "operator@example.com" {
			t.Errorf("email = %q", operator.Email.String())
		}
		if sessionToken == "" {
			t.Fatal("esperava token de sessão")
		}

		stored, err := operators.FindByEmail(ctx, "operator@example.com")
		if err != nil {
			t.Fatalf("FindByEmail retornou erro: %v", err)
		}
		if stored == nil {
			t.Fatal("operador não foi gravado")
		}
		if !stored.HasAccessToken() {
			t.Error("access token não foi gravado")
		}
		if stored.RefreshToken == nil || *stored.RefreshToken != "provider-refresh-token" {
			t.Error("refresh token não foi gravado")
		}
	})

	t.Run("token de sessão emitido resolve para o operador", func(t *testing.T) {
		service, _ := newAuthService(testProvider())

		_, sessionToken, err := service.CompleteLogin(ctx, "auth-code")
		if err != nil {
			t.Fatalf("CompleteLogin retornou erro: %v", err)
		}

		operator, err := service.CurrentSession(ctx, sessionToken)
		if err != nil {
			t.Fatalf("CurrentSession retornou erro: %v", err)
		}
		if operator.Email.String() != "operator@example.com" {
			t.Errorf("email = %q", operator.Email.String())
		}
	})

	t.Run("falha do provedor vira erro de troca OAuth", func(t *testing.T) {
		provider := testProvider()
		provider.ExchangeErr = errors.New("invalid_grant")
		service, _ := newAuthService(provider)

		_, _, err := service.CompleteLogin(ctx, "bad-code")

		var domainErr *domainerrors.DomainError
		if !errors.As(err, &domainErr) || domainErr.Type != domainerrors.ProblemTypeOAuthExchange {
			t.Errorf("err = %v, esperava DomainError de troca OAuth", err)
		}
	})
}

func TestCurrentSession(t *testing.T) {
	ctx := context.Background()

	t.Run("token malformado retorna não autenticado", func(t *testing.T) {
		service, _ := newAuthService(testProvider())

		_, err := service.CurrentSession(ctx, "not-a-jwt")
		if !errors.Is(err, domainerrors.ErrUnauthenticated) {
			t.Errorf("err = %v, esperava ErrUnauthenticated", err)
		}
	})

	t.Run("token válido de operador desconhecido retorna não autenticado", func(t *testing.T) {
		service, _ := newAuthService(testProvider())

		// Emitido com o mesmo segredo, mas o operador nunca fez login
		token, err := service.issueSessionToken("ghost@example.com")
		if err != nil {
			t.Fatalf("issueSessionToken retornou erro: %v", err)
		}

		_, err = service.CurrentSession(ctx, token)
		if !errors.Is(err, domainerrors.ErrUnauthenticated) {
			t.Errorf("err = %v, esperava ErrUnauthenticated", err)
		}
	})

	t.Run("token expirado retorna não autenticado", func(t *testing.T) {
		service, _ := newAuthService(testProvider())

		if _, _, err := service.CompleteLogin(ctx, "auth-code"); err != nil {
			t.Fatalf("CompleteLogin retornou erro: %v", err)
		}

		claims := jwt.RegisteredClaims{
			Subject:   "operator@example.com",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("falha ao assinar token expirado: %v", err)
		}

		_, err = service.CurrentSession(ctx, expired)
		if !errors.Is(err, domainerrors.ErrUnauthenticated) {
			t.Errorf("err = %v, esperava ErrUnauthenticated", err)
		}
	})
}

func TestResolveCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("reconstrói o token armazenado", func(t *testing.T) {
		service, _ := newAuthService(testProvider())

		if _, _, err := service.CompleteLogin(ctx, "auth-code"); err != nil {
			t.Fatalf("CompleteLogin retornou erro: %v", err)
		}

		ts, err := service.ResolveCredentials(ctx, "operator@example.com")
		if err != nil {
			t.Fatalf("ResolveCredentials retornou erro: %v", err)
		}

		token, err := ts.Token()
		if err != nil {
			t.Fatalf("Token retornou erro: %v", err)
		}
		if token.AccessToken != "provider-access-token" {
			t.Errorf("access token = %q", token.AccessToken)
		}
	})

	t.Run("operador desconhecido retorna não autenticado", func(t *testing.T) {
		service, _ := newAuthService(testProvider())

		_, err := service.ResolveCredentials(ctx, "unknown@example.com")
		if !errors.Is(err, domainerrors.ErrUnauthenticated) {
			t.Errorf("err = %v, esperava ErrUnauthenticated", err)
		}
	})
}
