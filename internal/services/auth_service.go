package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/rafabene/sheetsync-backend/internal/domain/entities"
	"github.com/rafabene/sheetsync-backend/internal/domain/errors"
	"github.com/rafabene/sheetsync-backend/internal/domain/ports"
	"github.com/rafabene/sheetsync-backend/internal/domain/repositories"
	"github.com/rafabene/sheetsync-backend/internal/domain/valueobjects"
)

// AuthService gerencia o login OAuth dos operadores, as sessões
// (tokens JWT assinados) e a resolução de credenciais armazenadas
type AuthService struct {
	operators repositories.OperatorRepository
	provider  ports.IdentityProvider
	secret    []byte
	tokenTTL  time.Duration
	logger    ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	operators repositories.OperatorRepository,
	provider ports.IdentityProvider,
	secret string,
	tokenTTL time.Duration,
	logger ports.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	return &AuthService{
		operators: operators,
		provider:  provider,
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// BeginLogin retorna a URL de autorização do provedor.
// O state gerado não é verificado no callback (API sem sessão de browser).
func (s *AuthService) BeginLogin() string {
	return s.provider.AuthURL(uuid.NewString())
}

// CompleteLogin troca o código de autorização por tokens, grava o operador
// (upsert por email) e emite o token de sessão
func (s *AuthService) CompleteLogin(ctx context.Context, code string) (*entities.Operator, string, error) {
	token, profile, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return nil, "", errors.NewOAuthExchangeError(err)
	}

	email, err := valueobjects.NewEmail(profile.Email)
	if err != nil {
		return nil, "", errors.NewOAuthExchangeError(err)
	}

	operator := &entities.Operator{
		Email:       email,
		Name:        profile.Name,
		AccessToken: &token.AccessToken,
	}
	if profile.Picture != "" {
		operator.ProfilePic = &profile.Picture
	}
	if token.RefreshToken != "" {
		operator.RefreshToken = &token.RefreshToken
	}

	if err := s.operators.Upsert(ctx, operator); err != nil {
		return nil, "", err
	}

	sessionToken, err := s.issueSessionToken(email.String())
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("operator authenticated", "email", email.String())

	return operator, sessionToken, nil
}

// issueSessionToken emite um JWT HS256 com o email do operador como subject
func (s *AuthService) issueSessionToken(email string) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// CurrentSession resolve o token de sessão para o operador armazenado.
// Token ausente, inválido, expirado ou operador desconhecido → Unauthenticated.
func (s *AuthService) CurrentSession(ctx context.Context, sessionToken string) (*entities.Operator, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(sessionToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrUnauthenticated
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, errors.ErrUnauthenticated
	}

	operator, err := s.operators.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, errors.ErrUnauthenticated
	}

	return operator, nil
}

// GetOperator busca o perfil de um operador pelo email (rota /auth/me)
func (s *AuthService) GetOperator(ctx context.Context, email string) (*entities.Operator, error) {
	operator, err := s.operators.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, errors.ErrOperatorNotFound
	}

	return operator, nil
}

// ResolveCredentials reconstrói as credenciais OAuth armazenadas do operador.
// Usa um token source estático: nenhuma renovação local é feita; tokens
// expirados aparecem como falha do provedor no momento da chamada.
func (s *AuthService) ResolveCredentials(ctx context.Context, email string) (oauth2.TokenSource, error) {
	operator, err := s.operators.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if operator == nil || !operator.HasAccessToken() {
		return nil, errors.ErrUnauthenticated
	}

	token := &oauth2.Token{AccessToken: *operator.AccessToken}
	if operator.RefreshToken != nil {
		token.RefreshToken = *operator.RefreshToken
	}

	return oauth2.StaticTokenSource(token), nil
}
