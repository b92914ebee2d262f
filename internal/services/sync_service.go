package services

import (
	"context"
	goerrors "errors"
	"time"

	"golang.org/x/oauth2"

	"github.com/rafabene/sheetsync-backend/internal/domain/entities"
	"github.com/rafabene/sheetsync-backend/internal/domain/errors"
	"github.com/rafabene/sheetsync-backend/internal/domain/ports"
	"github.com/rafabene/sheetsync-backend/internal/domain/repositories"
	"github.com/rafabene/sheetsync-backend/internal/domain/valueobjects"
)

const (
	// Layout fixo da planilha: aba "Users", colunas A–E, cabeçalho na linha 1
	sheetOriginRange = "Users!A1"
	sheetDataRange   = "Users!A2:E"

	createdAtLayout = "2006-01-02 15:04:05"
)

var sheetHeader = []string{"ID", "Name", "Email", "Role", "Created At"}

// CredentialResolver resolve as credenciais OAuth armazenadas de um operador
type CredentialResolver interface {
	ResolveCredentials(ctx context.Context, email string) (oauth2.TokenSource, error)
}

// ImportResult contém os contadores de uma importação
type ImportResult struct {
	Inserted       int
	Updated        int
	TotalProcessed int
}

// SyncService implementa a sincronização bidirecional entre o diretório
// de usuários e a planilha externa.
//
// Exportação: sobrescrita completa (local é autoritativo); linhas presentes
// só na planilha são descartadas. Importação: merge por id e depois por
// email, last write wins. Duas sincronizações concorrentes podem intercalar
// escritas; limitação aceita (uso de baixa frequência, operador único).
type SyncService struct {
	users  repositories.UserRepository
	creds  CredentialResolver
	sheets ports.SheetsGateway
	logger ports.Logger
}

// NewSyncService cria um novo SyncService
func NewSyncService(
	users repositories.UserRepository,
	creds CredentialResolver,
	sheets ports.SheetsGateway,
	logger ports.Logger,
) *SyncService {
	return &SyncService{
		users:  users,
		creds:  creds,
		sheets: sheets,
		logger: logger,
	}
}

// CreateSheet cria uma nova planilha com a aba "Users" formatada
func (s *SyncService) CreateSheet(ctx context.Context, operatorEmail, name string) (*ports.SpreadsheetInfo, error) {
	ts, err := s.creds.ResolveCredentials(ctx, operatorEmail)
	if err != nil {
		return nil, err
	}

	info, err := s.sheets.CreateSpreadsheet(ctx, ts, name)
	if err != nil {
		return nil, errors.NewExternalServiceError("Failed to create Google Sheet", err)
	}

	s.logger.Info("sheet created", "sheet_id", info.ID, "operator", operatorEmail)

	return info, nil
}

// ExportToCloud sobrescreve a planilha com o snapshot completo do diretório.
// Limpa as linhas de dados e escreve cabeçalho + uma linha por usuário;
// com o diretório vazio, apenas o cabeçalho é reescrito.
// Retorna o número de usuários sincronizados.
func (s *SyncService) ExportToCloud(ctx context.Context, operatorEmail, sheetID string) (int, error) {
	ts, err := s.creds.ResolveCredentials(ctx, operatorEmail)
	if err != nil {
		return 0, err
	}

	users, err := s.users.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	matrix := make([][]string, 0, len(users)+1)
	matrix = append(matrix, sheetHeader)
	for _, user := range users {
		matrix = append(matrix, []string{
			user.ID,
			user.Name,
			user.Email.String(),
			user.Role,
			user.CreatedAt.UTC().Format(createdAtLayout),
		})
	}

	if err := s.sheets.ClearRange(ctx, ts, sheetID, sheetDataRange); err != nil {
		return 0, errors.NewExternalServiceError("Failed to sync to Google Sheets", err)
	}

	if err := s.sheets.WriteRange(ctx, ts, sheetID, sheetOriginRange, matrix); err != nil {
		return 0, errors.NewExternalServiceError("Failed to sync to Google Sheets", err)
	}

	synced := len(matrix) - 1
	s.logger.Info("synced to cloud", "sheet_id", sheetID, "count", synced)

	return synced, nil
}

// ImportFromCloud lê as linhas de dados da planilha e as funde no diretório.
//
// Linhas com menos de 4 células são descartadas (malformadas/vazias) e não
// contam em TotalProcessed. Linha sem email é pulada (mas conta). A resolução
// id-depois-email é intencional: uma exportação reimportada (que carrega o id
// verdadeiro) casa exatamente mesmo com email editado na planilha, enquanto
// uma linha nova adicionada externamente (sem id válido) ainda funde sobre um
// email existente em vez de duplicar.
//
// Usuários novos recebem created_at do servidor; o valor da planilha é lido
// e descartado.
func (s *SyncService) ImportFromCloud(ctx context.Context, operatorEmail, sheetID string) (*ImportResult, error) {
	ts, err := s.creds.ResolveCredentials(ctx, operatorEmail)
	if err != nil {
		return nil, err
	}

	rows, err := s.sheets.ReadRange(ctx, ts, sheetID, sheetDataRange)
	if err != nil {
		return nil, errors.NewExternalServiceError("Failed to sync from Google Sheets", err)
	}

	usable := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) >= 4 {
			usable = append(usable, row)
		}
	}

	result := &ImportResult{TotalProcessed: len(usable)}

	for _, row := range usable {
		email, err := valueobjects.NewEmail(row[2])
		if err != nil {
			// Email vazio ou inválido: linha pulada, mas contada
			if row[2] != "" {
				s.logger.Warn("skipping sheet row with invalid email", "email", row[2])
			}
			continue
		}

		existing, err := s.resolveRow(ctx, row[0], email.String())
		if err != nil {
			return nil, err
		}

		name := row[1]
		role := row[3]
		normalized := email.String()

		if existing != nil {
			// created_at do registro não é tocado
			patch := repositories.UserPatch{
				Name:  &name,
				Email: &normalized,
				Role:  &role,
			}
			if err := s.users.Update(ctx, existing.ID, patch); err != nil {
				return nil, err
			}
			result.Updated++
			continue
		}

		user := &entities.User{
			Name:      name,
			Email:     email,
			Role:      role,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		result.Inserted++
	}

	s.logger.Info("synced from cloud",
		"sheet_id", sheetID,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"total_processed", result.TotalProcessed,
	)

	return result, nil
}

// resolveRow localiza o usuário local correspondente a uma linha:
// primeiro por id (quando sintaticamente válido), depois por email
func (s *SyncService) resolveRow(ctx context.Context, id, email string) (*entities.User, error) {
	if id != "" {
		user, err := s.users.FindByID(ctx, id)
		if err != nil && !goerrors.Is(err, errors.ErrInvalidUserID) {
			return nil, err
		}
		if user != nil {
			return user, nil
		}
	}

	return s.users.FindByEmail(ctx, email)
}
