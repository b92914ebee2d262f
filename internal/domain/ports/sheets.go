package ports

import (
	"context"

	"golang.org/x/oauth2"
)

// SpreadsheetInfo descreve uma planilha criada no serviço externo
type SpreadsheetInfo struct {
	ID    string
	Title string
	URL   string
}

// SheetsGateway define a interface para o serviço externo de planilhas.
// Todas as operações autenticam com as credenciais do operador (TokenSource).
// Ranges usam notação A1 (ex: "Users!A2:E").
type SheetsGateway interface {
	// CreateSpreadsheet cria uma planilha com uma aba "Users", escreve a
	// linha de cabeçalho e aplica a formatação padrão.
	CreateSpreadsheet(ctx context.Context, ts oauth2.TokenSource, title string) (*SpreadsheetInfo, error)

	// WriteRange escreve a matriz de valores a partir da célula inicial do range
	WriteRange(ctx context.Context, ts oauth2.TokenSource, spreadsheetID, rangeA1 string, values [][]string) error

	// ClearRange limpa todas as células do range
	ClearRange(ctx context.Context, ts oauth2.TokenSource, spreadsheetID, rangeA1 string) error

	// ReadRange lê as linhas populadas do range
	ReadRange(ctx context.Context, ts oauth2.TokenSource, spreadsheetID, rangeA1 string) ([][]string, error)
}
