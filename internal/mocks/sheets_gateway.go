package mocks

import (
	"context"
	"sync"

	"golang.org/x/oauth2"

	"github.com/rafabene/sheetsync-backend/internal/domain/ports"
)

// SheetsGateway é uma implementação em memória de ports.SheetsGateway.
// Guarda os valores escritos por range para inspeção nos testes e permite
// injetar erros por operação.
type SheetsGateway struct {
	mu sync.Mutex

	Rows    [][]string // retornado por ReadRange
	Written map[string][][]string
	Cleared []string

	CreateErr error
	WriteErr  error
	ClearErr  error
	ReadErr   error
}

func NewSheetsGateway() *SheetsGateway {
	return &SheetsGateway{Written: make(map[string][][]string)}
}

func (g *SheetsGateway) CreateSpreadsheet(ctx context.Context, ts oauth2.TokenSource, title string) (*ports.SpreadsheetInfo, error) {
	if g.CreateErr != nil {
		return nil, g.CreateErr
	}

	return &ports.SpreadsheetInfo{
		ID:    "sheet-test-id",
		Title: title,
		URL:   "https://docs.google.com/spreadsheets/d/sheet-test-id",
	}, nil
}

func (g *SheetsGateway) WriteRange(ctx context.Context, ts oauth2.TokenSource, spreadsheetID, rangeA1 string, values [][]string) error {
	if g.WriteErr != nil {
		return g.WriteErr
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.Written[rangeA1] = values
	return nil
}

func (g *SheetsGateway) ClearRange(ctx context.Context, ts oauth2.TokenSource, spreadsheetID, rangeA1 string) error {
	if g.ClearErr != nil {
		return g.ClearErr
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.Cleared = append(g.Cleared, rangeA1)
	return nil
}

func (g *SheetsGateway) ReadRange(ctx context.Context, ts oauth2.TokenSource, spreadsheetID, rangeA1 string) ([][]string, error) {
	if g.ReadErr != nil {
		return nil, g.ReadErr
	}

	return g.Rows, nil
}
