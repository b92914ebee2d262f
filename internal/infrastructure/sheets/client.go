package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/rafabene/sheetsync-backend/internal/domain/ports"
)

const (
	sheetTitle  = "Users"
	headerRange = "Users!A1:E1"
)

var headerRow = []string{"ID", "Name", "Email", "Role", "Created At"}

// Client implementa ports.SheetsGateway usando a API Google Sheets v4.
// Cada chamada constrói o serviço com as credenciais do operador.
type Client struct {
	log ports.Logger
}

// NewClient cria um novo Client
func NewClient(log ports.Logger) *Client {
	return &Client{log: log}
}

func (c *Client) service(ctx context.Context, ts oauth2.TokenSource) (*sheetsapi.Service, error) {
	srv, err := sheetsapi.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("sheets: creating service: %w", err)
	}
	return srv, nil
}

// CreateSpreadsheet cria a planilha com a aba "Users" (cabeçalho congelado),
// escreve a linha de cabeçalho e aplica o estilo padrão
func (c *Client) CreateSpreadsheet(ctx context.Context, ts oauth2.TokenSource, title string) (*ports.SpreadsheetInfo, error) {
	srv, err := c.service(ctx, ts)
	if err != nil {
		return nil, err
	}

	spreadsheet := &sheetsapi.Spreadsheet{
		Properties: &sheetsapi.SpreadsheetProperties{Title: title},
		Sheets: []*sheetsapi.Sheet{
			{
				Properties: &sheetsapi.SheetProperties{
					Title: sheetTitle,
					GridProperties: &sheetsapi.GridProperties{
						FrozenRowCount: 1,
					},
				},
			},
		},
	}

	created, err := srv.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: creating spreadsheet: %w", err)
	}

	tabID := created.Sheets[0].Properties.SheetId

	header := &sheetsapi.ValueRange{Values: toInterfaceMatrix([][]string{headerRow})}
	_, err = srv.Spreadsheets.Values.Update(created.SpreadsheetId, headerRange, header).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: writing header row: %w", err)
	}

	if err := c.styleHeader(ctx, srv, created.SpreadsheetId, tabID); err != nil {
		return nil, err
	}

	url := created.SpreadsheetUrl
	if url == "" {
		url = fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s", created.SpreadsheetId)
	}

	return &ports.SpreadsheetInfo{
		ID:    created.SpreadsheetId,
		Title: title,
		URL:   url,
	}, nil
}

// styleHeader aplica fundo escuro e texto branco em negrito na linha 1
func (c *Client) styleHeader(ctx context.Context, srv *sheetsapi.Service, spreadsheetID string, tabID int64) error {
	request := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{
			{
				RepeatCell: &sheetsapi.RepeatCellRequest{
					Range: &sheetsapi.GridRange{
						SheetId:       tabID,
						StartRowIndex: 0,
						EndRowIndex:   1,
					},
					Cell: &sheetsapi.CellData{
						UserEnteredFormat: &sheetsapi.CellFormat{
							BackgroundColor: &sheetsapi.Color{
								Red:   0.2,
								Green: 0.2,
								Blue:  0.2,
							},
							TextFormat: &sheetsapi.TextFormat{
								ForegroundColor: &sheetsapi.Color{
									Red:   1.0,
									Green: 1.0,
									Blue:  1.0,
								},
								Bold: true,
							},
						},
					},
					Fields: "userEnteredFormat(backgroundColor,textFormat)",
				},
			},
		},
	}

	if _, err := srv.Spreadsheets.BatchUpdate(spreadsheetID, request).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets: formatting header row: %w", err)
	}

	return nil
}

func (c *Client) WriteRange(ctx context.Context, ts oauth2.TokenSource, spreadsheetID, rangeA1 string, values [][]string) error {
	srv, err := c.service(ctx, ts)
	if err != nil {
		return err
	}

	body := &sheetsapi.ValueRange{Values: toInterfaceMatrix(values)}
	_, err = srv.Spreadsheets.Values.Update(spreadsheetID, rangeA1, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: writing range %s: %w", rangeA1, err)
	}

	return nil
}

func (c *Client) ClearRange(ctx context.Context, ts oauth2.TokenSource, spreadsheetID, rangeA1 string) error {
	srv, err := c.service(ctx, ts)
	if err != nil {
		return err
	}

	_, err = srv.Spreadsheets.Values.Clear(spreadsheetID, rangeA1, &sheetsapi.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: clearing range %s: %w", rangeA1, err)
	}

	return nil
}

func (c *Client) ReadRange(ctx context.Context, ts oauth2.TokenSource, spreadsheetID, rangeA1 string) ([][]string, error) {
	srv, err := c.service(ctx, ts)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Spreadsheets.Values.Get(spreadsheetID, rangeA1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: reading range %s: %w", rangeA1, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprintf("%v", cell))
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

func toInterfaceMatrix(values [][]string) [][]interface{} {
	matrix := make([][]interface{}, len(values))
	for i, row := range values {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		matrix[i] = cells
	}
	return matrix
}
