package dto

import (
	"github.com/rafabene/sheetsync-backend/internal/domain/ports"
	"github.com/rafabene/sheetsync-backend/internal/services"
)

// CreateSheetRequest representa a requisição para criar uma planilha
type CreateSheetRequest struct {
	SheetName string `json:"sheet_name" binding:"required,min=1,max=100"`
}

// CreateSheetResponse representa a planilha criada
type CreateSheetResponse struct {
	SheetID   string `json:"sheet_id"`
	SheetName string `json:"sheet_name"`
	SheetURL  string `json:"sheet_url"`
	Message   string `json:"message"`
}

// ExportResponse representa o resultado de uma exportação (to-cloud)
type ExportResponse struct {
	Message     string `json:"message"`
	SyncedCount int    `json:"synced_count"`
}

// ImportResponse representa o resultado de uma importação (from-cloud)
type ImportResponse struct {
	Message        string `json:"message"`
	Inserted       int    `json:"inserted"`
	Updated        int    `json:"updated"`
	TotalProcessed int    `json:"total_processed"`
}

// ToCreateSheetResponse converte as informações da planilha para resposta
func ToCreateSheetResponse(info *ports.SpreadsheetInfo, message string) CreateSheetResponse {
	return CreateSheetResponse{
		SheetID:   info.ID,
		SheetName: info.Title,
		SheetURL:  info.URL,
		Message:   message,
	}
}

// ToImportResponse converte o resultado da importação para resposta
func ToImportResponse(result *services.ImportResult, message string) ImportResponse {
	return ImportResponse{
		Message:        message,
		Inserted:       result.Inserted,
		Updated:        result.Updated,
		TotalProcessed: result.TotalProcessed,
	}
}
