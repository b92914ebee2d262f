package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/sheetsync-backend/internal/handlers/dto"
	"github.com/rafabene/sheetsync-backend/internal/handlers/middleware"
	"github.com/rafabene/sheetsync-backend/internal/services"
)

// SyncHandler lida com as rotas de sincronização com a planilha externa
type SyncHandler struct {
	syncService *services.SyncService
}

// NewSyncHandler cria um novo SyncHandler
func NewSyncHandler(syncService *services.SyncService) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
	}
}

// CreateSheet cria uma nova planilha para o operador autenticado
func (h *SyncHandler) CreateSheet(c *gin.Context) {
	operator, ok := middleware.CurrentOperator(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	var req dto.CreateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
		return
	}

	info, err := h.syncService.CreateSheet(c.Request.Context(), operator.Email.String(), req.SheetName)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCreateSheetResponse(info, dto.T(c, "message.sheet_created")))
}

// ToCloud exporta o diretório completo para a planilha (sobrescrita)
func (h *SyncHandler) ToCloud(c *gin.Context) {
	operator, ok := middleware.CurrentOperator(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	synced, err := h.syncService.ExportToCloud(c.Request.Context(), operator.Email.String(), c.Param("sheet_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExportResponse{
		Message:     dto.T(c, "message.sync_to_cloud", map[string]interface{}{"Count": synced}),
		SyncedCount: synced,
	})
}

// FromCloud importa as linhas da planilha para o diretório (merge)
func (h *SyncHandler) FromCloud(c *gin.Context) {
	operator, ok := middleware.CurrentOperator(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	result, err := h.syncService.ImportFromCloud(c.Request.Context(), operator.Email.String(), c.Param("sheet_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	message := dto.T(c, "message.sync_from_cloud")
	if result.TotalProcessed == 0 {
		message = dto.T(c, "message.sync_from_cloud_empty")
	}

	c.JSON(http.StatusOK, dto.ToImportResponse(result, message))
}
