package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/jasonlam510/scount-currency-backend/internal/core/ports/services"
	"github.com/jasonlam510/scount-currency-backend/internal/dto"
	"github.com/jasonlam510/scount-currency-backend/internal/middleware"
	"github.com/jasonlam510/scount-currency-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// historyHandler handles HTTP requests related to the device's selection
// history.
type historyHandler struct {
	historyService portssvc.HistorySvcFacade
	posthogClient  *utils.PosthogClientWrapper
}

// newHistoryHandler creates a new historyHandler.
func newHistoryHandler(hs portssvc.HistorySvcFacade, posthogClient *utils.PosthogClientWrapper) *historyHandler {
	return &historyHandler{
		historyService: hs,
		posthogClient:  posthogClient,
	}
}

// RegisterHistoryRoutes registers routes related to selection history.
func RegisterHistoryRoutes(rg *gin.RouterGroup, hs portssvc.HistorySvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newHistoryHandler(hs, posthogClient)

	history := rg.Group("/history")
	{
		history.GET("", h.listHistory)
		history.POST("", h.recordSelection)
		history.DELETE("", h.clearHistory)
	}
}

// listHistory godoc
// @Summary Get the device's currency selection history
// @Description Most-recent-first, deduplicated, at most 9 entries
// @Tags history
// @Produce json
// @Success 200 {object} dto.HistoryResponse
// @Router /history [get]
func (h *historyHandler) listHistory(c *gin.Context) {
	deviceID := middleware.GetDeviceIDFromContext(c)
	history := h.historyService.List(c.Request.Context(), deviceID)
	c.JSON(http.StatusOK, dto.HistoryResponse{History: history})
}

// recordSelection godoc
// @Summary Record a currency selection
// @Description Moves the code to the front of the device's history and returns the updated list
// @Tags history
// @Accept json
// @Produce json
// @Param selection body dto.RecordHistoryRequest true "Selected currency"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /history [post]
func (h *historyHandler) recordSelection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordSelection", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	deviceID := middleware.GetDeviceIDFromContext(c)
	history := h.historyService.Record(c.Request.Context(), deviceID, req.Code)

	middleware.PosthogEvent(c, h.posthogClient, "currency_selected", map[string]any{
		"code": history[0],
	})

	c.JSON(http.StatusOK, dto.HistoryResponse{History: history})
}

// clearHistory godoc
// @Summary Clear the device's currency selection history
// @Tags history
// @Produce json
// @Success 204 "Cleared"
// @Failure 500 {object} map[string]string "Failed to clear history"
// @Router /history [delete]
func (h *historyHandler) clearHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	deviceID := middleware.GetDeviceIDFromContext(c)

	if err := h.historyService.Clear(c.Request.Context(), deviceID); err != nil {
		logger.Error("Failed to clear history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear history"})
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "history_cleared", nil)
	c.Status(http.StatusNoContent)
}
