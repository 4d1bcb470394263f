package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quadrantpm/property_ledger/internal/apperrors"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
	"github.com/quadrantpm/property_ledger/internal/dto"
	"github.com/quadrantpm/property_ledger/internal/middleware"
)

// journalHandler handles HTTP requests for journal reads and balance checks.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	balanceService portssvc.BalanceSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade, balanceService portssvc.BalanceSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
		balanceService: balanceService,
	}
}

// getJournal retrieves a journal header with its lines.
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	journal, err := h.journalService.GetJournalWithLines(c.Request.Context(), journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal not found", slog.String("journal_id", journalID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
			return
		}
		logger.Error("Failed to get journal from service", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// listJournalsByBuilding retrieves a page of journal headers for a building.
func (h *journalHandler) listJournalsByBuilding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	buildingID := c.Param("buildingID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	journals, err := h.journalService.ListJournalsByBuilding(c.Request.Context(), buildingID, limit, offset)
	if err != nil {
		logger.Error("Failed to list journals", slog.String("error", err.Error()), slog.String("building_id", buildingID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"journals": dto.ToJournalResponses(journals)})
}

// getBankBalance recomputes a bank account's ledger balance as of a date.
func (h *journalHandler) getBankBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var asOf *time.Time
	if asOfStr := c.Query("asOf"); asOfStr != "" {
		parsed, err := time.Parse("2006-01-02", asOfStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected YYYY-MM-DD"})
			return
		}
		asOf = &parsed
	}

	balance, err := h.balanceService.ValidateBankBalance(c.Request.Context(), accountID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for balance check", slog.String("account_id", accountID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		logger.Error("Failed to compute balance", slog.String("error", err.Error()), slog.String("account_id", accountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		return
	}

	effective := time.Now().UTC()
	if asOf != nil {
		effective = *asOf
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID: accountID,
		AsOf:      effective,
		Balance:   balance,
	})
}

// registerJournalRoutes wires journal read and balance endpoints.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, balanceService portssvc.BalanceSvcFacade) {
	h := newJournalHandler(journalService, balanceService)

	rg.GET("/journals/:journalID", h.getJournal)
	rg.GET("/buildings/:buildingID/journals", h.listJournalsByBuilding)
	rg.GET("/bank-accounts/:accountID/balance", h.getBankBalance)
}
