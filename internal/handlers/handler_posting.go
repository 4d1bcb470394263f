package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quadrantpm/property_ledger/internal/apperrors"
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
	"github.com/quadrantpm/property_ledger/internal/dto"
	"github.com/quadrantpm/property_ledger/internal/middleware"
)

// postingHandler handles the HTTP posting endpoints. Every endpoint resolves
// the acting user from the request context and returns the created journal ID.
type postingHandler struct {
	demandService         portssvc.DemandSvcFacade
	receiptService        portssvc.ReceiptSvcFacade
	supplierService       portssvc.SupplierSvcFacade
	fundService           portssvc.FundSvcFacade
	reconciliationService portssvc.ReconciliationSvcFacade
}

// newPostingHandler creates a new postingHandler.
func newPostingHandler(services *portssvc.ServiceContainer) *postingHandler {
	return &postingHandler{
		demandService:         services.Demand,
		receiptService:        services.Receipt,
		supplierService:       services.Supplier,
		fundService:           services.Fund,
		reconciliationService: services.Reconciliation,
	}
}

// respondPosting maps a posting outcome to an HTTP response. A follow-up
// failure still carries the committed journal, so the journal ID is returned
// alongside the error.
func respondPosting(c *gin.Context, journal *domain.Journal, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err == nil {
		logger.Info("Posting succeeded", slog.String("journal_id", journal.JournalID))
		c.JSON(http.StatusOK, dto.PostingResponse{JournalID: journal.JournalID})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrPostedFollowUpFailed):
		logger.Error("Posting committed but follow-up failed", slog.String("error", err.Error()), slog.String("journal_id", journal.JournalID))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"journalID": journal.JournalID,
		})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Posting rejected by validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Posting target not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPrecondition):
		logger.Warn("Posting precondition failed", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConfiguration):
		logger.Error("Posting failed on chart configuration", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ledger configuration error"})
	default:
		logger.Error("Posting failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Posting failed"})
	}
}

// requireActor resolves the acting user or writes a 401 response.
func requireActor(c *gin.Context) (string, bool) {
	actorID, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Actor ID not found in request context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing actor identity"})
		return "", false
	}
	return actorID, true
}

// postDemand posts a draft service-charge demand.
func (h *postingHandler) postDemand(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	journal, err := h.demandService.PostDemand(c.Request.Context(), c.Param("demandID"), actorID)
	respondPosting(c, journal, err)
}

// postReceipt posts a receipt with its allocations.
func (h *postingHandler) postReceipt(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.PostReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	journal, err := h.receiptService.PostReceipt(c.Request.Context(), c.Param("receiptID"), req.Allocations, actorID)
	respondPosting(c, journal, err)
}

// getDemandOutstanding returns a demand's unallocated remainder.
func (h *postingHandler) getDemandOutstanding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	demandID := c.Param("demandID")

	outstanding, err := h.receiptService.GetDemandOutstanding(c.Request.Context(), demandID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Demand not found"})
			return
		}
		logger.Error("Failed to compute outstanding", slog.String("error", err.Error()), slog.String("demand_id", demandID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute outstanding"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"demandHeaderID": demandID, "outstanding": outstanding})
}

// postSupplierInvoice posts a supplier invoice.
func (h *postingHandler) postSupplierInvoice(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	journal, err := h.supplierService.PostSupplierInvoice(c.Request.Context(), c.Param("invoiceID"), actorID)
	respondPosting(c, journal, err)
}

// postSupplierPayment posts a supplier payment.
func (h *postingHandler) postSupplierPayment(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	journal, err := h.supplierService.PostSupplierPayment(c.Request.Context(), c.Param("paymentID"), actorID)
	respondPosting(c, journal, err)
}

// postFundTransfer posts a transfer between two funds of one building.
func (h *postingHandler) postFundTransfer(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.PostFundTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	journal, err := h.fundService.PostFundTransfer(c.Request.Context(), req, actorID)
	respondPosting(c, journal, err)
}

// postBankReceipt posts a reconciliation journal for a matched receipt.
func (h *postingHandler) postBankReceipt(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.PostReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.ReceiptID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "receiptID is required"})
		return
	}

	journal, err := h.reconciliationService.PostBankReceipt(c.Request.Context(), req.ReceiptID, req.BankTxnID, actorID)
	respondPosting(c, journal, err)
}

// postBankPayment posts a reconciliation journal for a matched payment.
func (h *postingHandler) postBankPayment(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.PostReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.PaymentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paymentID is required"})
		return
	}

	journal, err := h.reconciliationService.PostBankPayment(c.Request.Context(), req.PaymentID, req.BankTxnID, actorID)
	respondPosting(c, journal, err)
}

// registerPostingRoutes wires all posting endpoints.
func registerPostingRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newPostingHandler(services)

	rg.POST("/demands/:demandID/post", h.postDemand)
	rg.GET("/demands/:demandID/outstanding", h.getDemandOutstanding)
	rg.POST("/receipts/:receiptID/post", h.postReceipt)
	rg.POST("/invoices/:invoiceID/post", h.postSupplierInvoice)
	rg.POST("/payments/:paymentID/post", h.postSupplierPayment)
	rg.POST("/fund-transfers", h.postFundTransfer)
	rg.POST("/reconciliation/receipts", h.postBankReceipt)
	rg.POST("/reconciliation/payments", h.postBankPayment)
}
