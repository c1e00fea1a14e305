package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ahmohbati/forex-backend/internal/apperrors"
	portssvc "github.com/ahmohbati/forex-backend/internal/core/ports/services"
	"github.com/ahmohbati/forex-backend/internal/dto"
	"github.com/ahmohbati/forex-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles the authenticated ledger endpoints.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes registers the ledger routes on an authenticated group.
func RegisterTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(ts)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
	}
}

// listTransactions godoc
// @Summary List the caller's transactions
// @Description Returns all transactions owned by the authenticated user, newest first
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txns, err := h.transactionService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	// Zero rows is a 200 with an empty array, never a 404.
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// createTransaction godoc
// @Summary Record a conversion
// @Description Converts with the latest rate and persists an immutable ledger row for the caller
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CreateTransactionResponse
// @Failure 400 {object} map[string]string "Missing or invalid fields"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string "No rate for the currency pair"
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount and toCurrency are required"})
		return
	}

	txn, err := h.transactionService.Record(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Transaction validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Info("No rate for requested pair",
				slog.String("from", req.FromCurrency), slog.String("to", req.ToCurrency))
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
		default:
			logger.Error("Failed to record transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction failed"})
		}
		return
	}

	logger.Info("Transaction recorded", slog.Int64("transaction_id", txn.ID))
	c.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Message:     "Transaction completed successfully",
		Transaction: dto.ToTransactionResponse(txn),
	})
}
