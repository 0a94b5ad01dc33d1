package http

import (
	"net/http"
	"time"

	"pressdesk/internal/models"
	"pressdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LedgerHandler struct {
	ledger service.LedgerService
	log    *zap.Logger
}

func NewLedgerHandler(ledger service.LedgerService, log *zap.Logger) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, log: log}
}

type transactionRequest struct {
	Type           string     `json:"type" binding:"required"`
	Category       string     `json:"category" binding:"required"`
	Amount         int64      `json:"amount" binding:"required"`
	Description    string     `json:"description"`
	RelatedOrderID *uuid.UUID `json:"related_order_id"`
}

func (h *LedgerHandler) RecordTransaction(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	row, err := h.ledger.RecordTransaction(c.Request.Context(), service.RecordTransactionInput{
		Type:           models.TransactionType(req.Type),
		Category:       req.Category,
		Amount:         req.Amount,
		Description:    req.Description,
		RelatedOrderID: req.RelatedOrderID,
	})
	if err != nil {
		h.respondErr(c, "record transaction failed", err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	var f service.LedgerFilter
	if s := c.Query("type"); s != "" {
		t := models.TransactionType(s)
		f.Type = &t
	}
	if s := c.Query("category"); s != "" {
		f.Category = &s
	}
	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		f.From = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		f.To = &t
	}
	f.Limit = intQuery(c, "limit", 50)
	f.Offset = intQuery(c, "offset", 0)

	txs, total, err := h.ledger.ListTransactions(c.Request.Context(), f)
	if err != nil {
		h.respondErr(c, "list transactions failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs, "total": total})
}

func (h *LedgerHandler) OrderTransactions(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	txs, err := h.ledger.OrderTransactions(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, "order transactions failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

func (h *LedgerHandler) respondErr(c *gin.Context, msg string, err error) {
	status := httpStatus(err)
	if status == http.StatusInternalServerError {
		h.log.Error(msg, zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	h.log.Warn(msg, zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}
