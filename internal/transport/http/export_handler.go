package http

import (
	"net/http"

	"pressdesk/internal/export"
	"pressdesk/internal/models"
	"pressdesk/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ExportHandler struct {
	orders    service.OrderService
	directory service.DirectoryService
	ledger    service.LedgerService
	log       *zap.Logger
}

func NewExportHandler(orders service.OrderService, directory service.DirectoryService, ledger service.LedgerService, log *zap.Logger) *ExportHandler {
	return &ExportHandler{orders: orders, directory: directory, ledger: ledger, log: log}
}

func (h *ExportHandler) OrdersCSV(c *gin.Context) {
	list, err := h.orders.AllOrders(c.Request.Context())
	if err != nil {
		h.respondErr(c, "export orders failed", err)
		return
	}
	flat := make([]models.Order, len(list))
	for i, o := range list {
		flat[i] = *o
	}

	c.Header("Content-Disposition", `attachment; filename="orders.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := export.WriteOrdersCSV(c.Writer, flat); err != nil {
		h.log.Error("write orders csv", zap.Error(err))
	}
}

func (h *ExportHandler) CustomersCSV(c *gin.Context) {
	customers, err := h.directory.ListCustomers(c.Request.Context())
	if err != nil {
		h.respondErr(c, "export customers failed", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="customers.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := export.WriteCustomersCSV(c.Writer, customers); err != nil {
		h.log.Error("write customers csv", zap.Error(err))
	}
}

func (h *ExportHandler) TransactionsCSV(c *gin.Context) {
	txs, err := h.ledger.AllTransactions(c.Request.Context())
	if err != nil {
		h.respondErr(c, "export transactions failed", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := export.WriteTransactionsCSV(c.Writer, txs); err != nil {
		h.log.Error("write transactions csv", zap.Error(err))
	}
}

func (h *ExportHandler) respondErr(c *gin.Context, msg string, err error) {
	status := httpStatus(err)
	if status == http.StatusInternalServerError {
		h.log.Error(msg, zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	h.log.Warn(msg, zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}
