package http

import (
	"pressdesk/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Router(orders service.OrderService, directory service.DirectoryService, ledger service.LedgerService, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", workspaceHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	orderHandler := NewOrderHandler(orders, directory, log)
	directoryHandler := NewDirectoryHandler(directory, log)
	ledgerHandler := NewLedgerHandler(ledger, log)
	exportHandler := NewExportHandler(orders, directory, ledger, log)

	api := r.Group("/api/v1", WorkspaceMiddleware())
	{
		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders", orderHandler.ListOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.POST("/orders/:id/payments", orderHandler.RecordPayment)
		api.PUT("/orders/:id/status", orderHandler.SetStatus)
		api.PUT("/orders/:id/stage", orderHandler.AdvanceStage)
		api.GET("/orders/:id/invoice", orderHandler.Invoice)
		api.GET("/orders/:id/whatsapp", orderHandler.WhatsAppLink)
		api.GET("/orders/:id/transactions", ledgerHandler.OrderTransactions)

		api.GET("/press/queue", orderHandler.PressQueue)
		api.GET("/pricing/categories", orderHandler.Categories)

		api.POST("/customers", directoryHandler.CreateCustomer)
		api.GET("/customers", directoryHandler.ListCustomers)
		api.GET("/customers/:id", directoryHandler.GetCustomer)
		api.PUT("/customers/:id", directoryHandler.UpdateCustomer)
		api.GET("/customers/:id/due", orderHandler.CustomerDue)

		api.GET("/settings", directoryHandler.GetSettings)
		api.PUT("/settings", directoryHandler.SaveSettings)

		api.POST("/transactions", ledgerHandler.RecordTransaction)
		api.GET("/transactions", ledgerHandler.ListTransactions)

		api.GET("/export/orders.csv", exportHandler.OrdersCSV)
		api.GET("/export/customers.csv", exportHandler.CustomersCSV)
		api.GET("/export/transactions.csv", exportHandler.TransactionsCSV)
	}

	return r
}
