package http

import (
	"net/http"

	"pressdesk/internal/models"
	"pressdesk/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DirectoryHandler struct {
	directory service.DirectoryService
	log       *zap.Logger
}

func NewDirectoryHandler(directory service.DirectoryService, log *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{directory: directory, log: log}
}

type customerRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	DiscountType  string `json:"discount_type"`
	DiscountValue *int64 `json:"discount_value"`
}

func (r *customerRequest) toInput() service.CustomerInput {
	in := service.CustomerInput{
		Name:          r.Name,
		Phone:         r.Phone,
		Address:       r.Address,
		DiscountValue: r.DiscountValue,
	}
	if r.DiscountType != "" {
		dt := models.DiscountType(r.DiscountType)
		in.DiscountType = &dt
	}
	return in
}

func (h *DirectoryHandler) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	cust, err := h.directory.CreateCustomer(c.Request.Context(), req.toInput())
	if err != nil {
		h.respondErr(c, "create customer failed", err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

func (h *DirectoryHandler) GetCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cust, err := h.directory.GetCustomer(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, "get customer failed", err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *DirectoryHandler) ListCustomers(c *gin.Context) {
	customers, err := h.directory.ListCustomers(c.Request.Context())
	if err != nil {
		h.respondErr(c, "list customers failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *DirectoryHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	cust, err := h.directory.UpdateCustomer(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.respondErr(c, "update customer failed", err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *DirectoryHandler) GetSettings(c *gin.Context) {
	settings, err := h.directory.GetSettings(c.Request.Context())
	if err != nil {
		h.respondErr(c, "get settings failed", err)
		return
	}
	if settings == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *DirectoryHandler) SaveSettings(c *gin.Context) {
	var req models.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	settings, err := h.directory.SaveSettings(c.Request.Context(), req)
	if err != nil {
		h.respondErr(c, "save settings failed", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *DirectoryHandler) respondErr(c *gin.Context, msg string, err error) {
	status := httpStatus(err)
	if status == http.StatusInternalServerError {
		h.log.Error(msg, zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	h.log.Warn(msg, zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}
