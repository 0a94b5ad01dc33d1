package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pressdesk/internal/models"
	"pressdesk/internal/notify"
	"pressdesk/internal/pricing"
	"pressdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	svc       service.OrderService
	directory service.DirectoryService
	log       *zap.Logger
}

func NewOrderHandler(svc service.OrderService, directory service.DirectoryService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, directory: directory, log: log}
}

type itemRequest struct {
	Name       string  `json:"name" binding:"required"`
	Category   string  `json:"category" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required"`
	Rate       float64 `json:"rate" binding:"required"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	PaperType  string  `json:"paper_type"`
	PrintSide  string  `json:"print_side"`
	ColorMode  string  `json:"color_mode"`
	DesignLink string  `json:"design_link"`
}

type createOrderRequest struct {
	CustomerID   uuid.UUID     `json:"customer_id" binding:"required"`
	Items        []itemRequest `json:"items" binding:"required"`
	Discount     int64         `json:"discount"`
	Advance      int64         `json:"advance"`
	Priority     string        `json:"priority"`
	DeliveryDate *time.Time    `json:"delivery_date"`
	Note         string        `json:"note"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create order request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	in := service.CreateOrderInput{
		CustomerID:   req.CustomerID,
		Discount:     req.Discount,
		Advance:      req.Advance,
		Priority:     models.Priority(req.Priority),
		DeliveryDate: req.DeliveryDate,
		Note:         req.Note,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, service.ItemInput{
			Name:       it.Name,
			Category:   it.Category,
			Quantity:   it.Quantity,
			Rate:       it.Rate,
			Width:      it.Width,
			Height:     it.Height,
			PaperType:  it.PaperType,
			PrintSide:  it.PrintSide,
			ColorMode:  it.ColorMode,
			DesignLink: it.DesignLink,
		})
	}

	ord, err := h.svc.CreateOrder(c.Request.Context(), in)
	if err != nil {
		h.respondErr(c, "create order failed", err)
		return
	}
	c.JSON(http.StatusCreated, ord)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ord, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, "get order failed", err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	var f service.ListFilter
	if s := c.Query("status"); s != "" {
		st := models.OrderStatus(s)
		f.Status = &st
	}
	if s := c.Query("customer_id"); s != "" {
		cid, err := uuid.Parse(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer_id"})
			return
		}
		f.CustomerID = &cid
	}
	f.Limit = intQuery(c, "limit", 20)
	f.Offset = intQuery(c, "offset", 0)

	orders, total, err := h.svc.ListOrders(c.Request.Context(), f)
	if err != nil {
		h.respondErr(c, "list orders failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total})
}

type paymentRequest struct {
	Amount int64  `json:"amount" binding:"required"`
	Note   string `json:"note"`
}

func (h *OrderHandler) RecordPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ord, err := h.svc.RecordPayment(c.Request.Context(), id, req.Amount, req.Note)
	if err != nil {
		h.respondErr(c, "record payment failed", err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ord, err := h.svc.SetStatus(c.Request.Context(), id, models.OrderStatus(req.Status))
	if err != nil {
		h.respondErr(c, "set status failed", err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

type stageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

func (h *OrderHandler) AdvanceStage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req stageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ord, err := h.svc.AdvanceStage(c.Request.Context(), id, models.PressStage(req.Stage))
	if err != nil {
		h.respondErr(c, "advance stage failed", err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

// queueEntry decorates an order with its derived pipeline fields for the
// production view.
type queueEntry struct {
	Order   *models.Order     `json:"order"`
	Stage   models.PressStage `json:"stage"`
	Elapsed string            `json:"elapsed,omitempty"`
}

func (h *OrderHandler) PressQueue(c *gin.Context) {
	queue, err := h.svc.PressQueue(c.Request.Context())
	if err != nil {
		h.respondErr(c, "press queue failed", err)
		return
	}

	now := time.Now()
	out := make([]queueEntry, 0, len(queue))
	for _, o := range queue {
		entry := queueEntry{Order: o, Stage: service.StageOf(o)}
		if d, ok := service.Elapsed(o, now); ok {
			entry.Elapsed = service.FormatElapsed(d)
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, gin.H{"queue": out})
}

func (h *OrderHandler) Invoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.svc.Invoice(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, "render invoice failed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// WhatsAppLink returns the wa.me deep link with the status-templated message
// for an order. Opening the link is up to the operator.
func (h *OrderHandler) WhatsAppLink(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ord, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, "get order failed", err)
		return
	}

	var overrides map[string]string
	if settings, err := h.directory.GetSettings(c.Request.Context()); err == nil && settings != nil {
		overrides = settings.MessageTemplates
	}

	msg := notify.ComposeStatusMessage(ord, overrides)
	c.JSON(http.StatusOK, gin.H{
		"message": msg,
		"link":    notify.WALink(ord.CustomerPhone, msg),
	})
}

// Categories reports the pricing split so clients show the right item form:
// area categories take width/height, "Press" takes the production spec,
// anything else is plain unit pricing.
func (h *OrderHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"area_based": pricing.AreaCategories(),
		"press":      pricing.CategoryPress,
	})
}

func (h *OrderHandler) CustomerDue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	due, err := h.svc.CustomerDue(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, "customer due failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer_id": id, "total_due": due})
}

func (h *OrderHandler) respondErr(c *gin.Context, msg string, err error) {
	status := httpStatus(err)
	if status == http.StatusInternalServerError {
		h.log.Error(msg, zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	h.log.Warn(msg, zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmptyItems),
		errors.Is(err, service.ErrAmountInvalid),
		errors.Is(err, service.ErrDiscountInvalid),
		errors.Is(err, service.ErrStatusInvalid),
		errors.Is(err, service.ErrStageInvalid),
		errors.Is(err, service.ErrPriorityInvalid),
		errors.Is(err, service.ErrWorkspaceRequired),
		errors.Is(err, service.ErrTransactionTypeInvalid),
		errors.Is(err, service.ErrCategoryRequired),
		errors.Is(err, service.ErrCustomerNameRequired),
		errors.Is(err, pricing.ErrRateInvalid),
		errors.Is(err, pricing.ErrQuantityInvalid),
		errors.Is(err, pricing.ErrNameRequired):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func intQuery(c *gin.Context, key string, def int) int {
	s := c.Query(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
