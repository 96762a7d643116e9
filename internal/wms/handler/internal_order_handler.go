package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/service"
)

// InternalOrderHandler serves internal orders.
type InternalOrderHandler struct {
	svc *service.InternalOrderService
}

func NewInternalOrderHandler(svc *service.InternalOrderService) *InternalOrderHandler {
	return &InternalOrderHandler{svc: svc}
}

// List GET /api/internalOrders
func (h *InternalOrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, orders)
}

// ListIssued GET /api/internalOrdersIssued
func (h *InternalOrderHandler) ListIssued(c *gin.Context) {
	orders, err := h.svc.ListIssued(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, orders)
}

// ListAccepted GET /api/internalOrdersAccepted
func (h *InternalOrderHandler) ListAccepted(c *gin.Context) {
	orders, err := h.svc.ListAccepted(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, orders)
}

// Get GET /api/internalOrders/:id
func (h *InternalOrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, order)
}

// Create POST /api/internalOrders
func (h *InternalOrderHandler) Create(c *gin.Context) {
	var req service.CreateInternalOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, id)
}

// SetState PUT /api/internalOrders/:id
func (h *InternalOrderHandler) SetState(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.SetInternalOrderStateRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.SetState(c.Request.Context(), id, req.NewState, req.Products); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete DELETE /api/internalOrders/:id
func (h *InternalOrderHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	NoContent(c)
}
