package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/service"
)

// ReturnOrderHandler serves return orders.
type ReturnOrderHandler struct {
	svc *service.ReturnOrderService
}

func NewReturnOrderHandler(svc *service.ReturnOrderService) *ReturnOrderHandler {
	return &ReturnOrderHandler{svc: svc}
}

// List GET /api/returnOrders
func (h *ReturnOrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, orders)
}

// Get GET /api/returnOrders/:id
func (h *ReturnOrderHandler) Get(c *gin.Context) {
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

// Create POST /api/returnOrder
func (h *ReturnOrderHandler) Create(c *gin.Context) {
	var req service.CreateReturnOrderRequest
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

// Delete DELETE /api/returnOrder/:id
func (h *ReturnOrderHandler) Delete(c *gin.Context) {
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
