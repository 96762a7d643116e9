package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/service"
)

// ItemHandler serves supplier items.
type ItemHandler struct {
	svc *service.ItemService
}

func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// List GET /api/items
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, items)
}

// Get GET /api/items/:id/:supplierId
func (h *ItemHandler) Get(c *gin.Context) {
	id, supplierID, ok := itemKey(c)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id, supplierID)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, item)
}

// Create POST /api/item
func (h *ItemHandler) Create(c *gin.Context) {
	var req service.CreateItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update PUT /api/item/:id/:supplierId
func (h *ItemHandler) Update(c *gin.Context) {
	id, supplierID, ok := itemKey(c)
	if !ok {
		return
	}
	var req service.UpdateItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.Update(c.Request.Context(), id, supplierID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, item)
}

// Delete DELETE /api/items/:id/:supplierId
func (h *ItemHandler) Delete(c *gin.Context) {
	id, supplierID, ok := itemKey(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id, supplierID); err != nil {
		respondError(c, err)
		return
	}
	NoContent(c)
}

func itemKey(c *gin.Context) (id, supplierID uint, ok bool) {
	if id, ok = paramID(c, "id"); !ok {
		return 0, 0, false
	}
	if supplierID, ok = paramID(c, "supplierId"); !ok {
		return 0, 0, false
	}
	return id, supplierID, true
}
