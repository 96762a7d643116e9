package handler

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/service"
)

// RestockOrderHandler serves restock orders.
type RestockOrderHandler struct {
	svc *service.RestockOrderService
}

func NewRestockOrderHandler(svc *service.RestockOrderService) *RestockOrderHandler {
	return &RestockOrderHandler{svc: svc}
}

// List GET /api/restockOrders
func (h *RestockOrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, orders)
}

// ListIssued GET /api/restockOrdersIssued
func (h *RestockOrderHandler) ListIssued(c *gin.Context) {
	orders, err := h.svc.ListIssued(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, orders)
}

// Get GET /api/restockOrders/:id
func (h *RestockOrderHandler) Get(c *gin.Context) {
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

// ReturnItems GET /api/restockOrders/:id/returnItems
func (h *RestockOrderHandler) ReturnItems(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	items, err := h.svc.ReturnableItems(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, items)
}

// Create POST /api/restockOrder
func (h *RestockOrderHandler) Create(c *gin.Context) {
	var req service.CreateRestockOrderRequest
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

// SetState PUT /api/restockOrder/:id
func (h *RestockOrderHandler) SetState(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.SetRestockStateRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.SetState(c.Request.Context(), id, req.NewState); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// AttachSKUItems PUT /api/restockOrder/:id/skuItems
func (h *RestockOrderHandler) AttachSKUItems(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.AttachSKUItemsRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.AttachSKUItems(c.Request.Context(), id, req.SKUItems); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// SetTransportNote PUT /api/restockOrder/:id/transportNote
func (h *RestockOrderHandler) SetTransportNote(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.SetTransportNoteRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.SetTransportNote(c.Request.Context(), id, req.TransportNote); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete DELETE /api/restockOrder/:id
func (h *RestockOrderHandler) Delete(c *gin.Context) {
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

// Export GET /api/restockOrders/export
func (h *RestockOrderHandler) Export(c *gin.Context) {
	f, filename, err := h.svc.Export(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// UploadDocument PUT /api/restockOrder/:id/transportNote/document
func (h *RestockOrderHandler) UploadDocument(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		Unprocessable(c, "file is required")
		return
	}
	file, err := fh.Open()
	if err != nil {
		Unprocessable(c, "cannot read file: "+err.Error())
		return
	}
	defer file.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key, err := h.svc.UploadTransportDocument(c.Request.Context(), id, fh.Filename, file, fh.Size, contentType)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, gin.H{"key": key})
}

// DownloadDocument GET /api/restockOrder/:id/transportNote/document
func (h *RestockOrderHandler) DownloadDocument(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	rc, info, err := h.svc.TransportDocument(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, info.Size, info.ContentType, rc, map[string]string{
		"Content-Disposition": "attachment; filename=\"" + path.Base(info.Key) + "\"",
	})
}
