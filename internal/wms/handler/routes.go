package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every warehouse route on r.
func RegisterRoutes(r gin.IRouter, h *Handlers) error {
	if err := RegisterValidators(); err != nil {
		return err
	}
	api := r.Group("/api")

	ro := h.RestockOrder
	api.GET("/restockOrders", ro.List)
	api.GET("/restockOrdersIssued", ro.ListIssued)
	api.GET("/restockOrders/export", ro.Export)
	api.GET("/restockOrders/:id", ro.Get)
	api.GET("/restockOrders/:id/returnItems", ro.ReturnItems)
	api.POST("/restockOrder", ro.Create)
	api.PUT("/restockOrder/:id", ro.SetState)
	api.PUT("/restockOrder/:id/skuItems", ro.AttachSKUItems)
	api.PUT("/restockOrder/:id/transportNote", ro.SetTransportNote)
	api.PUT("/restockOrder/:id/transportNote/document", ro.UploadDocument)
	api.GET("/restockOrder/:id/transportNote/document", ro.DownloadDocument)
	api.DELETE("/restockOrder/:id", ro.Delete)

	io := h.InternalOrder
	api.GET("/internalOrders", io.List)
	api.GET("/internalOrdersIssued", io.ListIssued)
	api.GET("/internalOrdersAccepted", io.ListAccepted)
	api.GET("/internalOrders/:id", io.Get)
	api.POST("/internalOrders", io.Create)
	api.PUT("/internalOrders/:id", io.SetState)
	api.DELETE("/internalOrders/:id", io.Delete)

	rt := h.ReturnOrder
	api.GET("/returnOrders", rt.List)
	api.GET("/returnOrders/:id", rt.Get)
	api.POST("/returnOrder", rt.Create)
	api.DELETE("/returnOrder/:id", rt.Delete)

	it := h.Item
	api.GET("/items", it.List)
	api.GET("/items/:id/:supplierId", it.Get)
	api.POST("/item", it.Create)
	api.PUT("/item/:id/:supplierId", it.Update)
	api.DELETE("/items/:id/:supplierId", it.Delete)

	api.GET("/orderEvents", h.Event.Recent)
	api.GET("/orderEvents/stream", h.Event.Stream)
	return nil
}
