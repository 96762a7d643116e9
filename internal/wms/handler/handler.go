package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/shared/sse"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/service"
)

// Handlers groups the warehouse handlers.
type Handlers struct {
	RestockOrder  *RestockOrderHandler
	InternalOrder *InternalOrderHandler
	ReturnOrder   *ReturnOrderHandler
	Item          *ItemHandler
	Event         *EventHandler
}

// NewHandlers builds every handler. events and hub may be nil.
func NewHandlers(svcs *service.Services, events EventSource, hub *sse.Hub) *Handlers {
	return &Handlers{
		RestockOrder:  NewRestockOrderHandler(svcs.RestockOrder),
		InternalOrder: NewInternalOrderHandler(svcs.InternalOrder),
		ReturnOrder:   NewReturnOrderHandler(svcs.ReturnOrder),
		Item:          NewItemHandler(svcs.Item),
		Event:         NewEventHandler(events, hub),
	}
}

// Error codes. The HTTP status is code / 100.
const (
	CodeNotFound     = 40400
	CodeValidation   = 42200
	CodeInvalidState = 42201
	CodeInternal     = 50000
	CodeUnavailable  = 50300
)

// Response is the error body.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, id uint) {
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func Unprocessable(c *gin.Context, message string) {
	Error(c, CodeValidation, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, CodeNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, CodeInternal, message)
}

// respondError maps service error kinds to status codes. Store failures are
// 500 on reads and 503 on writes.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, service.ErrValidation):
		Error(c, CodeValidation, err.Error())
	case errors.Is(err, service.ErrInvalidState):
		Error(c, CodeInvalidState, err.Error())
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, err.Error())
	case c.Request.Method == http.MethodGet:
		InternalError(c, "internal error")
	default:
		Error(c, CodeUnavailable, "service unavailable")
	}
}

// bindJSON binds and validates the body, answering 422 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(err)
		Unprocessable(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// paramID parses a positive integer path parameter, answering 422 on failure.
func paramID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		Unprocessable(c, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}
