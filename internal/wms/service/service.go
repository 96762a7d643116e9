package service

import (
	"context"
	"io"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/shared/notify"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/repository"
	"go.uber.org/zap"
)

// Notifier receives order lifecycle events after a change is committed.
type Notifier interface {
	Publish(ctx context.Context, ev notify.Event)
}

// DocumentInfo describes a stored document.
type DocumentInfo struct {
	Key         string
	Size        int64
	ContentType string
}

// DocumentStore keeps binary documents by key.
type DocumentStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, *DocumentInfo, error)
	Remove(ctx context.Context, key string) error
}

// Services groups the warehouse services.
type Services struct {
	RestockOrder  *RestockOrderService
	InternalOrder *InternalOrderService
	ReturnOrder   *ReturnOrderService
	Item          *ItemService
}

// NewServices wires every service over the same repositories. docs may be
// nil when document storage is not configured.
func NewServices(repos *repository.Repositories, events Notifier, docs DocumentStore, logger *zap.Logger) *Services {
	restock := NewRestockOrderService(repos, events, logger)
	if docs != nil {
		restock.SetDocumentStore(docs)
	}
	return &Services{
		RestockOrder:  restock,
		InternalOrder: NewInternalOrderService(repos, events, logger),
		ReturnOrder:   NewReturnOrderService(repos, events, logger),
		Item:          NewItemService(repos, logger),
	}
}

type eventSink struct {
	n Notifier
}

func (e eventSink) publish(ctx context.Context, typ string, id uint, state string) {
	if e.n == nil {
		return
	}
	e.n.Publish(ctx, notify.Event{Type: typ, OrderID: id, State: state})
}

func orderIDs[T any](orders []T, id func(T) uint) []uint {
	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, id(o))
	}
	return ids
}
