package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/shared/notify"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RestockOrderService drives restock orders through their lifecycle.
type RestockOrderService struct {
	repos  *repository.Repositories
	events eventSink
	docs   DocumentStore
	logger *zap.Logger
}

func NewRestockOrderService(repos *repository.Repositories, events Notifier, logger *zap.Logger) *RestockOrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RestockOrderService{
		repos:  repos,
		events: eventSink{n: events},
		logger: logger,
	}
}

// SetDocumentStore enables transport document upload and download.
func (s *RestockOrderService) SetDocumentStore(docs DocumentStore) {
	s.docs = docs
}

// CreateRestockOrderRequest is the body of a new restock order.
type CreateRestockOrderRequest struct {
	IssueDate  string                `json:"issueDate" binding:"required,wmsdate"`
	Products   []RestockProductInput `json:"products" binding:"required,min=1,dive"`
	SupplierID uint                  `json:"supplierId" binding:"required"`
}

// RestockProductInput is one requested line. Description and price are
// informative; the stored item is authoritative.
type RestockProductInput struct {
	SKUID       uint            `json:"SKUId" binding:"required"`
	ItemID      uint            `json:"itemId"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Qty         int             `json:"qty" binding:"required,gt=0"`
}

type SetRestockStateRequest struct {
	NewState string `json:"newState" binding:"required"`
}

type AttachSKUItemsRequest struct {
	SKUItems []SKUItemInput `json:"skuItems" binding:"required,min=1,dive"`
}

// SKUItemInput is one delivered unit.
type SKUItemInput struct {
	SKUID uint   `json:"SKUId" binding:"required"`
	RFID  string `json:"rfid" binding:"required,rfid"`
}

type SetTransportNoteRequest struct {
	TransportNote TransportNoteInput `json:"transportNote"`
}

type TransportNoteInput struct {
	DeliveryDate string `json:"deliveryDate" binding:"required,wmsdate"`
}

// RestockOrderView is the assembled restock order returned to callers.
type RestockOrderView struct {
	ID            uint                 `json:"id"`
	IssueDate     string               `json:"issueDate"`
	State         string               `json:"state"`
	Products      []RestockProductView `json:"products"`
	SupplierID    uint                 `json:"supplierId"`
	TransportNote TransportNoteView    `json:"transportNote"`
	SKUItems      []RestockUnitView    `json:"skuItems"`
}

type RestockProductView struct {
	SKUID       uint            `json:"SKUId"`
	ItemID      uint            `json:"itemId"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Qty         int             `json:"qty"`
}

// TransportNoteView renders as {} until a delivery date is known.
type TransportNoteView struct {
	DeliveryDate string `json:"deliveryDate,omitempty"`
}

type RestockUnitView struct {
	SKUID  uint   `json:"SKUId"`
	ItemID uint   `json:"itemId"`
	RFID   string `json:"rfid"`
}

// Create validates every line against the supplier's items and stores the
// order in state ISSUED. Returns the new order id.
func (s *RestockOrderService) Create(ctx context.Context, req *CreateRestockOrderRequest) (uint, error) {
	issueDate, err := ParseDate(req.IssueDate)
	if err != nil {
		return 0, validationf("invalid issueDate %q", req.IssueDate)
	}
	if len(req.Products) == 0 {
		return 0, validationf("restock order needs at least one product")
	}
	itemIDs := make([]uint, 0, len(req.Products))
	for _, p := range req.Products {
		if p.Qty <= 0 {
			return 0, validationf("item %d: quantity must be positive", p.ItemID)
		}
		itemIDs = append(itemIDs, p.ItemID)
	}

	order := entity.RestockOrder{
		IssueDate:  issueDate,
		State:      entity.RestockStateIssued,
		SupplierID: req.SupplierID,
	}
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.User.FindByIDAndType(ctx, req.SupplierID, entity.UserTypeSupplier); err != nil {
			return lookupError(err, "supplier %d", req.SupplierID)
		}
		items, err := tx.Item.FindBySupplier(ctx, req.SupplierID, itemIDs)
		if err != nil {
			return storeError("find supplier items", err)
		}
		if err := checkRestockLines(req.Products, items); err != nil {
			return err
		}

		if err := tx.RestockOrder.Create(ctx, &order); err != nil {
			return storeError("create restock order", err)
		}
		lines := make([]entity.RestockOrderItem, 0, len(req.Products))
		for _, p := range req.Products {
			lines = append(lines, entity.RestockOrderItem{
				RestockOrderID: order.ID,
				ItemID:         p.ItemID,
				SKUID:          p.SKUID,
				Quantity:       p.Qty,
			})
		}
		if err := tx.RestockOrder.CreateItems(ctx, lines); err != nil {
			return storeError("create restock order items", err)
		}
		return nil
	})
	if err != nil {
		return 0, asStoreError("create restock order", err)
	}

	s.logger.Info("restock order created",
		zap.Uint("id", order.ID),
		zap.Uint("supplier_id", order.SupplierID),
		zap.Int("lines", len(req.Products)),
	)
	s.events.publish(ctx, notify.RestockOrderCreated, order.ID, order.State)
	return order.ID, nil
}

// checkRestockLines requires every line to name an existing item of the
// supplier whose SKU matches the declared one.
func checkRestockLines(products []RestockProductInput, supplierItems []entity.Item) error {
	byID := make(map[uint]entity.Item, len(supplierItems))
	for _, it := range supplierItems {
		byID[it.ID] = it
	}
	for _, p := range products {
		item, ok := byID[p.ItemID]
		if !ok {
			return validationf("item %d is not sold by this supplier", p.ItemID)
		}
		if item.SKUID != p.SKUID {
			return validationf("item %d refers to SKU %d, not SKU %d", p.ItemID, item.SKUID, p.SKUID)
		}
	}
	return nil
}

// Get returns one assembled order.
func (s *RestockOrderService) Get(ctx context.Context, id uint) (*RestockOrderView, error) {
	order, err := s.repos.RestockOrder.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "restock order %d", id)
	}
	views, err := s.assemble(ctx, []entity.RestockOrder{*order})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// List returns every order.
func (s *RestockOrderService) List(ctx context.Context) ([]RestockOrderView, error) {
	orders, err := s.repos.RestockOrder.FindAll(ctx)
	if err != nil {
		return nil, storeError("list restock orders", err)
	}
	return s.assemble(ctx, orders)
}

// ListIssued returns the orders still in state ISSUED.
func (s *RestockOrderService) ListIssued(ctx context.Context) ([]RestockOrderView, error) {
	orders, err := s.repos.RestockOrder.FindByState(ctx, entity.RestockStateIssued)
	if err != nil {
		return nil, storeError("list issued restock orders", err)
	}
	return s.assemble(ctx, orders)
}

// assemble loads lines, items and delivered units independently and merges
// them into views by order id.
func (s *RestockOrderService) assemble(ctx context.Context, orders []entity.RestockOrder) ([]RestockOrderView, error) {
	ids := orderIDs(orders, func(o entity.RestockOrder) uint { return o.ID })
	lines, err := s.repos.RestockOrder.FindItems(ctx, ids)
	if err != nil {
		return nil, storeError("find restock order items", err)
	}

	supplierOf := make(map[uint]uint, len(orders))
	for _, o := range orders {
		supplierOf[o.ID] = o.SupplierID
	}
	wanted := make(map[uint][]uint)
	for _, l := range lines {
		sup := supplierOf[l.RestockOrderID]
		wanted[sup] = append(wanted[sup], l.ItemID)
	}
	items := make(map[entity.ItemKey]entity.Item)
	for sup, itemIDs := range wanted {
		found, err := s.repos.Item.FindBySupplier(ctx, sup, itemIDs)
		if err != nil {
			return nil, storeError("find items", err)
		}
		for _, it := range found {
			items[entity.ItemKey{ID: it.ID, SupplierID: it.SupplierID}] = it
		}
	}

	units, err := s.repos.SKUItem.FindByRestockOrders(ctx, ids)
	if err != nil {
		return nil, storeError("find delivered units", err)
	}
	return assembleRestockOrders(orders, lines, items, units), nil
}

func assembleRestockOrders(
	orders []entity.RestockOrder,
	lines []entity.RestockOrderItem,
	items map[entity.ItemKey]entity.Item,
	units []entity.SKUItem,
) []RestockOrderView {
	linesByOrder := make(map[uint][]entity.RestockOrderItem)
	for _, l := range lines {
		linesByOrder[l.RestockOrderID] = append(linesByOrder[l.RestockOrderID], l)
	}
	unitsByOrder := make(map[uint][]entity.SKUItem)
	for _, u := range units {
		if u.RestockOrderID != nil {
			unitsByOrder[*u.RestockOrderID] = append(unitsByOrder[*u.RestockOrderID], u)
		}
	}

	views := make([]RestockOrderView, 0, len(orders))
	for _, o := range orders {
		v := RestockOrderView{
			ID:         o.ID,
			IssueDate:  FormatDate(o.IssueDate),
			State:      o.State,
			SupplierID: o.SupplierID,
			Products:   []RestockProductView{},
			SKUItems:   []RestockUnitView{},
		}
		itemOfSKU := make(map[uint]uint)
		for _, l := range linesByOrder[o.ID] {
			item := items[entity.ItemKey{ID: l.ItemID, SupplierID: o.SupplierID}]
			v.Products = append(v.Products, RestockProductView{
				SKUID:       l.SKUID,
				ItemID:      l.ItemID,
				Description: item.Description,
				Price:       item.Price,
				Qty:         l.Quantity,
			})
			itemOfSKU[l.SKUID] = l.ItemID
		}
		if o.State != entity.RestockStateIssued {
			if o.DeliveryDate != nil {
				v.TransportNote.DeliveryDate = FormatDay(*o.DeliveryDate)
			}
			for _, u := range unitsByOrder[o.ID] {
				v.SKUItems = append(v.SKUItems, RestockUnitView{
					SKUID:  u.SKUID,
					ItemID: itemOfSKU[u.SKUID],
					RFID:   u.RFID,
				})
			}
		}
		views = append(views, v)
	}
	return views
}

// SetState moves the order to newState if the transition table allows it.
func (s *RestockOrderService) SetState(ctx context.Context, id uint, newState string) error {
	if !entity.RestockTransitions.Known(newState) {
		return validationf("unknown restock order state %q", newState)
	}
	var from string
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		order, err := tx.RestockOrder.FindByIDForUpdate(ctx, id)
		if err != nil {
			return lookupError(err, "restock order %d", id)
		}
		if !entity.RestockTransitions.Allows(order.State, newState) {
			return invalidStatef("restock order %d cannot move from %s to %s", id, order.State, newState)
		}
		from = order.State
		if err := tx.RestockOrder.UpdateState(ctx, id, newState); err != nil {
			return storeError("update restock order state", err)
		}
		return nil
	})
	if err != nil {
		return asStoreError("set restock order state", err)
	}

	orderTransitions.WithLabelValues("restock", from, newState).Inc()
	s.logger.Info("restock order state changed",
		zap.Uint("id", id),
		zap.String("from", from),
		zap.String("to", newState),
	)
	s.events.publish(ctx, notify.RestockOrderStateChanged, id, newState)
	return nil
}

// AttachSKUItems receives the delivered units of a DELIVERED order. Units
// unknown to the warehouse are created. Units already received with this
// order are left untouched. Nothing changes unless every unit is accepted.
func (s *RestockOrderService) AttachSKUItems(ctx context.Context, id uint, inputs []SKUItemInput) error {
	if len(inputs) == 0 {
		return validationf("restock order %d: no SKU items listed", id)
	}
	for _, in := range inputs {
		if !ValidRFID(in.RFID) {
			return validationf("invalid RFID %q", in.RFID)
		}
	}

	received := 0
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		order, err := tx.RestockOrder.FindByIDForUpdate(ctx, id)
		if err != nil {
			return lookupError(err, "restock order %d", id)
		}
		if order.State != entity.RestockStateDelivered {
			return invalidStatef("restock order %d is %s, SKU items need %s",
				id, order.State, entity.RestockStateDelivered)
		}

		lines, err := tx.RestockOrder.FindItems(ctx, []uint{id})
		if err != nil {
			return storeError("find restock order items", err)
		}
		bound, err := tx.SKUItem.FindByRestockOrders(ctx, []uint{id})
		if err != nil {
			return storeError("find delivered units", err)
		}
		rfids := make([]string, 0, len(inputs))
		for _, in := range inputs {
			rfids = append(rfids, in.RFID)
		}
		existing, err := tx.SKUItem.FindByRFIDs(ctx, rfids)
		if err != nil {
			return storeError("find units", err)
		}
		if err := reconcileDelivery(id, lines, bound, existing, inputs); err != nil {
			return err
		}

		known := make(map[string]entity.SKUItem, len(existing))
		for _, u := range existing {
			known[u.RFID] = u
		}
		if err := requireSKUs(ctx, tx, newUnitSKUs(inputs, known)); err != nil {
			return err
		}

		alreadyBound := make(map[string]bool, len(bound))
		for _, u := range bound {
			alreadyBound[u.RFID] = true
		}

		now := time.Now()
		delta := make(map[uint]int)
		for _, in := range inputs {
			if alreadyBound[in.RFID] {
				continue
			}
			unit, ok := known[in.RFID]
			if !ok {
				unit = entity.SKUItem{RFID: in.RFID, SKUID: in.SKUID, DateOfStock: &now}
			}
			if !unit.Available {
				delta[unit.SKUID]++
				received++
			}
			orderID := id
			unit.Available = true
			unit.RestockOrderID = &orderID
			if err := tx.SKUItem.Save(ctx, &unit); err != nil {
				return storeError("save unit "+unit.RFID, err)
			}
		}
		for skuID, d := range delta {
			if err := tx.SKU.AdjustAvailable(ctx, skuID, d); err != nil {
				return storeError("adjust SKU availability", err)
			}
		}
		return nil
	})
	if err != nil {
		return asStoreError("attach SKU items", err)
	}

	unitsMoved.WithLabelValues("received").Add(float64(received))
	s.logger.Info("restock order units received",
		zap.Uint("id", id),
		zap.Int("units", len(inputs)),
		zap.Int("newly_available", received),
	)
	s.events.publish(ctx, notify.RestockOrderDelivered, id, entity.RestockStateDelivered)
	return nil
}

// reconcileDelivery checks delivered units against the ordered lines: each
// unit must be of an ordered SKU, must not belong to another order or SKU,
// and the units per SKU may not exceed the ordered quantity. A known unit
// not yet received with any order must still be available: consumed or
// returned units do not come back through a delivery.
func reconcileDelivery(
	orderID uint,
	lines []entity.RestockOrderItem,
	bound []entity.SKUItem,
	existing []entity.SKUItem,
	inputs []SKUItemInput,
) error {
	ordered := make(map[uint]int)
	for _, l := range lines {
		ordered[l.SKUID] += l.Quantity
	}
	counted := make(map[uint]int)
	alreadyBound := make(map[string]bool, len(bound))
	for _, u := range bound {
		counted[u.SKUID]++
		alreadyBound[u.RFID] = true
	}
	known := make(map[string]entity.SKUItem, len(existing))
	for _, u := range existing {
		known[u.RFID] = u
	}

	seen := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		if seen[in.RFID] {
			return validationf("RFID %s listed more than once", in.RFID)
		}
		seen[in.RFID] = true

		if _, ok := ordered[in.SKUID]; !ok {
			return validationf("SKU %d is not part of restock order %d", in.SKUID, orderID)
		}
		if u, ok := known[in.RFID]; ok {
			if u.SKUID != in.SKUID {
				return validationf("RFID %s belongs to SKU %d", in.RFID, u.SKUID)
			}
			if u.RestockOrderID != nil && *u.RestockOrderID != orderID {
				return validationf("RFID %s was received with restock order %d", in.RFID, *u.RestockOrderID)
			}
			if !alreadyBound[in.RFID] && !u.Available {
				return validationf("RFID %s is not available", in.RFID)
			}
		}
		if alreadyBound[in.RFID] {
			continue
		}
		counted[in.SKUID]++
		if counted[in.SKUID] > ordered[in.SKUID] {
			return validationf("SKU %d: %d units delivered, %d ordered", in.SKUID, counted[in.SKUID], ordered[in.SKUID])
		}
	}
	return nil
}

func newUnitSKUs(inputs []SKUItemInput, known map[string]entity.SKUItem) []uint {
	seen := make(map[uint]bool)
	var ids []uint
	for _, in := range inputs {
		if _, ok := known[in.RFID]; ok || seen[in.SKUID] {
			continue
		}
		seen[in.SKUID] = true
		ids = append(ids, in.SKUID)
	}
	return ids
}

// requireSKUs fails with ErrNotFound naming the first missing SKU.
func requireSKUs(ctx context.Context, repos *repository.Repositories, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	skus, err := repos.SKU.FindByIDs(ctx, ids)
	if err != nil {
		return storeError("find SKUs", err)
	}
	found := make(map[uint]bool, len(skus))
	for _, sku := range skus {
		found[sku.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return notFoundf("SKU %d", id)
		}
	}
	return nil
}

// SetTransportNote records the delivery date of an order in DELIVERY. The
// delivery day may not precede the issue day.
func (s *RestockOrderService) SetTransportNote(ctx context.Context, id uint, note TransportNoteInput) error {
	deliveryDate, err := ParseDate(note.DeliveryDate)
	if err != nil {
		return validationf("invalid deliveryDate %q", note.DeliveryDate)
	}
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		order, err := tx.RestockOrder.FindByIDForUpdate(ctx, id)
		if err != nil {
			return lookupError(err, "restock order %d", id)
		}
		if order.State != entity.RestockStateDelivery {
			return invalidStatef("restock order %d is %s, transport note needs %s",
				id, order.State, entity.RestockStateDelivery)
		}
		if startOfDay(deliveryDate).Before(startOfDay(order.IssueDate)) {
			return invalidStatef("delivery date %s is before issue date %s",
				FormatDay(deliveryDate), FormatDay(order.IssueDate))
		}
		if err := tx.RestockOrder.UpdateTransportNote(ctx, id, deliveryDate); err != nil {
			return storeError("update transport note", err)
		}
		return nil
	})
	if err != nil {
		return asStoreError("set transport note", err)
	}

	s.logger.Info("restock order transport note set",
		zap.Uint("id", id),
		zap.Time("delivery_date", deliveryDate),
	)
	s.events.publish(ctx, notify.RestockOrderTransportNote, id, entity.RestockStateDelivery)
	return nil
}

// ReturnableItems lists the units of a COMPLETEDRETURN order whose latest
// test failed.
func (s *RestockOrderService) ReturnableItems(ctx context.Context, id uint) ([]RestockUnitView, error) {
	order, err := s.repos.RestockOrder.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "restock order %d", id)
	}
	if order.State != entity.RestockStateCompletedReturn {
		return nil, invalidStatef("restock order %d is %s, return items need %s",
			id, order.State, entity.RestockStateCompletedReturn)
	}

	lines, err := s.repos.RestockOrder.FindItems(ctx, []uint{id})
	if err != nil {
		return nil, storeError("find restock order items", err)
	}
	units, err := s.repos.SKUItem.FindByRestockOrders(ctx, []uint{id})
	if err != nil {
		return nil, storeError("find delivered units", err)
	}
	rfids := make([]string, 0, len(units))
	for _, u := range units {
		rfids = append(rfids, u.RFID)
	}
	results, err := s.repos.TestResult.FindByRFIDs(ctx, rfids)
	if err != nil {
		return nil, storeError("find test results", err)
	}
	return selectReturnable(lines, units, results), nil
}

// selectReturnable keeps the units whose most recent result is a failure.
// results must be sorted oldest first. Untested units are not returnable.
func selectReturnable(lines []entity.RestockOrderItem, units []entity.SKUItem, results []entity.TestResult) []RestockUnitView {
	latest := make(map[string]bool, len(results))
	for _, r := range results {
		latest[r.RFID] = r.Result
	}
	itemOfSKU := make(map[uint]uint, len(lines))
	for _, l := range lines {
		itemOfSKU[l.SKUID] = l.ItemID
	}

	out := []RestockUnitView{}
	for _, u := range units {
		passed, tested := latest[u.RFID]
		if !tested || passed {
			continue
		}
		out = append(out, RestockUnitView{
			SKUID:  u.SKUID,
			ItemID: itemOfSKU[u.SKUID],
			RFID:   u.RFID,
		})
	}
	return out
}

// Delete removes the order and its lines. Received units stay in stock but
// lose their order reference.
func (s *RestockOrderService) Delete(ctx context.Context, id uint) error {
	var docKey string
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		order, err := tx.RestockOrder.FindByIDForUpdate(ctx, id)
		if err != nil {
			return lookupError(err, "restock order %d", id)
		}
		docKey = order.TransportDoc
		if err := tx.RestockOrder.DeleteItems(ctx, id); err != nil {
			return storeError("delete restock order items", err)
		}
		if err := tx.SKUItem.Unbind(ctx, id); err != nil {
			return storeError("unbind delivered units", err)
		}
		if err := tx.RestockOrder.Delete(ctx, id); err != nil {
			return storeError("delete restock order", err)
		}
		return nil
	})
	if err != nil {
		return asStoreError("delete restock order", err)
	}

	if docKey != "" && s.docs != nil {
		if err := s.docs.Remove(ctx, docKey); err != nil {
			s.logger.Warn("remove transport document", zap.String("key", docKey), zap.Error(err))
		}
	}
	s.logger.Info("restock order deleted", zap.Uint("id", id))
	s.events.publish(ctx, notify.RestockOrderDeleted, id, "")
	return nil
}

var errDocumentsDisabled = invalidStatef("document storage not configured")

// UploadTransportDocument stores the scanned transport note of an order
// that already has one.
func (s *RestockOrderService) UploadTransportDocument(ctx context.Context, id uint, filename string, r io.Reader, size int64, contentType string) (string, error) {
	if s.docs == nil {
		return "", errDocumentsDisabled
	}
	order, err := s.repos.RestockOrder.FindByID(ctx, id)
	if err != nil {
		return "", lookupError(err, "restock order %d", id)
	}
	if order.DeliveryDate == nil {
		return "", invalidStatef("restock order %d has no transport note", id)
	}

	name := path.Base(filename)
	if name == "." || name == "/" {
		return "", validationf("invalid file name %q", filename)
	}
	key := fmt.Sprintf("restock-orders/%d/%s", id, name)
	if err := s.docs.Put(ctx, key, r, size, contentType); err != nil {
		return "", storeError("upload transport document", err)
	}
	if err := s.repos.RestockOrder.UpdateTransportDoc(ctx, id, key); err != nil {
		return "", storeError("update transport document", err)
	}
	if order.TransportDoc != "" && order.TransportDoc != key {
		if err := s.docs.Remove(ctx, order.TransportDoc); err != nil {
			s.logger.Warn("remove replaced transport document", zap.String("key", order.TransportDoc), zap.Error(err))
		}
	}

	s.logger.Info("transport document uploaded", zap.Uint("id", id), zap.String("key", key), zap.Int64("size", size))
	return key, nil
}

// TransportDocument opens the stored transport note of an order. The caller
// closes the reader.
func (s *RestockOrderService) TransportDocument(ctx context.Context, id uint) (io.ReadCloser, *DocumentInfo, error) {
	if s.docs == nil {
		return nil, nil, errDocumentsDisabled
	}
	order, err := s.repos.RestockOrder.FindByID(ctx, id)
	if err != nil {
		return nil, nil, lookupError(err, "restock order %d", id)
	}
	if order.TransportDoc == "" {
		return nil, nil, notFoundf("transport document of restock order %d", id)
	}
	rc, info, err := s.docs.Get(ctx, order.TransportDoc)
	if err != nil {
		return nil, nil, asStoreError("download transport document", err)
	}
	return rc, info, nil
}
